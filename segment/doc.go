// Package segment implements one temporal piece of a piecewise-polynomial
// trajectory: D independent polynomials (one per dimension) sharing a duration.
//
//	X------------X---------------X
//	vertex           segment
//
// 🚀 What is a Segment?
//
//	A Segment is created with a fixed coefficient count N and dimension count D.
//	Both are structural and never change. Dimension i is addressed by index i,
//	and that index is the mapping to the physical axis (0 = x, 1 = y, …).
//	The duration is mutable; the polynomial coefficients are mutable through
//	Dimension(i) until the owner stops writing, after which the Segment is
//	queried read-only via Evaluate.
//
// ⏱ Duration precision contract:
//
//	Time/SetTime work in float64 seconds with no conversion.
//	TimeNanoseconds projects seconds onto the integer nanosecond grid by
//	truncation and SetTimeNanoseconds writes ns·1e-9. The projection is
//	lossy and one-way on purpose:
//	  - SetTimeNanoseconds(ns); TimeNanoseconds() == ns   (exact, ns <= 2⁵⁰)
//	  - SetTime(s); SetTimeNanoseconds(TimeNanoseconds()) may not restore s
//
// ⚙️ Usage:
//
//	s := segment.New(3, 1)                 // N=3, D=1
//	p, _ := s.Dimension(0)
//	_ = p.SetCoefficients([]float64{1, 2, 3})
//	_ = s.SetTime(2.0)
//	v, _ := s.Evaluate(1.0, motion.Velocity) // [8]
//
// Concurrency:
//
//	Segment has no locks. Concurrent Evaluate calls on a Segment that nobody
//	mutates are safe; any mutation must be serialized by the owner.
//
// Errors:
//
//	ErrOutOfRange          - dimension index outside [0, D).
//	ErrNegativeDuration    - SetTime with s < 0.
//	ErrNaNInf              - SetTime with NaN or ±Inf.
//	ErrBadDerivative       - Format with derivative outside [0, N).
//	ErrDimensionMismatch   - Offset with len(offset) != D.
//	ErrCoefficientMismatch - AppendDimensions with different N.
//	ErrDurationMismatch    - AppendDimensions with different durations.
//	ErrNilSegment          - AppendDimensions with a nil segment.
//	motion.ErrNegativeOrder is returned by Evaluate for order < 0.
package segment
