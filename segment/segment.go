package segment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polytraj/polynomial"
)

// Time-unit conversion factors. The nanosecond grid is float64(k)*secondsPerNs.
const (
	nsPerSecond  = 1e9
	secondsPerNs = 1e-9
)

// maxUint64Float is 2⁶⁴, the first float64 that does not fit in uint64.
const maxUint64Float = float64(math.MaxUint64)

// ---------- error context tags ----------

const (
	ctxDimension    = "Dimension"
	ctxCoefficients = "Coefficients"
	ctxEvaluate     = "Evaluate"
	ctxEvaluateTo   = "EvaluateTo"
	ctxFormat       = "Format"
	ctxSingle       = "SingleDimension"
	ctxAppend       = "AppendDimensions"
	ctxOffset       = "Offset"
)

// segErrorf wraps a sentinel with the method tag and the offending integer argument.
func segErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Segment.%s(%d): %w", method, arg, err)
}

// New creates a segment with d dimensions of n coefficients each and zero duration.
// Negative n or d are treated as 0. New never fails.
//
// Complexity: O(n·d) time and memory.
func New(n, d int) *Segment {
	if n < 0 {
		n = 0
	}
	if d < 0 {
		d = 0
	}
	polys := make([]polynomial.Polynomial, d)
	for i := range polys {
		polys[i] = *polynomial.New(n)
	}

	return &Segment{n: n, d: d, polys: polys}
}

// D returns the number of dimensions.
func (s *Segment) D() int {
	return s.d
}

// N returns the number of coefficients per dimension.
func (s *Segment) N() int {
	return s.n
}

// Time returns the duration in seconds exactly as last set.
func (s *Segment) Time() float64 {
	return s.duration
}

// SetTime replaces the duration.
// Negative durations return ErrNegativeDuration and NaN/±Inf return ErrNaNInf;
// on error the previous duration is kept.
func (s *Segment) SetTime(seconds float64) error {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return fmt.Errorf("Segment.SetTime(%g): %w", seconds, ErrNaNInf)
	}
	if seconds < 0 {
		return fmt.Errorf("Segment.SetTime(%g): %w", seconds, ErrNegativeDuration)
	}
	s.duration = seconds

	return nil
}

// TimeNanoseconds returns the duration as whole nanoseconds, truncating
// (not rounding) Time()·1e9. When the next tick k+1 maps back to exactly
// Time() through SetTimeNanoseconds it is returned instead, which absorbs the
// float error of the multiplication. Durations beyond the uint64 range
// saturate at math.MaxUint64.
//
// The projection is lossy. Seconds that fall between two grid points lose the
// residue, so SetTimeNanoseconds(TimeNanoseconds()) need not restore Time().
// In the other direction it is exact: after SetTimeNanoseconds(ns) with
// ns <= 2⁵⁰ this returns ns.
func (s *Segment) TimeNanoseconds() uint64 {
	return secondsToNanoseconds(s.duration)
}

// SetTimeNanoseconds sets the duration to ns·1e-9 seconds.
// The unsigned argument cannot express a negative duration.
func (s *Segment) SetTimeNanoseconds(ns uint64) {
	s.duration = float64(ns) * secondsPerNs
}

// secondsToNanoseconds truncates sec·1e9 and moves up by one tick when that
// tick lies on or below sec in the grid float64(k)*1e-9.
func secondsToNanoseconds(sec float64) uint64 {
	scaled := sec * nsPerSecond
	if scaled >= maxUint64Float {
		return math.MaxUint64
	}
	if scaled <= 0 {
		return 0
	}
	k := uint64(scaled)
	if k < math.MaxUint64 && float64(k+1)*secondsPerNs <= sec {
		k++
	}

	return k
}

// Dimension returns a write handle on dimension i for setting or reading its
// coefficients. The handle cannot change N. Do not write through it while
// another goroutine evaluates the segment.
//
// Errors: ErrOutOfRange when i < 0 or i >= D.
func (s *Segment) Dimension(i int) (*Axis, error) {
	if i < 0 || i >= s.d {
		return nil, segErrorf(ctxDimension, i, ErrOutOfRange)
	}

	return &Axis{p: &s.polys[i]}, nil
}

// Coefficients returns a copy of dimension i's coefficients, constant term first.
// It is the read-only counterpart of Dimension.
func (s *Segment) Coefficients(i int) ([]float64, error) {
	if i < 0 || i >= s.d {
		return nil, segErrorf(ctxCoefficients, i, ErrOutOfRange)
	}

	return s.polys[i].Coefficients(), nil
}

// Polynomials returns deep copies of all D polynomials in dimension order.
// Mutating the result does not affect the segment.
func (s *Segment) Polynomials() []*polynomial.Polynomial {
	out := make([]*polynomial.Polynomial, s.d)
	for i := range s.polys {
		out[i] = s.polys[i].Clone()
	}

	return out
}

// Clone returns a deep copy of s.
func (s *Segment) Clone() *Segment {
	polys := make([]polynomial.Polynomial, s.d)
	for i := range s.polys {
		polys[i] = *s.polys[i].Clone()
	}

	return &Segment{n: s.n, d: s.d, duration: s.duration, polys: polys}
}

// Equal reports whether s and o have the same shape, duration and coefficients.
func (s *Segment) Equal(o *Segment) bool {
	if o == nil || s.n != o.n || s.d != o.d || s.duration != o.duration {
		return false
	}
	for i := range s.polys {
		if !s.polys[i].Equal(&o.polys[i]) {
			return false
		}
	}

	return true
}
