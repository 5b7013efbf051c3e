package segment

import (
	"errors"

	"github.com/katalvlaran/polytraj/polynomial"
)

// Sentinel errors for segment operations.
var (
	// ErrOutOfRange indicates a dimension index outside [0, D).
	ErrOutOfRange = errors.New("segment: dimension index out of range")

	// ErrNegativeDuration indicates an attempt to set a duration below zero.
	ErrNegativeDuration = errors.New("segment: duration must be >= 0")

	// ErrNaNInf indicates a NaN or ±Inf duration.
	ErrNaNInf = errors.New("segment: NaN or Inf duration")

	// ErrBadDerivative indicates a diagnostic derivative outside [0, N).
	ErrBadDerivative = errors.New("segment: derivative outside [0, N)")

	// ErrDimensionMismatch indicates a per-dimension argument of the wrong length.
	ErrDimensionMismatch = errors.New("segment: dimension mismatch")

	// ErrCoefficientMismatch indicates segments with different coefficient counts.
	ErrCoefficientMismatch = errors.New("segment: coefficient count mismatch")

	// ErrDurationMismatch indicates segments with different durations.
	ErrDurationMismatch = errors.New("segment: duration mismatch")

	// ErrNilSegment indicates a nil *Segment argument.
	ErrNilSegment = errors.New("segment: segment is nil")
)

// Segment holds D polynomials of N coefficients each and a duration in seconds.
type Segment struct {
	n, d     int                     // coefficient and dimension counts, fixed at New
	duration float64                 // seconds, >= 0
	polys    []polynomial.Polynomial // len == d, each with n coefficients
}
