package polynomial

import "errors"

// Sentinel errors for polynomial operations.
var (
	// ErrCoefficientCount indicates a coefficient slice whose length differs from N.
	ErrCoefficientCount = errors.New("polynomial: coefficient count mismatch")

	// ErrOutOfRange indicates a coefficient index outside [0, N).
	ErrOutOfRange = errors.New("polynomial: coefficient index out of range")

	// ErrNaNInf indicates a NaN or ±Inf coefficient.
	ErrNaNInf = errors.New("polynomial: NaN or Inf coefficient")
)

// Polynomial is a fixed-size coefficient vector in increasing power order.
// The zero value is a valid polynomial with N == 0 that evaluates to 0.
type Polynomial struct {
	coeffs []float64 // len == N, coeffs[k] multiplies t^k
}
