// Package polynomial stores the coefficients of one scalar function of time
// and evaluates it, or any of its derivatives, at arbitrary t.
//
// Coefficients are kept in increasing power order:
//
//	p(t) = c₀ + c₁·t + c₂·t² + … + c_{N-1}·t^{N-1}
//
// The coefficient count N is fixed when the Polynomial is created. Writes that
// would change it are rejected with ErrCoefficientCount.
//
// ⚙️ Usage:
//
//	p := polynomial.NewFromCoefficients([]float64{1, 2, 3}) // 1 + 2t + 3t²
//	v, _ := p.Evaluate(1.0, motion.Velocity)                // 2 + 6t → 8
//
// Evaluate is pure and total in t: it extrapolates outside any nominal
// interval and returns 0 for derivative orders at or above N.
//
// Complexity:
//
//   - Evaluate: O(N) (Horner scheme)
//   - DerivativeCoefficients: O(N)
package polynomial
