package polynomial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/polytraj/motion"
)

// polyErrorf wraps a sentinel with the method name and index that triggered it.
func polyErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Polynomial.%s(%d): %w", method, idx, err)
}

// New returns a polynomial with n zero coefficients.
// Negative n is treated as 0.
func New(n int) *Polynomial {
	if n < 0 {
		n = 0
	}

	return &Polynomial{coeffs: make([]float64, n)}
}

// NewFromCoefficients returns a polynomial holding a copy of c.
// N is len(c).
func NewFromCoefficients(c []float64) *Polynomial {
	buf := make([]float64, len(c))
	copy(buf, c)

	return &Polynomial{coeffs: buf}
}

// N returns the number of coefficients.
func (p *Polynomial) N() int {
	return len(p.coeffs)
}

// Coefficients returns a copy of the coefficients, constant term first.
func (p *Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// SetCoefficients replaces all coefficients.
// len(c) must equal N and every value must be finite; on error p is unchanged.
func (p *Polynomial) SetCoefficients(c []float64) error {
	if len(c) != len(p.coeffs) {
		return polyErrorf("SetCoefficients", len(c), ErrCoefficientCount)
	}
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return polyErrorf("SetCoefficients", i, ErrNaNInf)
		}
	}
	copy(p.coeffs, c)

	return nil
}

// SetCoefficient assigns the coefficient of t^i.
func (p *Polynomial) SetCoefficient(i int, v float64) error {
	if i < 0 || i >= len(p.coeffs) {
		return polyErrorf("SetCoefficient", i, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return polyErrorf("SetCoefficient", i, ErrNaNInf)
	}
	p.coeffs[i] = v

	return nil
}

// Evaluate returns the order-th derivative of p at t.
//
// Implementation:
//   - Stage 1: reject order < 0 with motion.ErrNegativeOrder.
//   - Stage 2: orders >= N have no surviving terms; return 0.
//   - Stage 3: Horner over j = N-1 … order with weights j!/(j-order)!.
//
// t is not restricted to any interval. Complexity: O(N·order) worst case for
// the weights, O(N) for the common low orders.
func (p *Polynomial) Evaluate(t float64, order int) (float64, error) {
	if err := motion.Validate(order); err != nil {
		return 0, err
	}
	n := len(p.coeffs)
	if order >= n {
		return 0, nil
	}

	var result float64
	for j := n - 1; j >= order; j-- {
		result = result*t + p.coeffs[j]*fallingFactorial(j, order)
	}

	return result, nil
}

// DerivativeCoefficients returns the coefficients of the order-th derivative
// of p, constant term first, padded with zeros to length N.
func (p *Polynomial) DerivativeCoefficients(order int) ([]float64, error) {
	if err := motion.Validate(order); err != nil {
		return nil, err
	}
	n := len(p.coeffs)
	out := make([]float64, n)
	for k := 0; k+order < n; k++ {
		j := k + order
		out[k] = p.coeffs[j] * fallingFactorial(j, order)
	}

	return out, nil
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return NewFromCoefficients(p.coeffs)
}

// Equal reports whether p and o hold identical coefficients.
func (p *Polynomial) Equal(o *Polynomial) bool {
	if o == nil || len(p.coeffs) != len(o.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != o.coeffs[i] {
			return false
		}
	}

	return true
}

// String renders the coefficients as "[c0 c1 … cN-1]".
func (p *Polynomial) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range p.coeffs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}

// fallingFactorial returns j·(j-1)·…·(j-k+1); 1 when k == 0.
func fallingFactorial(j, k int) float64 {
	f := 1.0
	for i := 0; i < k; i++ {
		f *= float64(j - i)
	}

	return f
}
