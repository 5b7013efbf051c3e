package segment

import "github.com/katalvlaran/polytraj/polynomial"

// Axis is a write handle on one dimension of a Segment.
//
// It forwards to the segment's polynomial but never exposes it, so the
// coefficient count stays fixed at N: whole-value replacement is impossible
// and SetCoefficients rejects slices of any other length.
// An Axis must not be used while another goroutine evaluates the segment.
type Axis struct {
	p *polynomial.Polynomial // aliases Segment.polys[i]
}

// N returns the number of coefficients, always equal to Segment.N().
func (a *Axis) N() int {
	return a.p.N()
}

// Coefficients returns a copy of the coefficients, constant term first.
func (a *Axis) Coefficients() []float64 {
	return a.p.Coefficients()
}

// SetCoefficients replaces all coefficients; len(c) must equal N.
func (a *Axis) SetCoefficients(c []float64) error {
	return a.p.SetCoefficients(c)
}

// SetCoefficient assigns the coefficient of t^i.
func (a *Axis) SetCoefficient(i int, v float64) error {
	return a.p.SetCoefficient(i, v)
}

// Evaluate returns the order-th derivative of this dimension at t.
func (a *Axis) Evaluate(t float64, order int) (float64, error) {
	return a.p.Evaluate(t, order)
}

// String renders the coefficients as "[c0 c1 …]".
func (a *Axis) String() string {
	return a.p.String()
}
