package polynomial_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polytraj/motion"
	"github.com/katalvlaran/polytraj/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ZeroCoefficients verifies allocation size and zero initialization.
func TestNew_ZeroCoefficients(t *testing.T) {
	p := polynomial.New(4)
	assert.Equal(t, 4, p.N())
	assert.Equal(t, []float64{0, 0, 0, 0}, p.Coefficients())

	assert.Equal(t, 0, polynomial.New(-3).N(), "negative n is clamped to 0")
}

// TestNewFromCoefficients_Copies ensures the input slice is not aliased.
func TestNewFromCoefficients_Copies(t *testing.T) {
	src := []float64{1, 2, 3}
	p := polynomial.NewFromCoefficients(src)
	src[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, p.Coefficients())

	out := p.Coefficients()
	out[1] = 100
	assert.Equal(t, []float64{1, 2, 3}, p.Coefficients(), "Coefficients returns a copy")
}

// TestSetCoefficients_Count rejects length mismatches and keeps old data.
func TestSetCoefficients_Count(t *testing.T) {
	p := polynomial.NewFromCoefficients([]float64{1, 2, 3})
	err := p.SetCoefficients([]float64{1, 2})
	assert.ErrorIs(t, err, polynomial.ErrCoefficientCount)
	assert.Equal(t, []float64{1, 2, 3}, p.Coefficients())

	require.NoError(t, p.SetCoefficients([]float64{4, 5, 6}))
	assert.Equal(t, []float64{4, 5, 6}, p.Coefficients())
}

// TestSetCoefficients_NaNInf rejects non-finite coefficients atomically.
func TestSetCoefficients_NaNInf(t *testing.T) {
	p := polynomial.New(2)
	assert.ErrorIs(t, p.SetCoefficients([]float64{1, math.NaN()}), polynomial.ErrNaNInf)
	assert.Equal(t, []float64{0, 0}, p.Coefficients())
	assert.ErrorIs(t, p.SetCoefficient(0, math.Inf(-1)), polynomial.ErrNaNInf)
}

// TestSetCoefficient_Range checks index validation.
func TestSetCoefficient_Range(t *testing.T) {
	p := polynomial.New(2)
	require.NoError(t, p.SetCoefficient(1, 7))
	assert.Equal(t, []float64{0, 7}, p.Coefficients())
	assert.ErrorIs(t, p.SetCoefficient(2, 1), polynomial.ErrOutOfRange)
	assert.ErrorIs(t, p.SetCoefficient(-1, 1), polynomial.ErrOutOfRange)
}

// TestEvaluate_Quadratic walks 1 + 2t + 3t² through its derivatives.
func TestEvaluate_Quadratic(t *testing.T) {
	p := polynomial.NewFromCoefficients([]float64{1, 2, 3})
	cases := []struct {
		t     float64
		order int
		want  float64
	}{
		{1, motion.Position, 6},
		{1, motion.Velocity, 8},
		{0, motion.Acceleration, 6},
		{5, motion.Acceleration, 6},
		{2, motion.Jerk, 0},
		{2, 10, 0},
		{-1, motion.Position, 2},
		{3, motion.Position, 34},
	}
	for _, tc := range cases {
		got, err := p.Evaluate(tc.t, tc.order)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "t=%g order=%d", tc.t, tc.order)
	}
}

// TestEvaluate_NegativeOrder fails fast.
func TestEvaluate_NegativeOrder(t *testing.T) {
	p := polynomial.NewFromCoefficients([]float64{1})
	_, err := p.Evaluate(0, -1)
	assert.ErrorIs(t, err, motion.ErrNegativeOrder)
}

// TestEvaluate_ZeroValue treats the zero Polynomial as the constant 0.
func TestEvaluate_ZeroValue(t *testing.T) {
	var p polynomial.Polynomial
	v, err := p.Evaluate(3, motion.Position)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestDerivativeCoefficients_Quintic checks weights j!/(j-k)! and zero padding.
func TestDerivativeCoefficients_Quintic(t *testing.T) {
	p := polynomial.NewFromCoefficients([]float64{1, 1, 1, 1, 1, 1})

	d1, err := p.DerivativeCoefficients(motion.Velocity)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 0}, d1)

	d3, err := p.DerivativeCoefficients(motion.Jerk)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 24, 60, 0, 0, 0}, d3)

	d9, err := p.DerivativeCoefficients(9)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, d9)

	_, err = p.DerivativeCoefficients(-2)
	assert.ErrorIs(t, err, motion.ErrNegativeOrder)
}

// TestDerivativeCoefficients_MatchEvaluate compares both paths at several t.
func TestDerivativeCoefficients_MatchEvaluate(t *testing.T) {
	p := polynomial.NewFromCoefficients([]float64{0.5, -1, 2, 0.25, -3})
	for order := 0; order < 6; order++ {
		dc, err := p.DerivativeCoefficients(order)
		require.NoError(t, err)
		q := polynomial.NewFromCoefficients(dc)
		for _, tt := range []float64{-1.5, 0, 0.3, 2} {
			want, err := p.Evaluate(tt, order)
			require.NoError(t, err)
			got, err := q.Evaluate(tt, motion.Position)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-12, "order=%d t=%g", order, tt)
		}
	}
}

// TestCloneEqualString covers the small helpers.
func TestCloneEqualString(t *testing.T) {
	p := polynomial.NewFromCoefficients([]float64{1, 2.5, -3})
	c := p.Clone()
	assert.True(t, p.Equal(c))
	require.NoError(t, c.SetCoefficient(0, 9))
	assert.False(t, p.Equal(c))
	assert.False(t, p.Equal(nil))
	assert.False(t, p.Equal(polynomial.New(2)))
	assert.Equal(t, "[1 2.5 -3]", p.String())
	assert.Equal(t, "[]", polynomial.New(0).String())
}
