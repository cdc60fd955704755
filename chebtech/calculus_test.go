package chebtech_test

import (
	"math"
	"testing"

	"github.com/projectro/chebfun/chebtech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiff_Sin checks the coefficient derivative recurrence against
// the analytic derivative.
func TestDiff_Sin(t *testing.T) {
	f, err := chebtech.New(math.Sin)
	require.NoError(t, err)

	df := f.Diff()
	for _, x := range samplePoints {
		assert.InDelta(t, math.Cos(x), df.Eval(x), 1e-9, "sin' at %g", x)
	}
}

// TestDiff_Constant verifies that differentiating a constant yields
// the zero function.
func TestDiff_Constant(t *testing.T) {
	c, err := chebtech.New(func(float64) float64 { return 4.2 })
	require.NoError(t, err)

	assert.True(t, c.Diff().IsZero(), "constant derivative is zero")
}

// TestCumsum_Cos checks the antiderivative recurrence and its F(-1)=0
// normalization: ∫cos = sin(x) + sin(1).
func TestCumsum_Cos(t *testing.T) {
	f, err := chebtech.New(math.Cos)
	require.NoError(t, err)

	F := f.Cumsum()
	assert.InDelta(t, 0, F.Eval(-1), 1e-12, "normalization F(-1)=0")
	for _, x := range samplePoints {
		assert.InDelta(t, math.Sin(x)+math.Sin(1), F.Eval(x), 1e-11, "∫cos at %g", x)
	}
}

// TestDiffCumsum_RoundTrip verifies d/dx ∘ ∫ = identity on a smooth
// function.
func TestDiffCumsum_RoundTrip(t *testing.T) {
	f, err := chebtech.New(func(x float64) float64 { return math.Exp(x / 2) })
	require.NoError(t, err)

	g := f.Cumsum().Diff()
	for _, x := range samplePoints {
		assert.InDelta(t, f.Eval(x), g.Eval(x), 1e-9, "round trip at %g", x)
	}
}

// TestCumsumWeighted_ClosedForm checks the weighted solve against
// closed forms: for f ≡ 1 and e = -1/2,
//
//	left:  (1/2)u + (1+x)u' = 1  ⇒  u ≡ 2   (∫(1+t)^-½ = 2(1+x)^½),
//	right: (1/2)v − (1−x)v' = 1  ⇒  v ≡ 2.
func TestCumsumWeighted_ClosedForm(t *testing.T) {
	one, err := chebtech.New(func(float64) float64 { return 1 })
	require.NoError(t, err)

	u := one.CumsumWeighted(-0.5, true)
	v := one.CumsumWeighted(-0.5, false)
	for _, x := range samplePoints {
		assert.InDelta(t, 2, u.Eval(x), 1e-12, "left solve at %g", x)
		assert.InDelta(t, 2, v.Eval(x), 1e-12, "right solve at %g", x)
	}
}

// TestCumsumWeighted_Linear checks a non-constant solve:
// (1/2)u + (1+x)u' = x has the linear solution u = (2x - 4)/3.
func TestCumsumWeighted_Linear(t *testing.T) {
	id, err := chebtech.New(func(x float64) float64 { return x })
	require.NoError(t, err)

	u := id.CumsumWeighted(-0.5, true)
	for _, x := range samplePoints {
		assert.InDelta(t, (2*x-4)/3, u.Eval(x), 1e-12, "linear solve at %g", x)
	}
}

// TestCumsumWeighted_DerivativeIdentity verifies the defining identity
// numerically: with u = CumsumWeighted(e, left) for f = cos and
// e = -0.3, the combination (e+1)·u + (1+x)·u' must reproduce cos.
func TestCumsumWeighted_DerivativeIdentity(t *testing.T) {
	f, err := chebtech.New(math.Cos)
	require.NoError(t, err)

	const e = -0.3
	u := f.CumsumWeighted(e, true)
	du := u.Diff()
	for _, x := range samplePoints {
		got := (e+1)*u.Eval(x) + (1+x)*du.Eval(x)
		assert.InDelta(t, math.Cos(x), got, 1e-9, "operator identity at %g", x)
	}
}
