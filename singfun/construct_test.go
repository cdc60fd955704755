package singfun_test

import (
	"math"
	"testing"

	"github.com/projectro/chebfun/singfun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interiorPoints are shared comparison abscissae strictly inside (-1,1).
var interiorPoints = []float64{-0.9, -0.4, 0, 0.3, 0.75}

// TestNew_NilOperator verifies the invalid-operator sentinel.
func TestNew_NilOperator(t *testing.T) {
	_, err := singfun.New(nil)
	assert.ErrorIs(t, err, singfun.ErrInvalidOperator, "nil operator must error")
}

// TestNew_BadHint verifies rejection of a hint outside the closed
// enumeration.
func TestNew_BadHint(t *testing.T) {
	_, err := singfun.New(math.Cos, singfun.WithHints(singfun.SingType(42), singfun.None))
	assert.ErrorIs(t, err, singfun.ErrUnknownSingularityType)
}

// TestNew_BadExponent verifies rejection of non-finite supplied
// exponents.
func TestNew_BadExponent(t *testing.T) {
	_, err := singfun.New(math.Cos, singfun.WithExponents(math.NaN(), 0))
	assert.ErrorIs(t, err, singfun.ErrInvalidExponent)

	_, err = singfun.New(math.Cos, singfun.WithExponents(0, math.Inf(1)))
	assert.ErrorIs(t, err, singfun.ErrInvalidExponent)
}

// TestNew_SuppliedExponents_RecoversResidual: constructing from
// op(x) = cos(x)·(1+x)^-½·(1-x)² with the exponents supplied must
// reproduce cos as the smooth residual.
func TestNew_SuppliedExponents_RecoversResidual(t *testing.T) {
	op := func(x float64) float64 {
		return math.Cos(x) * math.Pow(1+x, -0.5) * (1 - x) * (1 - x)
	}
	f, err := singfun.New(op, singfun.WithExponents(-0.5, 2))
	require.NoError(t, err)

	a, b := f.Exponents()
	assert.Equal(t, -0.5, a)
	assert.Equal(t, 2.0, b)
	for _, x := range interiorPoints {
		assert.InDelta(t, math.Cos(x), f.Smooth().Eval(x), 1e-7, "residual at %g", x)
	}
}

// TestNew_SmoothFunction: a bounded nonzero callable yields exponents
// (0,0) under the default (most general) hints.
func TestNew_SmoothFunction(t *testing.T) {
	f, err := singfun.New(math.Cos)
	require.NoError(t, err)

	a, b := f.Exponents()
	assert.Zero(t, a, "no left singularity")
	assert.Zero(t, b, "no right singularity")
	assert.True(t, f.IsSmooth())
	for _, x := range interiorPoints {
		assert.InDelta(t, math.Cos(x), f.Eval(x), 1e-8, "eval at %g", x)
	}
}

// TestNew_AllZeroOperator: a callable that is exactly zero must come
// out as the all-zero value with exponents (0,0), not a regression on
// log(0).
func TestNew_AllZeroOperator(t *testing.T) {
	f, err := singfun.New(func(float64) float64 { return 0 })
	require.NoError(t, err)

	assert.True(t, f.IsZero())
	assert.True(t, f.IsSmooth())
	assert.Zero(t, f.Eval(0.3))
}

// TestParseSingType covers the four recognized strings
// (case-insensitive) and the rejection path.
func TestParseSingType(t *testing.T) {
	cases := []struct {
		in   string
		want singfun.SingType
	}{
		{"pole", singfun.Pole},
		{"Branch", singfun.Branch},
		{"ROOT", singfun.Root},
		{" none ", singfun.None},
	}
	for _, tc := range cases {
		got, err := singfun.ParseSingType(tc.in)
		require.NoError(t, err, "parse %q", tc.in)
		assert.Equal(t, tc.want, got, "parse %q", tc.in)
	}

	_, err := singfun.ParseSingType("sing")
	assert.ErrorIs(t, err, singfun.ErrUnknownSingularityType)
}

// TestZero verifies the canonical zero factory.
func TestZero(t *testing.T) {
	z := singfun.Zero()
	assert.True(t, z.IsZero())
	assert.True(t, z.IsSmooth())
	assert.Zero(t, z.Eval(-0.5))
}

// TestOption_Panics documents the programmer-error contract of the
// option constructors.
func TestOption_Panics(t *testing.T) {
	assert.Panics(t, func() { singfun.WithExponentTol(-1) })
	assert.Panics(t, func() { singfun.WithMaxSamples(3) })
	assert.Panics(t, func() { singfun.WithMaxPoleOrder(0) })
	assert.Panics(t, func() { singfun.WithEngine(nil) })
}
