package chebtech_test

import (
	"math"
	"testing"

	"github.com/projectro/chebfun/chebtech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePoints are interior comparison abscissae shared by the tests.
var samplePoints = []float64{-0.97, -0.5, -0.123, 0, 0.25, 0.8, 0.99}

// TestNew_NilFunction verifies the nil-callable sentinel.
func TestNew_NilFunction(t *testing.T) {
	_, err := chebtech.New(nil)
	assert.ErrorIs(t, err, chebtech.ErrNilFunction, "nil callable must error")
}

// TestNew_Cos verifies adaptive construction of an entire function:
// convergence at a short length and pointwise accuracy.
func TestNew_Cos(t *testing.T) {
	f, err := chebtech.New(math.Cos)
	require.NoError(t, err, "cos must converge")

	assert.LessOrEqual(t, f.Length(), 24, "cos needs only a short coefficient vector")
	for _, x := range samplePoints {
		assert.InDelta(t, math.Cos(x), f.Eval(x), 1e-11, "eval at %g", x)
	}
}

// TestNew_PolynomialExact verifies that low-degree polynomials are
// reproduced to machine precision.
func TestNew_PolynomialExact(t *testing.T) {
	p := func(x float64) float64 { return 3*x*x*x - x + 0.25 }
	f, err := chebtech.New(p)
	require.NoError(t, err)

	for _, x := range samplePoints {
		assert.InDelta(t, p(x), f.Eval(x), 1e-13, "eval at %g", x)
	}
	assert.LessOrEqual(t, f.Length(), 4, "cubic needs four coefficients")
}

// TestNew_InteriorNaN verifies that a non-finite interior sample is a
// hard error, not extrapolated away.
func TestNew_InteriorNaN(t *testing.T) {
	_, err := chebtech.New(func(x float64) float64 {
		if math.Abs(x) < 0.1 {
			return math.NaN()
		}
		return x
	})
	assert.ErrorIs(t, err, chebtech.ErrNonFiniteSample, "interior NaN must error")
}

// TestNew_EndpointExtrapolation verifies that a non-finite sample at
// x=1 is patched by extrapolation and the build still converges.
func TestNew_EndpointExtrapolation(t *testing.T) {
	f, err := chebtech.New(func(x float64) float64 {
		if x == 1 {
			return math.NaN()
		}
		return math.Sin(x)
	})
	require.NoError(t, err, "endpoint NaN must be extrapolated, not fatal")

	assert.InDelta(t, math.Sin(1), f.Eval(1), 1e-8, "extrapolated endpoint value")
	assert.InDelta(t, math.Sin(0.5), f.Eval(0.5), 1e-10, "interior accuracy unaffected")
}

// TestNew_NotConverged verifies the explicit failure on a kink, and
// that the best-effort approximant is still returned.
func TestNew_NotConverged(t *testing.T) {
	f, err := chebtech.New(math.Abs, chebtech.WithMaxDegree(64))
	assert.ErrorIs(t, err, chebtech.ErrNotConverged, "|x| never meets tolerance")
	require.NotNil(t, f, "best-effort approximant must be returned")
	assert.InDelta(t, 0.5, f.Eval(0.5), 1e-2, "coarse approximant still tracks |x|")
}

// TestIsZero distinguishes the zero build from a small-but-nonzero one.
func TestIsZero(t *testing.T) {
	z, err := chebtech.New(func(float64) float64 { return 0 })
	require.NoError(t, err)
	assert.True(t, z.IsZero(), "zero function")

	f, err := chebtech.New(math.Cos)
	require.NoError(t, err)
	assert.False(t, f.IsZero(), "cos is not zero")
	assert.True(t, f.IsReal(), "engine values are real")
}

// TestAdd_Mul_Scale exercises the coefficient-wise arithmetic kernels
// against pointwise ground truth.
func TestAdd_Mul_Scale(t *testing.T) {
	f, err := chebtech.New(math.Cos)
	require.NoError(t, err)
	g, err := chebtech.New(math.Sin)
	require.NoError(t, err)

	sum := f.Add(g)
	prod := f.Mul(g)
	half := f.Scale(0.5)
	for _, x := range samplePoints {
		assert.InDelta(t, math.Cos(x)+math.Sin(x), sum.Eval(x), 1e-11, "add at %g", x)
		assert.InDelta(t, math.Cos(x)*math.Sin(x), prod.Eval(x), 1e-11, "mul at %g", x)
		assert.InDelta(t, math.Cos(x)/2, half.Eval(x), 1e-12, "scale at %g", x)
	}
}

// TestMul_PolynomialExact checks the convolution kernel on x·x = x².
func TestMul_PolynomialExact(t *testing.T) {
	id, err := chebtech.New(func(x float64) float64 { return x })
	require.NoError(t, err)

	sq := id.Mul(id)
	for _, x := range samplePoints {
		assert.InDelta(t, x*x, sq.Eval(x), 1e-14, "x² at %g", x)
	}
}

// TestDiv verifies quotient reconstruction against a non-vanishing
// divisor.
func TestDiv(t *testing.T) {
	f, err := chebtech.New(math.Cos)
	require.NoError(t, err)
	g, err := chebtech.New(func(x float64) float64 { return 2 + x })
	require.NoError(t, err)

	q := f.Div(g)
	for _, x := range samplePoints {
		assert.InDelta(t, math.Cos(x)/(2+x), q.Eval(x), 1e-10, "quotient at %g", x)
	}
}

// TestEngine_Build checks the smooth.Engine adapter surface.
func TestEngine_Build(t *testing.T) {
	e := chebtech.NewEngine()
	fn, err := e.Build(math.Cos)
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(0.3), fn.Eval(0.3), 1e-11)
}

// TestWithTolerance_Panics documents the programmer-error contract of
// the option constructors.
func TestWithTolerance_Panics(t *testing.T) {
	assert.Panics(t, func() { chebtech.WithTolerance(0) }, "non-positive tolerance")
	assert.Panics(t, func() { chebtech.WithMaxDegree(100) }, "non power-of-two degree")
}
