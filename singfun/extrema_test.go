package singfun_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMinMax_Smooth: cos on [-1,1] dips to cos(1) at the endpoints and
// peaks at 1.
func TestMinMax_Smooth(t *testing.T) {
	f := mustValue(t, math.Cos, 0, 0)

	lo, hi := f.MinMax()
	assert.InDelta(t, math.Cos(1), lo, 1e-6)
	assert.InDelta(t, 1, hi, 1e-6)
}

// TestMinMax_Pole: a positive residual over a pole is unbounded above
// and bounded below.
func TestMinMax_Pole(t *testing.T) {
	f := mustValue(t, func(x float64) float64 { return 2 + math.Sin(x) }, -1, 0)

	lo, hi := f.MinMax()
	assert.True(t, math.IsInf(hi, 1))
	assert.False(t, math.IsInf(lo, 0), "lower bound stays finite")
}

// TestMinMax_Root: a branch root pins the infimum of √(1-x)·(2+sin x)
// at exactly 0.
func TestMinMax_Root(t *testing.T) {
	f := mustValue(t, func(x float64) float64 { return 2 + math.Sin(x) }, 0, 0.5)

	lo, hi := f.MinMax()
	assert.Zero(t, lo)
	assert.Greater(t, hi, 1.0)
}

// TestNorm: sup-norm of a signed pole is infinite; of cos it is 1.
func TestNorm(t *testing.T) {
	smooth := mustValue(t, math.Cos, 0, 0)
	assert.InDelta(t, 1, smooth.Norm(), 1e-6)

	pole := mustValue(t, func(x float64) float64 { return -2 - math.Sin(x) }, -1, 0)
	assert.True(t, math.IsInf(pole.Norm(), 1), "negative pole still has infinite sup-norm")
}
