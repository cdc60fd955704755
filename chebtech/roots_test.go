package chebtech_test

import (
	"math"
	"testing"

	"github.com/projectro/chebfun/chebtech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoots_CosPi finds the two interior roots of cos(πx).
func TestRoots_CosPi(t *testing.T) {
	f, err := chebtech.New(func(x float64) float64 { return math.Cos(math.Pi * x) })
	require.NoError(t, err)

	roots := f.Roots()
	require.Len(t, roots, 2, "cos(πx) has roots at ±1/2")
	assert.InDelta(t, -0.5, roots[0], 1e-10)
	assert.InDelta(t, 0.5, roots[1], 1e-10)
}

// TestRoots_NoRoots verifies a positive function reports none.
func TestRoots_NoRoots(t *testing.T) {
	f, err := chebtech.New(func(x float64) float64 { return 2 + math.Sin(x) })
	require.NoError(t, err)

	assert.Empty(t, f.Roots(), "2+sin never vanishes")
}

// TestRoots_ZeroFunction documents that the zero function reports no
// roots rather than everything.
func TestRoots_ZeroFunction(t *testing.T) {
	z, err := chebtech.New(func(float64) float64 { return 0 })
	require.NoError(t, err)

	assert.Nil(t, z.Roots())
}

// TestRoots_ManyRoots checks root separation on an oscillatory
// function: sin(3.5πx) has seven roots strictly inside (-1,1), at
// k/3.5 for k = -3..3.
func TestRoots_ManyRoots(t *testing.T) {
	f, err := chebtech.New(func(x float64) float64 { return math.Sin(3.5 * math.Pi * x) })
	require.NoError(t, err)

	roots := f.Roots()
	require.Len(t, roots, 7)
	for i, r := range roots {
		assert.InDelta(t, float64(i-3)/3.5, r, 1e-9, "root %d", i)
	}
}
