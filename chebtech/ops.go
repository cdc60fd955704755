// Package chebtech: arithmetic kernels on coefficient vectors.
// Operands of the native *Fun type combine coefficient-wise; foreign
// smooth.Fn operands fall back to adaptive reconstruction from
// pointwise evaluation.

package chebtech

import (
	"math"

	"github.com/projectro/chebfun/smooth"
)

// Add returns f+g.
func (f *Fun) Add(g smooth.Fn) smooth.Fn {
	cg, ok := g.(*Fun)
	if !ok {
		return rebuild(func(x float64) float64 { return f.Eval(x) + g.Eval(x) })
	}

	n := len(f.coeffs)
	if len(cg.coeffs) > n {
		n = len(cg.coeffs)
	}
	out := make([]float64, n)
	for i, v := range f.coeffs {
		out[i] += v
	}
	for i, v := range cg.coeffs {
		out[i] += v
	}

	return &Fun{coeffs: trim(out, aliasFloor(out))}
}

// Mul returns f·g via the product-rule convolution
// T_m·T_n = (T_{m+n} + T_{|m-n|}) / 2.
func (f *Fun) Mul(g smooth.Fn) smooth.Fn {
	cg, ok := g.(*Fun)
	if !ok {
		return rebuild(func(x float64) float64 { return f.Eval(x) * g.Eval(x) })
	}

	a, b := f.coeffs, cg.coeffs
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			p := av * bv / 2
			out[i+j] += p
			out[absInt(i-j)] += p
		}
	}

	return &Fun{coeffs: trim(out, aliasFloor(out))}
}

// Div returns f/g by adaptive reconstruction of the pointwise
// quotient. The divisor must not vanish on [-1,1]; callers are
// expected to check g.Roots()/g.IsZero() first (singfun does). A
// quotient that fails to converge is returned best-effort.
func (f *Fun) Div(g smooth.Fn) smooth.Fn {
	return rebuild(func(x float64) float64 { return f.Eval(x) / g.Eval(x) })
}

// Scale returns c·f.
func (f *Fun) Scale(c float64) smooth.Fn {
	out := make([]float64, len(f.coeffs))
	for i, v := range f.coeffs {
		out[i] = c * v
	}

	return &Fun{coeffs: trim(out, 0)}
}

// rebuild constructs best-effort, swallowing ErrNotConverged: the
// result is still the max-resolution approximant.
func rebuild(f func(float64) float64) *Fun {
	fun, _ := New(f)

	return fun
}

// aliasFloor is the trailing-coefficient floor used after exact
// coefficient arithmetic: machine-epsilon relative to the largest
// coefficient.
func aliasFloor(c []float64) float64 {
	return 4 * 2.220446049250313e-16 * math.Max(1, maxAbs(c))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
