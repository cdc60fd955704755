// Package chebtech: calculus kernels on coefficient vectors.
//
// Diff and Cumsum use the classical Chebyshev recurrences. The
// weighted antiderivative solves a degree-graded linear operator by
// back-substitution, mirroring the triangular substitution shape of
// an LU solve.

package chebtech

import (
	"github.com/projectro/chebfun/smooth"
)

// Diff returns the derivative.
//
// Recurrence (coeffs c_0..c_n, derivative d_0..d_{n-1}):
//
//	d_k = d_{k+2} + 2(k+1)·c_{k+1},  k = n-1 .. 0,  d_n = d_{n+1} = 0,
//	d_0 halved at the end.
func (f *Fun) Diff() smooth.Fn {
	c := f.coeffs
	n := len(c) - 1
	if n == 0 {
		return zeroFun()
	}
	d := make([]float64, n+2)
	for k := n - 1; k >= 0; k-- {
		d[k] = d[k+2] + 2*float64(k+1)*c[k+1]
	}
	d[0] /= 2

	return &Fun{coeffs: trim(d[:n], 0)}
}

// Cumsum returns the antiderivative F with F(-1) = 0.
//
// Recurrence: b_1 = c_0 - c_2/2, b_j = (c_{j-1} - c_{j+1})/(2j) for
// j >= 2, and b_0 chosen so that Σ b_j·T_j(-1) = 0.
func (f *Fun) Cumsum() smooth.Fn {
	c := f.coeffs
	n := len(c) - 1
	b := make([]float64, n+2)

	at := func(j int) float64 {
		if j > n {
			return 0
		}
		return c[j]
	}

	b[1] = c[0] - at(2)/2
	for j := 2; j <= n+1; j++ {
		b[j] = (at(j-1) - at(j+1)) / (2 * float64(j))
	}
	// Fix the constant so F(-1) = 0, using T_j(-1) = (-1)^j.
	sign := -1.0
	for j := 1; j <= n+1; j++ {
		b[0] -= sign * b[j]
		sign = -sign
	}

	return &Fun{coeffs: trim(b, 0)}
}

// CumsumWeighted returns u solving
//
//	(exp+1)·u + (1+x)·u' = f   (left == true), or
//	(exp+1)·u − (1−x)·u' = f   (left == false),
//
// so that (1+x)^(exp+1)·u (left) or −(1−x)^(exp+1)·u (right) is an
// antiderivative of the weighted function (1±x)^exp·f. Requires
// exp > -1: the operator's diagonal entries are exp+1+m > 0, so the
// degree-graded system is nonsingular.
//
// The operator maps span{T_0..T_m} into itself, hence is upper
// triangular in the Chebyshev basis; solve by back-substitution over
// its columns.
func (f *Fun) CumsumWeighted(exp float64, left bool) smooth.Fn {
	c := f.coeffs
	n := len(c)
	r := make([]float64, n)
	copy(r, c)
	u := make([]float64, n)

	for m := n - 1; m >= 0; m-- {
		col := weightedColumn(m, exp, left)
		u[m] = r[m] / col[m]
		for j := 0; j <= m; j++ {
			r[j] -= u[m] * col[j]
		}
	}

	return &Fun{coeffs: trim(u, 0)}
}

// weightedColumn returns the Chebyshev coefficients (length m+1) of
// the weighted-antiderivative operator applied to T_m:
//
//	left:  (e+1)·T_m + T_m' + x·T_m'
//	right: (e+1)·T_m − T_m' + x·T_m'
func weightedColumn(m int, e float64, left bool) []float64 {
	col := make([]float64, m+1)
	col[m] = e + 1

	d := derivBasis(m)
	s := 1.0
	if !left {
		s = -1
	}
	for j, v := range d {
		col[j] += s * v
	}
	for j, v := range mulX(d) {
		if j <= m {
			col[j] += v
		}
	}

	return col
}

// derivBasis returns the Chebyshev coefficients of T_m', using
// T_m' = m·U_{m-1} = 2m·(T_{m-1} + T_{m-3} + ...), with the T_0 term
// counted once.
func derivBasis(m int) []float64 {
	if m == 0 {
		return nil
	}
	d := make([]float64, m)
	for j := m - 1; j >= 0; j -= 2 {
		if j == 0 {
			d[0] = float64(m)
		} else {
			d[j] = 2 * float64(m)
		}
	}

	return d
}

// mulX returns the coefficients of x·p given the coefficients of p,
// using x·T_j = (T_{j+1} + T_{j-1})/2 and x·T_0 = T_1.
func mulX(c []float64) []float64 {
	out := make([]float64, len(c)+1)
	for j, v := range c {
		if v == 0 {
			continue
		}
		if j == 0 {
			out[1] += v
		} else {
			out[j+1] += v / 2
			out[j-1] += v / 2
		}
	}

	return out
}
