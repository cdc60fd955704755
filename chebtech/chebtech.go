package chebtech

import (
	"fmt"
	"math"

	"github.com/projectro/chebfun/smooth"
)

// Fun is a smooth function on [-1,1] stored as Chebyshev coefficients:
//
//	f(x) = Σ coeffs[k]·T_k(x), k = 0..len(coeffs)-1,
//
// where coeffs[0] is the plain T_0 coefficient (no halving convention).
// Fun is immutable; every operation returns a fresh value.
type Fun struct {
	coeffs []float64
}

// compile-time check: *Fun satisfies the engine contract.
var _ smooth.Fn = (*Fun)(nil)

// New adaptively approximates f on [-1,1].
//
// Algorithm Outline:
//  1. Sample f at second-kind Chebyshev points x_i = cos(iπ/N) for
//     N = 16, 32, ..., maxDegree.
//  2. Non-finite samples at x = ±1 are replaced by 4-point polynomial
//     extrapolation from the adjacent grid points; a non-finite
//     interior sample aborts with ErrNonFiniteSample.
//  3. Convert values to coefficients by the direct cosine-transform
//     summation (O(N²)).
//  4. Accept when the last three coefficients are all below
//     tol·max(1, vscale), where vscale = max|sample|; otherwise double
//     N and repeat.
//
// Errors:
//   - ErrNilFunction      — f is nil.
//   - ErrNonFiniteSample  — Inf/NaN strictly inside (-1,1).
//   - ErrNotConverged     — tail still large at maxDegree; the returned
//     *Fun is the best-effort approximant.
func New(f func(float64) float64, opts ...Option) (*Fun, error) {
	if f == nil {
		return zeroFun(), ErrNilFunction
	}
	o := gatherOptions(opts...)

	var (
		coeffs []float64
		vscale float64
	)
	for n := o.minDegree; n <= o.maxDegree; n *= 2 {
		values := make([]float64, n+1)
		for i := 0; i <= n; i++ {
			values[i] = f(math.Cos(float64(i) * math.Pi / float64(n)))
		}
		if err := patchEndpoints(values, n); err != nil {
			return zeroFun(), err
		}

		vscale = maxAbs(values)
		coeffs = valuesToCoeffs(values)

		if tailBelow(coeffs, o.tol*math.Max(1, vscale)) {
			return &Fun{coeffs: trim(coeffs, o.tol*math.Max(1, vscale))}, nil
		}
	}

	return &Fun{coeffs: trim(coeffs, o.tol*math.Max(1, vscale))}, ErrNotConverged
}

// patchEndpoints replaces non-finite endpoint samples by Lagrange
// extrapolation from the four nearest interior points. values[0]
// corresponds to x=1 and values[n] to x=-1.
func patchEndpoints(values []float64, n int) error {
	for i := 1; i < n; i++ {
		if !isFinite(values[i]) {
			x := math.Cos(float64(i) * math.Pi / float64(n))
			return fmt.Errorf("x=%.6g: %w", x, ErrNonFiniteSample)
		}
	}
	if !isFinite(values[0]) {
		xs, ys := nodeWindow(n, 1, 4)
		values[0] = lagrangeAt(xs, ys, 1, values)
	}
	if !isFinite(values[n]) {
		xs, ys := nodeWindow(n, n-4, 4)
		values[n] = lagrangeAt(xs, ys, -1, values)
	}

	return nil
}

// nodeWindow returns the grid abscissae and their indices for a run of
// count points starting at index start.
func nodeWindow(n, start, count int) (xs []float64, idx []int) {
	xs = make([]float64, count)
	idx = make([]int, count)
	for k := 0; k < count; k++ {
		i := start + k
		xs[k] = math.Cos(float64(i) * math.Pi / float64(n))
		idx[k] = i
	}

	return xs, idx
}

// lagrangeAt evaluates the Lagrange interpolant through
// (xs[k], values[idx[k]]) at x.
func lagrangeAt(xs []float64, idx []int, x float64, values []float64) float64 {
	sum := 0.0
	for k := range xs {
		w := 1.0
		for m := range xs {
			if m != k {
				w *= (x - xs[m]) / (xs[k] - xs[m])
			}
		}
		sum += w * values[idx[k]]
	}

	return sum
}

// valuesToCoeffs converts samples at x_i = cos(iπ/N), i = 0..N, into
// Chebyshev coefficients of the interpolant (type-I discrete cosine
// transform, direct O(N²) summation).
func valuesToCoeffs(values []float64) []float64 {
	n := len(values) - 1
	coeffs := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		// Boundary samples count with weight 1/2.
		sum := values[0] / 2
		if j%2 == 0 {
			sum += values[n] / 2
		} else {
			sum -= values[n] / 2
		}
		for i := 1; i < n; i++ {
			sum += values[i] * math.Cos(float64(j*i)*math.Pi/float64(n))
		}
		coeffs[j] = 2 * sum / float64(n)
	}
	// The first and last modes are shared between mirrored frequencies.
	coeffs[0] /= 2
	coeffs[n] /= 2

	return coeffs
}

// Eval returns the approximant's value at x by the Clenshaw recurrence.
func (f *Fun) Eval(x float64) float64 {
	c := f.coeffs
	n := len(c) - 1
	if n == 0 {
		return c[0]
	}
	var b1, b2 float64
	for k := n; k >= 1; k-- {
		b1, b2 = c[k]+2*x*b1-b2, b1
	}

	return c[0] + x*b1 - b2
}

// Coeffs returns a copy of the Chebyshev coefficient vector.
func (f *Fun) Coeffs() []float64 {
	out := make([]float64, len(f.coeffs))
	copy(out, f.coeffs)

	return out
}

// Length reports the number of stored coefficients.
func (f *Fun) Length() int { return len(f.coeffs) }

// IsReal reports whether the value is real-valued (always true for
// this engine).
func (f *Fun) IsReal() bool { return true }

// IsZero reports whether the value is numerically the zero function.
func (f *Fun) IsZero() bool { return maxAbs(f.coeffs) <= zeroFloor }

// zeroFun is the canonical zero approximant.
func zeroFun() *Fun { return &Fun{coeffs: []float64{0}} }

// tailBelow reports whether the last three coefficients are all below
// the given absolute threshold.
func tailBelow(c []float64, floor float64) bool {
	n := len(c)
	if n < 3 {
		return maxAbs(c) <= floor
	}
	for _, v := range c[n-3:] {
		if math.Abs(v) > floor {
			return false
		}
	}

	return true
}

// trim drops trailing coefficients below floor, keeping at least one.
func trim(c []float64, floor float64) []float64 {
	last := len(c) - 1
	for last > 0 && math.Abs(c[last]) <= floor {
		last--
	}
	out := make([]float64, last+1)
	copy(out, c[:last+1])

	return out
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
