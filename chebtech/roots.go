package chebtech

import (
	"math"
	"sort"
)

// Root-scan resolution floor and bisection termination width.
const (
	rootScanMin   = 513
	rootWidthStop = 1e-15
	rootDedupeTol = 1e-12
)

// Roots returns the approximant's roots inside [-1,1] in ascending
// order.
//
// Algorithm Outline:
//  1. Sample on a dense Chebyshev grid (at least rootScanMin points,
//     at least 8× the coefficient count) so roots clustering toward
//     the endpoints are still separated.
//  2. Record exact zero samples; bisect every sign change.
//  3. Deduplicate within rootDedupeTol and sort ascending.
//
// Even-order touching roots produce no sign change and are not found.
// The zero function reports no roots.
func (f *Fun) Roots() []float64 {
	if f.IsZero() {
		return nil
	}

	n := 8 * len(f.coeffs)
	if n < rootScanMin {
		n = rootScanMin
	}

	xs := make([]float64, n+1)
	vs := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		// Ascending order: x_i = cos((n-i)π/n).
		xs[i] = math.Cos(float64(n-i) * math.Pi / float64(n))
		vs[i] = f.Eval(xs[i])
	}

	var roots []float64
	for i := 0; i <= n; i++ {
		if vs[i] == 0 {
			roots = append(roots, xs[i])
			continue
		}
		if i < n && vs[i]*vs[i+1] < 0 {
			roots = append(roots, f.bisect(xs[i], xs[i+1], vs[i]))
		}
	}

	sort.Float64s(roots)

	return dedupe(roots)
}

// bisect refines a bracketed sign change down to rootWidthStop.
func (f *Fun) bisect(lo, hi, flo float64) float64 {
	for hi-lo > rootWidthStop {
		mid := (lo + hi) / 2
		if mid <= lo || mid >= hi {
			break
		}
		fm := f.Eval(mid)
		if fm == 0 {
			return mid
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}

func dedupe(sorted []float64) []float64 {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, r := range sorted[1:] {
		if r-out[len(out)-1] > rootDedupeTol {
			out = append(out, r)
		}
	}

	return out
}
