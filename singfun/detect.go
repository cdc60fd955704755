// Package singfun: endpoint exponent detection.
//
// Given a callable f on (-1,1), estimate the real exponent e such that
// f(x) ~ C·δ^e as δ → 0, where δ is the distance to the endpoint.
// Two searches share one geometric sample sequence δ_k = seed·ρ^k:
//
//   - Integer search: magnitude-ratio estimates
//     e_k = (log|f(δ_{k+1})| − log|f(δ_k)|) / log ρ
//     with one level of Richardson extrapolation in ρ; accepted when
//     consecutive extrapolated estimates agree within tolerance AND
//     the stabilized value is within tolerance of an integer.
//
//   - Fractional search: sliding-window least-squares slope of
//     log|f| against log δ, Richardson-extrapolated the same way;
//     accepted on consecutive agreement regardless of integrality.
//
// Both searches are bounded by the sample budget and fail explicitly
// (ErrDetectionFailed) instead of refining indefinitely.

package singfun

import (
	"fmt"
	"math"
)

// minUsableSamples is the smallest sample window either search can
// stabilize on.
const minUsableSamples = 6

// detectExponent estimates the exponent at one endpoint.
// left selects x = -1 (samples at -1+δ) versus x = 1 (samples at 1-δ).
func detectExponent(f func(float64) float64, left bool, hint SingType, o options) (float64, error) {
	if hint == None {
		return 0, nil
	}

	ds, vs, allZero := sampleEndpoint(f, left, o)
	if allZero {
		// Exactly zero in a neighborhood: the function is recognized as
		// an all-zero value downstream; regression on log 0 is
		// meaningless.
		return 0, nil
	}
	if len(ds) < minUsableSamples {
		return 0, fmt.Errorf("endpoint %s: too few usable samples: %w", endName(left), ErrDetectionFailed)
	}

	est, ok := integerSearch(ds, vs, o)
	switch hint {
	case Pole, Root:
		if !ok {
			return 0, fmt.Errorf("endpoint %s: integer search: %w", endName(left), ErrDetectionFailed)
		}
		n := math.Round(est)
		if math.Abs(est-n) > o.exponentTol || math.Abs(n) > float64(o.maxPoleOrder) {
			return 0, fmt.Errorf("endpoint %s: order %.6g not an acceptable integer: %w",
				endName(left), est, ErrDetectionFailed)
		}

		return n, nil

	default: // Branch, Unknown
		if ok {
			// Integer search stabilized onto an integer: done without
			// regression.
			if n := math.Round(est); math.Abs(est-n) <= o.exponentTol && math.Abs(n) <= float64(o.maxPoleOrder) {
				return n, nil
			}
		}
		est, ok = fractionalSearch(ds, vs, o)
		if !ok {
			return 0, fmt.Errorf("endpoint %s: fractional search: %w", endName(left), ErrDetectionFailed)
		}

		return snapExponent(est, o.exponentTol), nil
	}
}

// sampleEndpoint evaluates f along the geometric approach sequence.
// It returns the exact endpoint distances (recomputed from the rounded
// abscissae, so log δ is exact) and the sampled values, truncated at
// the first non-finite or exactly-zero value after the sequence
// starts. allZero reports that every sample was exactly zero.
func sampleEndpoint(f func(float64) float64, left bool, o options) (ds, vs []float64, allZero bool) {
	d := o.seedDistance
	zeros := 0
	for k := 0; k < o.maxSamples; k++ {
		var x, exact float64
		if left {
			x = -1 + d
			exact = x + 1 // Sterbenz: exact for x near -1
		} else {
			x = 1 - d
			exact = 1 - x
		}
		v := f(x)
		d *= o.gridRatio

		if v == 0 {
			zeros++
			if len(vs) == 0 {
				continue // still inside a zero neighborhood
			}
			break // underflow tail: stop refining
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			if len(vs) == 0 {
				continue // seed distance still on top of the blow-up
			}
			break
		}
		if len(vs) == 0 && zeros > 0 {
			// Zero neighborhood followed by structure: keep sampling
			// from here.
			zeros = 0
		}
		ds = append(ds, exact)
		vs = append(vs, v)
	}

	return ds, vs, len(vs) == 0 && zeros > 0
}

// integerSearch runs the magnitude-ratio estimator with one Richardson
// level and reports the first stabilized value.
func integerSearch(ds, vs []float64, o options) (float64, bool) {
	raw := ratioEstimates(ds, vs)
	r := richardson(raw, o.gridRatio)

	return stableValue(r, o.exponentTol)
}

// fractionalSearch runs the sliding-window log-log regression with one
// Richardson level and reports the first stabilized slope.
func fractionalSearch(ds, vs []float64, o options) (float64, bool) {
	w := o.regWindow
	if len(ds) < w+3 {
		return 0, false
	}
	slopes := make([]float64, 0, len(ds)-w+1)
	for j := 0; j+w <= len(ds); j++ {
		slopes = append(slopes, logLogSlope(ds[j:j+w], vs[j:j+w]))
	}
	r := richardson(slopes, o.gridRatio)

	return stableValue(r, o.exponentTol)
}

// ratioEstimates computes e_k from successive sample magnitudes. The
// distances are used exactly as recorded, so slightly non-uniform
// spacing from endpoint rounding cancels.
func ratioEstimates(ds, vs []float64) []float64 {
	out := make([]float64, 0, len(ds)-1)
	for k := 0; k+1 < len(ds); k++ {
		num := math.Log(math.Abs(vs[k+1])) - math.Log(math.Abs(vs[k]))
		den := math.Log(ds[k+1]) - math.Log(ds[k])
		out = append(out, num/den)
	}

	return out
}

// richardson removes the leading O(δ) error term from a sequence of
// estimates taken on a geometric grid with ratio rho:
//
//	r_k = (e_{k+1} − ρ·e_k) / (1 − ρ).
func richardson(e []float64, rho float64) []float64 {
	if len(e) < 2 {
		return nil
	}
	out := make([]float64, len(e)-1)
	for k := range out {
		out[k] = (e[k+1] - rho*e[k]) / (1 - rho)
	}

	return out
}

// stableValue scans for the first pair of consecutive estimates
// agreeing within tol, then follows the agreement run to its end: the
// residual error shrinks geometrically along the run, so the last
// agreeing estimate is the most accurate one.
func stableValue(r []float64, tol float64) (float64, bool) {
	for k := 1; k < len(r); k++ {
		if math.IsNaN(r[k]) || math.Abs(r[k]-r[k-1]) > tol {
			continue
		}
		for k+1 < len(r) && !math.IsNaN(r[k+1]) && math.Abs(r[k+1]-r[k]) <= tol {
			k++
		}

		return r[k], true
	}

	return 0, false
}

// logLogSlope is the least-squares slope of log|v| against log d.
func logLogSlope(ds, vs []float64) float64 {
	n := float64(len(ds))
	var sx, sy, sxx, sxy float64
	for i := range ds {
		x := math.Log(ds[i])
		y := math.Log(math.Abs(vs[i]))
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}

	return (n*sxy - sx*sy) / (n*sxx - sx*sx)
}

func endName(left bool) string {
	if left {
		return "x=-1"
	}

	return "x=+1"
}
