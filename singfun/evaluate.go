package singfun

import "math"

// Eval evaluates f at x.
//
// Interior points return s(x)·Factor(x,a,b). At an endpoint exactly
// equal to ±1 the limit rules apply for the local exponent e:
//
//   - e > 0 — exactly 0 (the function has a root of order e there);
//   - e < 0 — sign-carrying infinity, the sign taken from the residual
//     (NaN if the residual vanishes there, leaving the sign undefined);
//   - e = 0 — the residual's endpoint value times the finite
//     opposite-end factor (NaN if the residual is not finite there).
//
// Points outside [-1,1] (and NaN) evaluate to NaN.
func (f *Value) Eval(x float64) float64 {
	if math.IsNaN(x) || x < -1 || x > 1 {
		return math.NaN()
	}

	switch x {
	case -1:
		return endpointValue(f.expL, f.part.Eval(-1), math.Pow(2, f.expR))
	case 1:
		return endpointValue(f.expR, f.part.Eval(1), math.Pow(2, f.expL))
	default:
		return f.part.Eval(x) * Factor(x, f.expL, f.expR)
	}
}

// EvalMany evaluates f pointwise; the result has the input's shape.
func (f *Value) EvalMany(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f.Eval(x)
	}

	return out
}

// endpointValue applies the endpoint limit rules: e is the exponent at
// this end, sv the residual's value here, other the (finite, positive)
// factor contributed by the opposite end.
func endpointValue(e, sv, other float64) float64 {
	switch {
	case e > 0:
		return 0
	case e < 0:
		if math.IsNaN(sv) || sv == 0 {
			return math.NaN()
		}
		return math.Inf(1) * sv * other // sign carried by the residual
	default:
		if math.IsNaN(sv) {
			return math.NaN()
		}
		return sv * other
	}
}
