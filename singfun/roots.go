package singfun

// endpointSnap separates residual roots reported at (or numerically
// on top of) an endpoint from genuine interior roots.
const endpointSnap = 1e-10

// Roots returns the roots of f in [-1,1], ascending.
//
// Any root strictly inside (-1,1) is a root of the residual, since the
// singular factor does not vanish there; interior root-finding is
// delegated to the engine. An endpoint itself is a root when its
// exponent is positive (the function has a zero of that order there),
// or when the exponent is zero and the residual vanishes there.
//
// The engine's interior scan misses even-order touching roots; that
// limitation carries through.
func (f *Value) Roots() []float64 {
	interior := f.part.Roots()

	leftRoot := f.expL > 0
	rightRoot := f.expR > 0

	var out []float64
	for _, r := range interior {
		switch {
		case r <= -1+endpointSnap:
			if f.expL == 0 {
				leftRoot = true
			}
		case r >= 1-endpointSnap:
			if f.expR == 0 {
				rightRoot = true
			}
		default:
			out = append(out, r)
		}
	}

	if leftRoot {
		out = append([]float64{-1}, out...)
	}
	if rightRoot {
		out = append(out, 1)
	}

	return out
}
