package singfun

import "math"

// extremaScan is the dense sampling resolution for extremum queries.
const extremaScan = 1024

// MinMax returns the infimum and supremum of f on [-1,1].
//
// A negative exponent makes the corresponding bound infinite, with the
// sign taken from the residual at that endpoint. Otherwise the bounds
// come from a dense Chebyshev-grid scan of the reconstituted values
// plus the endpoint limits, so they are approximate to grid
// resolution, not solved extrema.
func (f *Value) MinMax() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for i := 0; i <= extremaScan; i++ {
		x := math.Cos(float64(extremaScan-i) * math.Pi / float64(extremaScan))
		v := f.Eval(x)
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max
}

// Norm returns the sup-norm of f on [-1,1] (infinite when a negative
// exponent is present and the residual does not vanish there).
func (f *Value) Norm() float64 {
	min, max := f.MinMax()

	return math.Max(math.Abs(min), math.Abs(max))
}
