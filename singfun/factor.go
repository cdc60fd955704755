package singfun

import "math"

// Factor evaluates the singular scale factor
//
//	(1+x)^a · (1-x)^b
//
// for x in [-1,1]. It is used both to strip singularities before
// building the smooth residual (op(x)/Factor(x,a,b)) and to
// reconstitute values on evaluation (s(x)·Factor(x,a,b)).
//
// At the endpoints the natural limits apply: 0 for a positive
// exponent, +Inf for a negative one, 1 for a zero exponent (times the
// finite opposite-end contribution). The bases 1+x and 1-x are
// non-negative on the interval, so real-power rules never see a
// negative base raised to a non-integer power.
func Factor(x, a, b float64) float64 {
	left := 1.0
	if a != 0 {
		left = math.Pow(1+x, a)
	}
	right := 1.0
	if b != 0 {
		right = math.Pow(1-x, b)
	}

	return left * right
}

// snapExponent rounds e to the nearest integer when within tol, so
// downstream pole/branch/none branch decisions are exact comparisons.
func snapExponent(e, tol float64) float64 {
	n := math.Round(e)
	if math.Abs(e-n) <= tol {
		return n
	}

	return e
}

// isNonNegInt reports whether e is within tol of a non-negative
// integer, returning that integer.
func isNonNegInt(e, tol float64) (int, bool) {
	n := math.Round(e)
	if n < 0 || math.Abs(e-n) > tol {
		return 0, false
	}

	return int(n), true
}

// intPow computes base^n for small non-negative integer n by repeated
// multiplication (exact for the polynomial absorption factors).
func intPow(base float64, n int) float64 {
	out := 1.0
	for i := 0; i < n; i++ {
		out *= base
	}

	return out
}
