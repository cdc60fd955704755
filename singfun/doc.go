// Package singfun represents real-valued functions on [-1,1] with
// endpoint singularities in the factored form
//
//	f(x) = s(x) · (1+x)^a · (1-x)^b,
//
// where s is smooth (the residual, held by a smooth.Fn engine value)
// and a, b are real exponents: negative = pole, positive = root/zero,
// zero = no singularity, non-integer = branch.
//
// 🚀 What is singfun?
//
//	The singular-function core of chebfun:
//	  • Automatic detection of endpoint exponents by geometric
//	    sampling: integer search on magnitude ratios with Richardson
//	    stabilization, fractional search by log–log regression
//	  • Construction that strips the singular factor and delegates the
//	    smooth residual to a pluggable engine (chebtech by default)
//	  • A closed algebra: Mul/Div always stay factored; Add/Sub absorb
//	    non-negative integer exponent differences and fail loudly
//	    otherwise; Diff applies the factored product rule; Cumsum
//	    shifts exponents by one through a weighted coefficient solve
//	  • Endpoint-aware evaluation, roots, extrema and definite
//	    integrals
//
// ✨ Why singfun?
//
//   - Explicit failure taxonomy – every way an operation can leave the
//     factored form is a named sentinel error, matched via errors.Is;
//     nothing silently falls back to a lossy smooth approximation
//   - Immutable values – every operation returns a fresh *Value; safe
//     for concurrent use without locks
//   - Explicit tolerancing – the exponent tolerance and all search
//     bounds are per-call options with documented defaults
//
// ⚙️ Usage:
//
//	f, err := singfun.New(func(x float64) float64 {
//	    return math.Cos(x) / math.Sqrt(1+x)
//	})
//	// f.Exponents() ≈ (-0.5, 0)
//
//	g, err := singfun.New(op,
//	    singfun.WithHints(singfun.Pole, singfun.None),
//	    singfun.WithExponentTol(1e-10))
//
// See §Errors in each operation's doc comment for the failure modes,
// and package chebtech for the default smooth engine.
package singfun
