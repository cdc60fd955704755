// Package chebtech approximates smooth real-valued functions on [-1,1]
// by adaptive Chebyshev interpolation, and implements the smooth.Fn
// engine contract consumed by singfun.
//
// 🚀 What is chebtech?
//
//	A coefficient-based smooth-function engine that provides:
//	  • Adaptive construction: sample on Chebyshev grids of doubling
//	    size until the coefficient tail falls below tolerance
//	  • Evaluation by the Clenshaw recurrence
//	  • Differentiation and integration by coefficient recurrences
//	  • Multiplication by the Chebyshev product-rule convolution
//	  • Root-finding by dense sampling plus bisection
//
// ✨ Key features:
//   - Immutable values: every operation returns a fresh *Fun
//   - Endpoint-aware sampling: non-finite samples at x = ±1 are
//     replaced by polynomial extrapolation from interior grid points,
//     so 0/0 residual callables from singfun construct cleanly
//   - Explicit failure: construction that does not converge returns
//     ErrNotConverged together with the best-effort approximant
//
// ⚙️ Usage:
//
//	f, err := chebtech.New(math.Cos)
//	if err != nil {
//	  // handle ErrNotConverged / ErrNonFiniteSample
//	}
//	y := f.Eval(0.3)          // ≈ cos(0.3)
//	g := f.Diff()             // ≈ -sin
//	r := f.Roots()            // roots inside [-1,1]
//
// Performance:
//
//   - Construction: O(N²) per grid level (direct cosine transform)
//   - Eval: O(N) Clenshaw
//   - Mul: O(N·M) convolution
//
// Even-order interior touching roots are not found by the sign-change
// scan; this is a documented limitation of the root finder.
package chebtech
