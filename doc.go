// Package chebfun approximates real-valued functions on [-1,1] that
// blow up, vanish or branch at the interval's endpoints — functions of
// the form f(x) = s(x)·(1+x)^a·(1-x)^b with s smooth and a, b real.
//
// 🚀 What is chebfun?
//
//	A pure-Go numerical toolbox that brings together:
//		• Adaptive Chebyshev interpolation of smooth functions
//		• Automatic detection of endpoint singularity exponents
//		• A factored singular-function value type with full algebra:
//		  add, subtract, multiply, divide, differentiate, integrate
//		• Root-finding, extrema and endpoint-aware evaluation
//
// ✨ Why choose chebfun?
//
//   - Closed algebra – operations keep the factored form, or fail with
//     a named sentinel error instead of silently losing accuracy
//   - Explicit tolerancing – every heuristic bound is a documented,
//     per-call option, never a hidden constant
//   - Pure Go – no cgo, no hidden deps
//   - Immutable values – safe for concurrent use without locks
//
// Under the hood, everything is organized under three subpackages:
//
//	smooth/   — the engine contract: opaque smooth-function values on [-1,1]
//	chebtech/ — Chebyshev-interpolation engine implementing that contract
//	singfun/  — singular-function values: detection, factoring, algebra
//
// Quick example:
//
//	f, _ := singfun.New(func(x float64) float64 {
//	    return math.Cos(x) / math.Sqrt(1-x)
//	})
//	a, b := f.Exponents() // ≈ (0, -0.5)
//
// Dive into the package docs of singfun for the detection heuristics
// and the algebraic closure rules, and chebtech for the interpolation
// machinery.
//
//	go get github.com/projectro/chebfun/singfun
package chebfun
