package smooth

// Fn is an opaque smooth-function value on [-1,1].
//
// Binary operations (Add, Mul, Div) accept any Fn; implementations may
// fast-path operands of their own concrete type and must otherwise
// fall back to rebuilding from pointwise evaluation.
//
// Division by an Fn that vanishes inside [-1,1] is undefined — callers
// are responsible for checking Roots/IsZero first (singfun does).
type Fn interface {
	// Eval returns the approximant's value at x ∈ [-1,1].
	Eval(x float64) float64

	// Diff returns the derivative as a new Fn.
	Diff() Fn

	// Cumsum returns the antiderivative F with F(-1) = 0.
	Cumsum() Fn

	// CumsumWeighted returns u solving
	//
	//	(exp+1)·u + (1+x)·u' = f   (left == true), or
	//	(exp+1)·u − (1−x)·u' = f   (left == false),
	//
	// so that (1+x)^(exp+1)·u, respectively −(1−x)^(exp+1)·u, is an
	// antiderivative of (1+x)^exp·f, respectively (1−x)^exp·f.
	// Requires exp > -1.
	CumsumWeighted(exp float64, left bool) Fn

	// Add returns f+g, Mul returns f·g, Div returns f/g, Scale returns c·f.
	Add(g Fn) Fn
	Mul(g Fn) Fn
	Div(g Fn) Fn
	Scale(c float64) Fn

	// Roots returns the approximant's roots inside [-1,1] in ascending
	// order.
	Roots() []float64

	// Length reports the size of the underlying representation
	// (e.g. number of coefficients).
	Length() int

	// IsReal reports whether the value is real-valued.
	IsReal() bool

	// IsZero reports whether the value is numerically the zero function.
	IsZero() bool
}

// Engine builds smooth approximants from callables.
type Engine interface {
	// Build adaptively approximates f on [-1,1]. On failure it returns
	// a non-nil best-effort approximant alongside the error, so callers
	// may degrade gracefully where that is acceptable.
	Build(f func(float64) float64) (Fn, error)
}
