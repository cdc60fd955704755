package singfun

import (
	"fmt"
	"math"
)

// New constructs a singular-function value from a scalar callable on
// (-1,1).
//
// Algorithm Outline:
//  1. If WithExponents was supplied, skip detection; both exponents
//     must be finite.
//  2. Otherwise run the exponent detector per endpoint using the
//     WithHints pair (default {Branch, Branch}, the most general
//     fractional search).
//  3. Snap exponents within tolerance of an integer.
//  4. Build the residual callable s(x) = op(x)/Factor(x,a,b)
//     (degenerating to op itself when both exponents are zero) and
//     delegate to the smooth engine.
//
// Errors:
//   - ErrInvalidOperator        — op is nil.
//   - ErrUnknownSingularityType — a hint outside the enumeration.
//   - ErrInvalidExponent        — a supplied exponent is NaN/Inf.
//   - ErrDetectionFailed        — neither search stabilized (propagated
//     unmodified from the detector).
//   - engine errors             — residual construction failures are
//     propagated wrapped, never masked.
func New(op func(float64) float64, opts ...Option) (*Value, error) {
	if op == nil {
		return nil, ErrInvalidOperator
	}
	o := gatherOptions(opts...)
	for _, h := range o.hints {
		if !h.valid() {
			return nil, fmt.Errorf("hint %d: %w", int(h), ErrUnknownSingularityType)
		}
	}

	var a, b float64
	if o.exponents != nil {
		a, b = o.exponents[0], o.exponents[1]
		if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, ErrInvalidExponent
		}
	} else {
		var err error
		if a, err = detectExponent(op, true, o.hints[0], o); err != nil {
			return nil, err
		}
		if b, err = detectExponent(op, false, o.hints[1], o); err != nil {
			return nil, err
		}
	}
	a = snapExponent(a, o.exponentTol)
	b = snapExponent(b, o.exponentTol)

	residual := op
	if a != 0 || b != 0 {
		residual = func(x float64) float64 { return op(x) / Factor(x, a, b) }
	}
	part, err := o.engine.Build(residual)
	if err != nil {
		return nil, fmt.Errorf("singfun: building smooth residual: %w", err)
	}

	return &Value{part: part, expL: a, expR: b, engine: o.engine, tol: o.exponentTol}, nil
}

// Zero returns the canonical all-zero value with exponents (0,0).
func Zero(opts ...Option) *Value {
	o := gatherOptions(opts...)
	part, _ := o.engine.Build(func(float64) float64 { return 0 })

	return &Value{part: part, expL: 0, expR: 0, engine: o.engine, tol: o.exponentTol}
}
