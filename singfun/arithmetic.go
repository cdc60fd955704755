// Package singfun: the exponent algebra of arithmetic operations.
//
// Multiplication and division act on exponents definitionally
// (componentwise sum/difference) and delegate residual work to the
// engine. Addition is only representable when a common exponent pair
// absorbs both operands: each operand's excess over the componentwise
// minimum must be a non-negative integer, in which case the excess
// factor (1∓x)^n is itself smooth and is multiplied into that
// operand's residual.

package singfun

import (
	"math"

	"github.com/projectro/chebfun/smooth"
)

// divisorFloor is the residual magnitude at an endpoint below which
// the divisor is treated as vanishing there (interior vanishing is
// caught by the root scan).
const divisorFloor = 1e-12

// Mul returns f·g. Exponents add componentwise; multiplication of two
// factored forms always stays factored.
func (f *Value) Mul(g *Value) (*Value, error) {
	if f == nil || g == nil {
		return nil, ErrNilValue
	}

	return f.derive(f.part.Mul(g.part), f.expL+g.expL, f.expR+g.expR), nil
}

// Div returns f/g. Exponents subtract componentwise.
//
// Errors:
//   - ErrSingularDivisor — g's residual is numerically zero, has a
//     root inside [-1,1], or vanishes at an endpoint: the quotient
//     would no longer be smooth.
func (f *Value) Div(g *Value) (*Value, error) {
	if f == nil || g == nil {
		return nil, ErrNilValue
	}
	if g.part.IsZero() || len(g.part.Roots()) > 0 {
		return nil, ErrSingularDivisor
	}
	if math.Abs(g.part.Eval(-1)) <= divisorFloor || math.Abs(g.part.Eval(1)) <= divisorFloor {
		return nil, ErrSingularDivisor
	}

	return f.derive(f.part.Div(g.part), f.expL-g.expL, f.expR-g.expR), nil
}

// Add returns f+g.
//
// Representability rule: with equal exponent pairs (within tolerance)
// residuals add directly. Otherwise, per endpoint, the common exponent
// is the minimum of the two and each operand's excess must be a
// non-negative integer within tolerance; the excess powers are
// multiplied into the residuals before adding. Fractional or negative
// excess fails — the sum is not expressible as one factored value and
// is never approximated away.
//
// Errors:
//   - ErrIncompatibleExponents — some excess exponent is not a
//     non-negative integer.
func (f *Value) Add(g *Value) (*Value, error) {
	if f == nil || g == nil {
		return nil, ErrNilValue
	}

	if math.Abs(f.expL-g.expL) <= f.tol && math.Abs(f.expR-g.expR) <= f.tol {
		return f.derive(f.part.Add(g.part), f.expL, f.expR), nil
	}

	commonL := math.Min(f.expL, g.expL)
	commonR := math.Min(f.expR, g.expR)

	fl, okFL := isNonNegInt(f.expL-commonL, f.tol)
	fr, okFR := isNonNegInt(f.expR-commonR, f.tol)
	gl, okGL := isNonNegInt(g.expL-commonL, f.tol)
	gr, okGR := isNonNegInt(g.expR-commonR, f.tol)
	if !okFL || !okFR || !okGL || !okGR {
		return nil, ErrIncompatibleExponents
	}

	fp, err := f.absorb(f.part, fl, fr)
	if err != nil {
		return nil, err
	}
	gp, err := f.absorb(g.part, gl, gr)
	if err != nil {
		return nil, err
	}

	return f.derive(fp.Add(gp), commonL, commonR), nil
}

// Sub returns f-g by adding the negation.
func (f *Value) Sub(g *Value) (*Value, error) {
	if f == nil || g == nil {
		return nil, ErrNilValue
	}

	return f.Add(g.Neg())
}

// Neg returns -f.
func (f *Value) Neg() *Value {
	if f == nil {
		return nil
	}

	return f.derive(f.part.Scale(-1), f.expL, f.expR)
}

// absorb multiplies the residual by (1+x)^nL·(1-x)^nR, both exponents
// non-negative integers (hence smooth polynomial factors).
func (f *Value) absorb(part smooth.Fn, nL, nR int) (smooth.Fn, error) {
	if nL == 0 && nR == 0 {
		return part, nil
	}
	poly, err := f.engine.Build(func(x float64) float64 {
		return intPow(1+x, nL) * intPow(1-x, nR)
	})
	if err != nil {
		return nil, err
	}

	return part.Mul(poly), nil
}
