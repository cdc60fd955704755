// Package singfun: calculus on factored values.
//
// Differentiation applies the factored-form product rule; the two
// shifted terms always share exponents differing by exactly one at the
// shifted endpoint, so every intermediate sum is representable and the
// recombination happens on residuals directly. Integration runs the
// same decomposition in reverse through the engine's weighted
// antiderivative solve.

package singfun

import (
	"errors"
	"fmt"
	"math"

	"github.com/projectro/chebfun/smooth"
)

// ErrInvalidOrder is returned by Diff for a negative derivative order.
var ErrInvalidOrder = errors.New("singfun: differentiation order must be non-negative")

// Diff returns the k-th derivative.
//
// One differentiation step rewrites f = s·(1+x)^a·(1-x)^b as
//
//	[ s'·(1+x)(1-x) + a·s·(1-x) − b·s·(1+x) ] · (1+x)^(a-1)·(1-x)^(b-1),
//
// with the (1±x) factors and exponent shifts dropped at any endpoint
// whose exponent is zero, so no spurious pole is introduced there.
// Differentiating a pole strictly increases its order; differentiating
// a fractional root eventually crosses into a pole.
//
// Errors:
//   - ErrInvalidOrder — k < 0. k == 0 returns the value unchanged.
func (f *Value) Diff(k int) (*Value, error) {
	if f == nil {
		return nil, ErrNilValue
	}
	if k < 0 {
		return nil, ErrInvalidOrder
	}

	out := f
	for i := 0; i < k; i++ {
		var err error
		if out, err = out.diffOnce(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (f *Value) diffOnce() (*Value, error) {
	a, b := f.expL, f.expR
	s := f.part
	ds := s.Diff()

	if a == 0 && b == 0 {
		return f.derive(ds, 0, 0), nil
	}

	// s'·(active endpoint factors)
	part := ds
	if poly, err := f.endFactors(a != 0, b != 0); err != nil {
		return nil, err
	} else if poly != nil {
		part = ds.Mul(poly)
	}

	if a != 0 {
		term := s.Scale(a)
		if b != 0 {
			poly, err := f.endFactors(false, true)
			if err != nil {
				return nil, err
			}
			term = term.Mul(poly)
		}
		part = part.Add(term)
	}
	if b != 0 {
		term := s.Scale(-b)
		if a != 0 {
			poly, err := f.endFactors(true, false)
			if err != nil {
				return nil, err
			}
			term = term.Mul(poly)
		}
		part = part.Add(term)
	}

	na, nb := a, b
	if a != 0 {
		na = a - 1
	}
	if b != 0 {
		nb = b - 1
	}

	return f.derive(part, na, nb), nil
}

// endFactors builds the polynomial (1+x)^l·(1-x)^r for the requested
// endpoints (l, r each 0 or 1).
func (f *Value) endFactors(left, right bool) (smooth.Fn, error) {
	if !left && !right {
		return nil, nil
	}
	poly, err := f.engine.Build(func(x float64) float64 {
		v := 1.0
		if left {
			v *= 1 + x
		}
		if right {
			v *= 1 - x
		}
		return v
	})
	if err != nil {
		return nil, fmt.Errorf("singfun: endpoint factor: %w", err)
	}

	return poly, nil
}

// Cumsum returns an antiderivative F of f.
//
// Exponents shift by +1 at a singular endpoint. Non-negative integer
// exponents are first folded into the residual (their factors are
// polynomials), so the remaining singular structure is fractional.
// The normalization constant is chosen so the result is representable:
// F(-1) = 0 unless only the right endpoint is singular, in which case
// F(1) = 0 (an antiderivative is defined up to a constant either way).
//
// Errors:
//   - ErrDivergentAntiderivative   — an exponent is <= -1: the integral
//     diverges at that endpoint.
//   - ErrUnsupportedAntiderivative — fractional singularities at both
//     endpoints: const + factored at each end simultaneously cannot be
//     one factored value.
func (f *Value) Cumsum() (*Value, error) {
	if f == nil {
		return nil, ErrNilValue
	}
	a, b := f.expL, f.expR
	if a <= -1 || b <= -1 {
		return nil, ErrDivergentAntiderivative
	}

	s := f.part
	// Fold polynomial factors: (1±x)^n with n a positive integer is
	// smooth.
	if n, ok := isNonNegInt(a, f.tol); ok && n > 0 {
		poly, err := f.engine.Build(func(x float64) float64 { return intPow(1+x, n) })
		if err != nil {
			return nil, err
		}
		s, a = s.Mul(poly), 0
	}
	if n, ok := isNonNegInt(b, f.tol); ok && n > 0 {
		poly, err := f.engine.Build(func(x float64) float64 { return intPow(1-x, n) })
		if err != nil {
			return nil, err
		}
		s, b = s.Mul(poly), 0
	}

	switch {
	case a == 0 && b == 0:
		return f.derive(s.Cumsum(), 0, 0), nil
	case a != 0 && b == 0:
		// F = (1+x)^(a+1)·u with (a+1)u + (1+x)u' = s; F(-1) = 0.
		return f.derive(s.CumsumWeighted(a, true), a+1, 0), nil
	case a == 0 && b != 0:
		// F = -(1-x)^(b+1)·v with (b+1)v - (1-x)v' = s; F(1) = 0.
		return f.derive(s.CumsumWeighted(b, false).Scale(-1), 0, b+1), nil
	default:
		return nil, ErrUnsupportedAntiderivative
	}
}

// Sum returns the definite integral of f over [-1,1].
//
// Errors: those of Cumsum.
func (f *Value) Sum() (float64, error) {
	F, err := f.Cumsum()
	if err != nil {
		return math.NaN(), err
	}

	return F.Eval(1) - F.Eval(-1), nil
}
