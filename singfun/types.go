// Package singfun defines the singularity-type enumeration and the
// immutable singular-function value.
package singfun

import (
	"fmt"
	"strings"

	"github.com/projectro/chebfun/smooth"
)

// SingType classifies the expected singular behavior at one endpoint
// and steers the exponent detector.
//
//   - Unknown — the most general search: integer first, then
//     fractional log–log regression.
//   - None    — short-circuit to exponent 0, no sampling.
//   - Pole    — integer search only; accepts a (negative) integer order.
//   - Branch  — fractional search; non-integer exponents allowed.
//   - Root    — integer search only; accepts a (positive) integer order.
type SingType int

const (
	Unknown SingType = iota
	None
	Pole
	Branch
	Root
)

// String implements fmt.Stringer.
func (t SingType) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case None:
		return "none"
	case Pole:
		return "pole"
	case Branch:
		return "branch"
	case Root:
		return "root"
	default:
		return fmt.Sprintf("SingType(%d)", int(t))
	}
}

// valid reports whether t is a member of the closed enumeration.
func (t SingType) valid() bool { return t >= Unknown && t <= Root }

// ParseSingType converts one of the four recognized strings
// ("pole", "branch", "root", "none", case-insensitive) into a
// SingType. Any other value is rejected with
// ErrUnknownSingularityType.
func ParseSingType(s string) (SingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pole":
		return Pole, nil
	case "branch":
		return Branch, nil
	case "root":
		return Root, nil
	case "none":
		return None, nil
	default:
		return Unknown, fmt.Errorf("%q: %w", s, ErrUnknownSingularityType)
	}
}

// Value is a singular-function value: a smooth residual together with
// the left (x=-1) and right (x=1) endpoint exponents. Values are
// immutable; every operation returns a fresh *Value.
//
// Exponents within the construction tolerance of an integer are
// snapped to that integer, so downstream pole/branch/none decisions
// are exact comparisons.
type Value struct {
	part   smooth.Fn
	expL   float64
	expR   float64
	engine smooth.Engine
	tol    float64
}

// Exponents returns the (left, right) endpoint exponent pair.
func (f *Value) Exponents() (a, b float64) { return f.expL, f.expR }

// Smooth returns the smooth residual s with f(x) = s(x)·(1+x)^a·(1-x)^b.
// The residual is immutable by the engine contract.
func (f *Value) Smooth() smooth.Fn { return f.part }

// IsSmooth reports whether both exponents are zero, i.e. the value is
// semantically a pure smooth function.
func (f *Value) IsSmooth() bool { return f.expL == 0 && f.expR == 0 }

// IsZero reports whether the residual is numerically the zero
// function.
func (f *Value) IsZero() bool { return f.part.IsZero() }

// IsReal reports whether the residual is real-valued.
func (f *Value) IsReal() bool { return f.part.IsReal() }

// derive builds a sibling value carrying the receiver's engine and
// tolerance, with exponents snapped.
func (f *Value) derive(part smooth.Fn, a, b float64) *Value {
	return &Value{
		part:   part,
		expL:   snapExponent(a, f.tol),
		expR:   snapExponent(b, f.tol),
		engine: f.engine,
		tol:    f.tol,
	}
}
