// Package chebtech: functional configuration for adaptive construction.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: option fields are unexported; public APIs consume ...Option.

package chebtech

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the relative coefficient-tail tolerance that
	// declares an approximant converged.
	DefaultTolerance = 1e-13

	// DefaultMinDegree is the first grid degree tried (grid has
	// DefaultMinDegree+1 points).
	DefaultMinDegree = 16

	// DefaultMaxDegree caps the adaptive doubling; reaching it without
	// convergence yields ErrNotConverged.
	DefaultMaxDegree = 4096
)

// zeroFloor is the absolute coefficient magnitude below which a value
// is considered the zero function. Kept explicit to avoid magic
// numbers inline.
const zeroFloor = 1e-13

// Internal panic messages (no magic strings).
const (
	panicToleranceInvalid = "chebtech: WithTolerance: tol must be finite, positive"
	panicDegreeInvalid    = "chebtech: WithMaxDegree: degree must be >= 16 and a power of two"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	tol       float64
	minDegree int
	maxDegree int
}

// WithTolerance overrides the convergence tolerance.
// Panics if tol is not a finite positive number.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithMaxDegree overrides the maximum grid degree.
// Panics unless degree is a power of two and at least 16.
func WithMaxDegree(degree int) Option {
	if degree < DefaultMinDegree || degree&(degree-1) != 0 {
		panic(panicDegreeInvalid)
	}

	return func(o *options) { o.maxDegree = degree }
}

// gatherOptions resolves defaults and applies user options in order.
func gatherOptions(opts ...Option) options {
	o := options{
		tol:       DefaultTolerance,
		minDegree: DefaultMinDegree,
		maxDegree: DefaultMaxDegree,
	}
	for _, opt := range opts {
		opt(&o)
	}
	// The first grid may not exceed the last one.
	if o.minDegree > o.maxDegree {
		o.minDegree = o.maxDegree
	}

	return o
}
