// SPDX-License-Identifier: MIT
// Package singfun: functional configuration for construction and
// exponent detection. This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Tolerances are threaded per call; overriding one call never
//     affects another in flight.
//   - Safe by construction: panic only on invalid parameters
//     (programmer error); user-triggerable conditions return sentinels.

package singfun

import (
	"math"

	"github.com/projectro/chebfun/chebtech"
	"github.com/projectro/chebfun/smooth"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultExponentTol is the tolerance within which an exponent is
	// considered equal to an integer (and snapped to it), and the
	// agreement threshold for the detector's stabilization checks.
	DefaultExponentTol = 1e-8

	// DefaultSeedDistance is the first sampling distance from an
	// endpoint used by the exponent detector.
	DefaultSeedDistance = 1e-2

	// DefaultGridRatio is the geometric shrink factor between
	// successive detector samples.
	DefaultGridRatio = 0.5

	// DefaultMaxSamples bounds the detector's refinement: at most this
	// many geometric samples per endpoint, after which detection fails
	// explicitly rather than looping.
	DefaultMaxSamples = 32

	// DefaultMaxPoleOrder caps the magnitude of integer orders the
	// detector accepts, bounding the integer search cost.
	DefaultMaxPoleOrder = 20

	// DefaultRegressionWindow is the number of samples per log-log
	// least-squares window in the fractional search.
	DefaultRegressionWindow = 6

	// DefaultResidualTol is the convergence tolerance the default
	// engine uses for residual builds. It is looser than the engine's
	// own default: a detected fractional exponent carries a residual
	// error near the detection tolerance, so the stripped residual is
	// smooth only down to roughly that scale and a full-precision
	// happiness check would fail spuriously.
	DefaultResidualTol = 1e-10
)

// Internal panic messages (no magic strings).
const (
	panicExponentTolInvalid = "singfun: WithExponentTol: tol must be finite, positive"
	panicMaxSamplesInvalid  = "singfun: WithMaxSamples: need at least 8 samples"
	panicPoleOrderInvalid   = "singfun: WithMaxPoleOrder: order must be positive"
	panicEngineNil          = "singfun: WithEngine: engine must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly
// (idempotent). Constructors MUST panic only on nonsensical values
// (programmer error).
type Option func(*options)

type options struct {
	exponents    *[2]float64
	hints        [2]SingType
	exponentTol  float64
	seedDistance float64
	gridRatio    float64
	maxSamples   int
	maxPoleOrder int
	regWindow    int
	engine       smooth.Engine
}

// WithExponents supplies known endpoint exponents (left, right),
// skipping detection entirely. Non-finite values are rejected at
// construction with ErrInvalidExponent.
func WithExponents(a, b float64) Option {
	return func(o *options) { o.exponents = &[2]float64{a, b} }
}

// WithHints sets the per-endpoint singularity-type hints consumed by
// the detector. Hints outside the closed enumeration are rejected at
// construction with ErrUnknownSingularityType.
func WithHints(left, right SingType) Option {
	return func(o *options) { o.hints = [2]SingType{left, right} }
}

// WithExponentTol overrides the exponent tolerance.
// Panics if tol is not a finite positive number.
func WithExponentTol(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic(panicExponentTolInvalid)
	}

	return func(o *options) { o.exponentTol = tol }
}

// WithMaxSamples overrides the detector's sample bound.
// Panics if n < 8 (the searches need room to stabilize).
func WithMaxSamples(n int) Option {
	if n < 8 {
		panic(panicMaxSamplesInvalid)
	}

	return func(o *options) { o.maxSamples = n }
}

// WithMaxPoleOrder overrides the integer-order cap.
// Panics if n < 1.
func WithMaxPoleOrder(n int) Option {
	if n < 1 {
		panic(panicPoleOrderInvalid)
	}

	return func(o *options) { o.maxPoleOrder = n }
}

// WithEngine overrides the smooth engine (default: chebtech).
// Panics on nil.
func WithEngine(e smooth.Engine) Option {
	if e == nil {
		panic(panicEngineNil)
	}

	return func(o *options) { o.engine = e }
}

// gatherOptions resolves defaults and applies user options in order.
// The default hint pair is {Branch, Branch}: the most general
// fractional search.
func gatherOptions(opts ...Option) options {
	o := options{
		hints:        [2]SingType{Branch, Branch},
		exponentTol:  DefaultExponentTol,
		seedDistance: DefaultSeedDistance,
		gridRatio:    DefaultGridRatio,
		maxSamples:   DefaultMaxSamples,
		maxPoleOrder: DefaultMaxPoleOrder,
		regWindow:    DefaultRegressionWindow,
		engine:       chebtech.NewEngine(chebtech.WithTolerance(DefaultResidualTol)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
