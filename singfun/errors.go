// SPDX-License-Identifier: MIT
// Package singfun: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// singfun package. All operations MUST return these sentinels and
// tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for programmer
// errors in option constructors.

package singfun

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "singfun: ..." for consistency. Do
// not %w wrap these sentinels when returning directly; if context is
// essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer
// boundary — callers still match via errors.Is.
//
// All failures are terminal for the call that raised them; none are
// silently retried, and no operation masks another's failure with a
// lossy smooth-only fallback.

var (
	// ErrInvalidOperator is returned when construction input is not a
	// valid scalar callable (nil).
	ErrInvalidOperator = errors.New("singfun: operator is not a valid scalar callable")

	// ErrUnknownSingularityType is returned for a type hint outside the
	// recognized enumeration {pole, branch, root, none}.
	ErrUnknownSingularityType = errors.New("singfun: unknown singularity type")

	// ErrInvalidExponent is returned when a supplied exponent is NaN or
	// infinite.
	ErrInvalidExponent = errors.New("singfun: exponent must be a finite real")

	// ErrDetectionFailed is returned when neither the integer nor the
	// fractional exponent search stabilized within the sample bound.
	// Retry with different hints or a looser tolerance if appropriate.
	ErrDetectionFailed = errors.New("singfun: singularity detection failed to stabilize")

	// ErrIncompatibleExponents is returned by Add/Sub when no common
	// exponent pair can absorb both operands: an operand's excess
	// exponent at some endpoint is not a non-negative integer.
	ErrIncompatibleExponents = errors.New("singfun: addition cannot absorb exponent difference")

	// ErrSingularDivisor is returned by Div when the divisor's smooth
	// residual vanishes somewhere on [-1,1], since the quotient would
	// no longer be smooth.
	ErrSingularDivisor = errors.New("singfun: divisor residual vanishes on the interval")

	// ErrDivergentAntiderivative is returned by Cumsum/Sum when an
	// endpoint exponent is <= -1: the integral diverges there and no
	// finite antiderivative value exists.
	ErrDivergentAntiderivative = errors.New("singfun: antiderivative diverges at an endpoint")

	// ErrUnsupportedAntiderivative is returned by Cumsum/Sum when both
	// endpoints carry fractional singularities: the antiderivative is
	// const + factored at each end simultaneously and cannot be
	// expressed as a single factored value.
	ErrUnsupportedAntiderivative = errors.New("singfun: antiderivative of a two-sided fractional singularity is not representable")

	// ErrNilValue indicates a nil *Value receiver or operand.
	ErrNilValue = errors.New("singfun: nil value")
)
