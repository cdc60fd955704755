// Package chebtech: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// chebtech package. All operations return these sentinels and tests
// check them via errors.Is. Panics are reserved for programmer errors
// in option constructors.

package chebtech

import "errors"

var (
	// ErrNilFunction indicates a nil callable was passed to New/Build.
	ErrNilFunction = errors.New("chebtech: function is nil")

	// ErrNonFiniteSample indicates the callable returned Inf or NaN at
	// an interior grid point, where no extrapolation is possible.
	ErrNonFiniteSample = errors.New("chebtech: non-finite sample at interior point")

	// ErrNotConverged indicates the coefficient tail did not fall below
	// tolerance before the maximum grid size was reached. The returned
	// *Fun is the best-effort approximant at maximum resolution.
	ErrNotConverged = errors.New("chebtech: interpolation did not converge")
)
