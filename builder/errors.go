// SPDX-License-Identifier: MIT
// Package: remap/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf + %w.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewIntervals indicates a count parameter below its minimum
// (n < 0 intervals, or fewer than one pipeline stage).
var ErrTooFewIntervals = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDomainTooSmall indicates the configured domain cannot host the requested
// number of intervals (each slot needs at least two values).
var ErrDomainTooSmall = errors.New("builder: domain too small")

// ErrBadSize indicates an invalid size for pair generation (k < 0 or a zero
// maximum length).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrConstructFailed indicates a nil constructor or a constructor result that
// category.New rejected.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the given method context:
// "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
