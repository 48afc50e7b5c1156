// SPDX-License-Identifier: MIT
// Package: remap/pipeline
//
// errors.go - sentinel errors for pipeline queries.

package pipeline

import "errors"

var (
	// ErrEmptyQuery is returned when a minimum is requested over no seeds or
	// no non-empty ranges. There is no sentinel answer for that case.
	ErrEmptyQuery = errors.New("pipeline: empty query")

	// ErrMalformedRange indicates a range with Start > End, an odd number of
	// values handed to PairRanges, or a (start, length) pair overflowing uint64.
	ErrMalformedRange = errors.New("pipeline: malformed range")

	// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
	ErrUnknownStrategy = errors.New("pipeline: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("pipeline: invalid option supplied")
)
