// SPDX-License-Identifier: MIT
// Package: remap/almanac
//
// errors.go - sentinel errors and the row error type.

package almanac

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates text that does not follow the almanac
	// grammar. The wrapped participle error carries the position.
	ErrMalformedInput = errors.New("almanac: malformed input")

	// ErrBrokenChain indicates a map whose From differs from the previous
	// map's To.
	ErrBrokenChain = errors.New("almanac: broken map chain")

	// ErrNoSeeds indicates an empty seeds line.
	ErrNoSeeds = errors.New("almanac: no seeds")
)

// RowError reports a map row that is not a valid interval triple. Err wraps
// category.ErrMalformedInterval.
type RowError struct {
	Line int    // 1-based line number
	Raw  string // the row as written
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("almanac: line %d %q: %v", e.Line, e.Raw, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// OverlapError reports two rows of one map whose source ranges share a
// value. Err wraps category.ErrOverlappingCategory.
type OverlapError struct {
	Map       string // map header name
	Line      int    // 1-based line of the row that starts first
	Raw       string
	OtherLine int // 1-based line of the row it overlaps
	OtherRaw  string
	Err       error
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("almanac: map %q: line %d %q overlaps line %d %q: %v",
		e.Map, e.Line, e.Raw, e.OtherLine, e.OtherRaw, e.Err)
}

func (e *OverlapError) Unwrap() error { return e.Err }
