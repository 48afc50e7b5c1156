// SPDX-License-Identifier: MIT
// Package: remap/category
//
// errors.go - sentinel errors for the category package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (offending interval, index, category name) is attached with %w.
//   • Lookup, Segments and Merge never fail once a Category is constructed.

package category

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInterval indicates an interval that is empty, not
	// length-preserving, or whose end overflows uint64.
	ErrMalformedInterval = errors.New("category: malformed interval")

	// ErrOverlappingCategory indicates two intervals of one category share
	// at least one source value.
	ErrOverlappingCategory = errors.New("category: overlapping intervals")

	// ErrUnsortedCategory indicates intervals out of source order. New sorts
	// its input, so only Validate on a raw interval slice reports it.
	ErrUnsortedCategory = errors.New("category: intervals not sorted by source start")
)

// categoryErrorf prefixes a message with the method (and category name when
// set) and wraps err so errors.Is keeps working.
func categoryErrorf(method, name string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	if name != "" {
		return fmt.Errorf("%s(%s): %s: %w", method, name, inner, err)
	}

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
