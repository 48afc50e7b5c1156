package category

import (
	"fmt"
	"math"
)

// NewInterval builds an Interval from the textual triple order
// (destination start, source start, length).
//
// Errors:
//   - ErrMalformedInterval - length is zero, or either start+length
//     overflows uint64.
func NewInterval(destinationStart, sourceStart, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, fmt.Errorf("NewInterval: triple (%d %d %d): zero length: %w",
			destinationStart, sourceStart, length, ErrMalformedInterval)
	}
	if sourceStart > math.MaxUint64-length || destinationStart > math.MaxUint64-length {
		return Interval{}, fmt.Errorf("NewInterval: triple (%d %d %d): end overflows uint64: %w",
			destinationStart, sourceStart, length, ErrMalformedInterval)
	}

	return Interval{
		SourceStart:      sourceStart,
		SourceEnd:        sourceStart + length,
		DestinationStart: destinationStart,
		DestinationEnd:   destinationStart + length,
	}, nil
}

// Len returns the number of values the interval covers.
func (iv Interval) Len() uint64 {
	return iv.SourceEnd - iv.SourceStart
}

// Valid reports whether the interval is non-empty and length-preserving.
// All other methods assume a valid interval.
func (iv Interval) Valid() bool {
	return iv.SourceStart < iv.SourceEnd &&
		iv.DestinationStart < iv.DestinationEnd &&
		iv.SourceEnd-iv.SourceStart == iv.DestinationEnd-iv.DestinationStart
}

// Contains reports whether x lies in the source range.
func (iv Interval) Contains(x uint64) bool {
	return iv.SourceStart <= x && x < iv.SourceEnd
}

// Map shifts x by the interval's offset. The caller guarantees Contains(x).
func (iv Interval) Map(x uint64) uint64 {
	return iv.DestinationStart + (x - iv.SourceStart)
}

// Overlaps reports whether the source ranges of iv and o share a value.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.SourceStart < o.SourceEnd && o.SourceStart < iv.SourceEnd
}

// IsIdentity reports whether the interval maps every value onto itself.
func (iv Interval) IsIdentity() bool {
	return iv.SourceStart == iv.DestinationStart
}

// String renders the interval as "[s,e)->[d,f)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)->[%d,%d)", iv.SourceStart, iv.SourceEnd, iv.DestinationStart, iv.DestinationEnd)
}

// continues reports whether next starts where iv ends on both sides, so the
// two can be stored as one interval.
func (iv Interval) continues(next Interval) bool {
	return iv.SourceEnd == next.SourceStart && iv.DestinationEnd == next.DestinationStart
}
