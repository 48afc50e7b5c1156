package pipeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/remap/category"
)

const (
	methodPairRanges        = "PairRanges"
	methodMinimumOverRanges = "MinimumOverRanges"
)

// PairRanges reads values as consecutive (start, length) pairs and returns
// one Range per pair. A zero length yields an empty range.
//
// Errors: ErrMalformedRange for an odd number of values or when
// start+length exceeds uint64.
func PairRanges(values []uint64) ([]Range, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("%s: %d values, want (start, length) pairs: %w", methodPairRanges, len(values), ErrMalformedRange)
	}
	out := make([]Range, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		start, length := values[i], values[i+1]
		if length > math.MaxUint64-start {
			return nil, fmt.Errorf("%s: pair %d (%d, %d) overflows: %w", methodPairRanges, i/2, start, length, ErrMalformedRange)
		}
		out = append(out, Range{Start: start, End: start + length})
	}

	return out, nil
}

// SeedRanges interprets the pipeline's seeds as (start, length) pairs.
func (p *Pipeline) SeedRanges() ([]Range, error) {
	return PairRanges(p.seeds)
}

// MinimumOverRanges returns the smallest location of any value in ranges
// without enumerating the values.
//
// Each range is cut into runs that move by a single offset; since a run is
// monotonic, its minimum is the image of its first value. With
// StrategyComposed the runs come from Segments on the composed pipeline,
// with StrategyPropagate they are the normalized ranges left after the last
// stage.
//
// Errors:
//   - ErrMalformedRange  - a range has Start > End.
//   - ErrEmptyQuery      - no range holds a value.
//   - ErrOptionViolation - an invalid Option was supplied.
func (p *Pipeline) MinimumOverRanges(ranges []Range, opts ...Option) (uint64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, fmt.Errorf("%s: %w", methodMinimumOverRanges, o.err)
	}

	query := make([]Range, 0, len(ranges))
	for i, r := range ranges {
		if r.Start > r.End {
			return 0, fmt.Errorf("%s: range %d %v: %w", methodMinimumOverRanges, i, r, ErrMalformedRange)
		}
		if !r.Empty() {
			query = append(query, r)
		}
	}
	if len(query) == 0 {
		return 0, fmt.Errorf("%s: %d ranges, none non-empty: %w", methodMinimumOverRanges, len(ranges), ErrEmptyQuery)
	}

	var low uint64 = math.MaxUint64
	switch o.Strategy {
	case StrategyPropagate:
		for _, r := range p.Propagate(query) {
			o.OnRun(r, r.Start)
			low = min(low, r.Start)
		}
	default:
		composed := o.Composed
		if composed == nil {
			composed = p.Compose()
		}
		for _, r := range query {
			composed.Segments(r.Start, r.End, func(s category.Segment) {
				o.OnRun(Range{Start: s.Start, End: s.End}, s.Destination)
				low = min(low, s.Destination)
			})
		}
	}

	return low, nil
}

// Propagate maps a set of ranges through every stage without composing:
// after each category the ranges are split at its boundaries, shifted, and
// normalized. The result is the sorted, disjoint image of ranges under the
// whole pipeline. Empty and malformed ranges are dropped.
func (p *Pipeline) Propagate(ranges []Range) []Range {
	cur := normalize(ranges)
	for _, c := range p.categories {
		next := make([]Range, 0, len(cur))
		for _, r := range cur {
			c.Segments(r.Start, r.End, func(s category.Segment) {
				next = append(next, Range{Start: s.Destination, End: s.Destination + (s.End - s.Start)})
			})
		}
		cur = normalize(next)
	}

	return cur
}

// normalize sorts ranges and unions the ones that overlap or touch.
func normalize(ranges []Range) []Range {
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	merged := out[:0]
	for _, r := range out {
		if last := len(merged) - 1; last >= 0 && r.Start <= merged[last].End {
			merged[last].End = max(merged[last].End, r.End)
			continue
		}
		merged = append(merged, r)
	}

	return merged
}
