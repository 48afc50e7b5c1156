package category

import (
	"sort"
	"strings"
)

const (
	methodNew      = "New"
	methodValidate = "Validate"
)

// New builds a Category from intervals in any order.
//
// Implementation:
//   - Stage 1: copy the input so the caller keeps ownership of its slice.
//   - Stage 2: sort by SourceStart.
//   - Stage 3: validate every interval and every neighbour pair once; no
//     lookup re-checks the invariant afterwards.
//
// Errors:
//   - ErrMalformedInterval   - empty or non length-preserving interval.
//   - ErrOverlappingCategory - two intervals share a source value.
//
// Complexity: O(n log n) time, O(n) space.
func New(intervals []Interval, opts ...Option) (*Category, error) {
	var o categoryOptions
	for _, opt := range opts {
		opt(&o)
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SourceStart < sorted[j].SourceStart
	})

	if err := validate(methodNew, o.name, sorted); err != nil {
		return nil, err
	}

	return &Category{name: o.name, intervals: sorted}, nil
}

// Identity returns a named category without intervals; every value maps to
// itself.
func Identity(name string) *Category {
	return &Category{name: name}
}

// Validate checks that intervals already satisfy the Category invariant:
// each interval valid, sorted by SourceStart, no overlaps. Unlike New it does
// not sort.
//
// Errors: ErrMalformedInterval, ErrUnsortedCategory, ErrOverlappingCategory.
func Validate(intervals []Interval) error {
	return validate(methodValidate, "", intervals)
}

func validate(method, name string, intervals []Interval) error {
	for i, iv := range intervals {
		if !iv.Valid() {
			return categoryErrorf(method, name, ErrMalformedInterval, "interval %d %v", i, iv)
		}
		if i == 0 {
			continue
		}
		prev := intervals[i-1]
		if iv.SourceStart < prev.SourceStart {
			return categoryErrorf(method, name, ErrUnsortedCategory, "interval %d %v before %v", i, iv, prev)
		}
		if prev.SourceEnd > iv.SourceStart {
			return categoryErrorf(method, name, ErrOverlappingCategory, "%v and %v", prev, iv)
		}
	}

	return nil
}

// Name returns the label given with WithName, or "".
func (c *Category) Name() string {
	if c == nil {
		return ""
	}

	return c.name
}

// Len returns the number of explicit intervals.
func (c *Category) Len() int {
	if c == nil {
		return 0
	}

	return len(c.intervals)
}

// Intervals returns a copy of the sorted intervals.
func (c *Category) Intervals() []Interval {
	if c == nil {
		return nil
	}
	out := make([]Interval, len(c.intervals))
	copy(out, c.intervals)

	return out
}

// Validate re-checks the invariant. A Category built by New or Merge always
// passes; the method exists for tests and for callers holding foreign data.
func (c *Category) Validate() error {
	if c == nil {
		return nil
	}

	return validate(methodValidate, c.name, c.intervals)
}

// Lookup returns the interval whose source range contains x.
//
// The search finds the first interval with SourceEnd > x; x matches it iff
// SourceStart <= x. Index arithmetic stays inside sort.Search, so no
// unsigned midpoint can wrap.
//
// Complexity: O(log n).
func (c *Category) Lookup(x uint64) (Interval, bool) {
	i := c.search(x)
	if i < c.Len() && c.intervals[i].SourceStart <= x {
		return c.intervals[i], true
	}

	return Interval{}, false
}

// FindDestination maps x through the category: the containing interval's
// offset, or identity when no interval contains x.
func (c *Category) FindDestination(x uint64) uint64 {
	if iv, ok := c.Lookup(x); ok {
		return iv.Map(x)
	}

	return x
}

// Segments decomposes [start, end) into runs that each map through
// one offset, calling fn for every run in ascending order. Gaps between
// intervals are reported with Mapped=false. Nothing is reported when
// start >= end.
//
// Complexity: O(log n + k), k = number of runs.
func (c *Category) Segments(start, end uint64, fn func(Segment)) {
	if start >= end {
		return
	}
	j := c.search(start)
	n := c.Len()

	for start < end {
		var seg Segment
		if j < n && c.intervals[j].SourceStart <= start {
			// inside intervals[j]
			iv := c.intervals[j]
			stop := min(end, iv.SourceEnd)
			seg = Segment{Start: start, End: stop, Destination: iv.Map(start), Mapped: true}
			j++
		} else {
			// gap before intervals[j] (or past the last one)
			stop := end
			if j < n {
				stop = min(end, c.intervals[j].SourceStart)
			}
			seg = Segment{Start: start, End: stop, Destination: start}
		}
		fn(seg)
		start = seg.End
	}
}

// Equal reports whether both categories hold the same intervals. Names are
// not compared.
func (c *Category) Equal(other *Category) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i := 0; i < c.Len(); i++ {
		if c.intervals[i] != other.intervals[i] {
			return false
		}
	}

	return true
}

// String renders "name{[s,e)->[d,f) ...}".
func (c *Category) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name())
	sb.WriteByte('{')
	for i := 0; i < c.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.intervals[i].String())
	}
	sb.WriteByte('}')

	return sb.String()
}

// search returns the index of the first interval with SourceEnd > x, or Len()
// when there is none.
func (c *Category) search(x uint64) int {
	n := c.Len()
	if n == 0 {
		return 0
	}

	return sort.Search(n, func(i int) bool {
		return c.intervals[i].SourceEnd > x
	})
}
