// Package category models one stage of an interval-remapping pipeline: an
// ordered set of non-overlapping source intervals, each shifted onto a
// destination interval of the same length, with identity everywhere else.
//
// 🚀 What is a Category?
//
//	A Category is a piecewise-linear partial function on uint64. Every
//	Interval [s, e) -> [d, d+(e-s)) moves its values by a fixed offset;
//	values that fall into no interval pass through unchanged:
//
//	    source       0 ... 50 ──── 98 ─ 100 ...
//	                       │  +2   │ -48 │
//	    destination  0 ... 52 ─── 100 50─52 ...
//
// ✨ Key features:
//   - construction validates once: sorted, non-empty, length-preserving,
//     pairwise non-overlapping (ErrMalformedInterval, ErrOverlappingCategory)
//   - FindDestination: O(log n) binary search with identity fallback
//   - Segments: split any [start, end) range into single-offset runs
//   - Merge: compose two categories into one equivalent category, so
//     Merge(a, b).FindDestination(x) == b.FindDestination(a.FindDestination(x))
//     for every x, including the identity gaps of both inputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/remap/category"
//
//	a, _ := category.New([]category.Interval{{SourceStart: 8, SourceEnd: 18, DestinationStart: 5, DestinationEnd: 15}})
//	b, _ := category.New([]category.Interval{{SourceStart: 2, SourceEnd: 12, DestinationStart: 3, DestinationEnd: 13}})
//
//	ab := category.Merge(a, b)
//	ab.FindDestination(10) // 8, same as b.FindDestination(a.FindDestination(10))
//
// Performance:
//
//   - New:             O(n log n)
//   - FindDestination: O(log n)
//   - Segments:        O(log n + k), k = runs produced
//   - Merge:           O((n+1)·log m + n + m), n = len(first), m = len(second)
//
// A Category is immutable after construction and safe to share. A nil
// *Category behaves as the identity category.
package category
