// Package remap composes interval-remapping pipelines: chains of stages
// that each shift a few half-open ranges of uint64 values and pass every
// other value through unchanged.
//
// 🚀 What is remap?
//
//	A small, dependency-light library plus a CLI that brings together:
//		• Categories: sorted, non-overlapping intervals with identity gaps
//		• Point lookup: O(log n) binary search with identity fallback
//		• Composition: Merge two stages into one equivalent stage
//		• Pipelines: fold lookups or merges across every stage in order
//		• Range queries: lowest image of huge seed ranges, no enumeration
//
// ✨ Why compose?
//
//   - A composed pipeline answers each lookup with one binary search
//   - Range queries cost per interval, never per value
//   - Merge is exact: Merge(a, b)(x) == b(a(x)) for every uint64 x
//   - Observers (WithOnPiece, WithOnRun) instead of printing
//
// Under the hood, everything is organized into these packages:
//
//	category/ - Interval, Category, Segments, Merge, Compose
//	pipeline/ - Pipeline, Range, Locate, Trace, MinimumOverRanges, Propagate
//	almanac/  - text format parser producing seeds and categories
//	builder/  - seeded random categories and pipelines for tests and benchmarks
//	cmd/remap - solve, compose and locate from the command line
//
// Quick ASCII example:
//
//	    x:     0 … 7  8 ─────── 17  18 …
//	    a:     0 … 7  5 ─────── 14  18 …     (shift [8,18) by -3)
//	    b∘a:   see category.Merge
//
//	go get github.com/katalvlaran/remap
package remap
