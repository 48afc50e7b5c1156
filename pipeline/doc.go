// Package pipeline chains categories into an ordered remapping pipeline and
// answers point and range queries over it.
//
// 🚀 What is a Pipeline?
//
//	seeds ──▶ seed-to-soil ──▶ soil-to-fertilizer ──▶ … ──▶ humidity-to-location
//
//	A Pipeline holds the categories in declaration order plus the seed
//	values to query. Order matters: category.Merge is not commutative, so
//	reordering the stages changes every answer.
//
// ✨ Queries:
//   - Locate / Trace: fold FindDestination through every stage
//   - Compose:        fold category.Merge into one equivalent category
//   - MinimumOverSeeds:  smallest location of the individual seeds
//   - MinimumOverRanges: smallest location of every value in a set of
//     half-open ranges, without visiting the values one by one
//
// ⚙️ Range strategies (WithStrategy):
//   - StrategyComposed  - compose the pipeline once, split each range into
//     single-offset runs with Segments; a run's minimum is its first image.
//   - StrategyPropagate - push the range set through each stage in turn,
//     splitting and re-normalizing after every category.
//
// Both strategies return the same minimum; the composed one is cheaper
// when the same pipeline serves many queries.
//
// Usage:
//
//	p := pipeline.New(seeds, seedToSoil, soilToFertilizer)
//	ranges, err := p.SeedRanges()
//	if err != nil { … }
//	low, err := p.MinimumOverRanges(ranges)
//
// Complexity: with s stages of at most n intervals, Compose is
// O(s·(n+k)·log n) once; MinimumOverRanges then costs O(r·log k + runs)
// for r ranges against a composed category of k intervals.
package pipeline
