// Package builder produces deterministic category fixtures for tests,
// benchmarks and examples: seeded random categories, whole pipelines of
// them, and random (start, length) seed pairs.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, domain size, fill ratio and stage naming.
//   - Constructors (Constructor implementations):
//     – RandomCategory:  up to n non-overlapping random intervals.
//     – Fixed:           a category from explicit intervals.
//   - Orchestrators:
//     – BuildCategory:   resolve options, run one constructor.
//     – BuildPipeline:   resolve options once, run constructors in order,
//     naming stage i with the configured name scheme.
//     – RandomPipeline:  shorthand for stages × RandomCategory(perStage).
//     – RandomPairs:     k seed pairs inside the domain.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     categories (one *rand.Rand is shared across the constructors of a
//     BuildPipeline call, in call order).
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; runtime validation returns sentinel errors.
//   - Every generated category satisfies the category invariant, so it can
//     be fed straight into category.Merge or pipeline.New.
//
//	cats, err := builder.RandomPipeline(7, 4, builder.WithSeed(42), builder.WithDomain(100))
package builder
