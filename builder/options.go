// SPDX-License-Identifier: MIT
// Package: remap/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig before
// generation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDomain bounds every generated source and destination value to
// [0, limit). Small domains make brute-force cross-checks cheap.
// Panics if limit < 2 or limit > math.MaxInt64.
func WithDomain(limit uint64) BuilderOption {
	if limit < minDomain || limit > math.MaxInt64 {
		panic("builder: WithDomain(limit) out of [2, MaxInt64]")
	}
	return func(c *builderConfig) {
		c.domain = limit
	}
}

// WithFillRatio sets the probability that a slot receives an interval.
// Lower ratios leave more identity gaps. Panics outside (0, 1].
func WithFillRatio(p float64) BuilderOption {
	if !(p > 0 && p <= 1) {
		panic("builder: WithFillRatio(p) out of (0,1]")
	}
	return func(c *builderConfig) {
		c.fillRatio = p
	}
}

// WithNameScheme sets the stage naming function idx -> name used by
// BuildPipeline. Panics on nil.
func WithNameScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}
