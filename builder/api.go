// SPDX-License-Identifier: MIT
// Package: remap/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Orchestrators: BuildCategory / BuildPipeline resolve cfg once and run
//     constructors in order.
//   - Constructors are declared as factories returning Constructor and
//     implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     categories.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/remap/category"
)

// Constructor produces one category named name from the resolved
// builderConfig. Constructors MUST validate parameters early, return
// sentinel errors and draw randomness only from cfg.rng.
type Constructor func(name string, cfg builderConfig) (*category.Category, error)

// BuildCategory resolves bopts and runs a single constructor, naming the
// result with the name scheme at index 0.
func BuildCategory(bopts []BuilderOption, con Constructor) (*category.Category, error) {
	cats, err := BuildPipeline(bopts, con)
	if err != nil {
		return nil, fmt.Errorf("BuildCategory: %w", err)
	}

	return cats[0], nil
}

// BuildPipeline resolves the builder configuration from bopts and applies all
// constructors in order; stage i is named cfg.nameFn(i). Any constructor error
// is wrapped with "BuildPipeline: %w" and returned immediately.
//
// Complexity: O(len(bopts)) to resolve options plus Σ cost of constructors.
func BuildPipeline(bopts []BuilderOption, cons ...Constructor) ([]*category.Category, error) {
	if len(cons) == 0 {
		return nil, fmt.Errorf("BuildPipeline: no constructors: %w", ErrTooFewIntervals)
	}
	cfg := newBuilderConfig(bopts...)

	out := make([]*category.Category, 0, len(cons))
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildPipeline: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		c, err := fn(cfg.nameFn(i), cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildPipeline: stage %d: %w", i, err)
		}
		out = append(out, c)
	}

	return out, nil
}

// RandomPipeline builds stages categories of RandomCategory(perStage) that
// share one RNG stream.
//
// Errors: ErrTooFewIntervals (stages < 1 or perStage < 0), plus those of
// RandomCategory.
func RandomPipeline(stages, perStage int, bopts ...BuilderOption) ([]*category.Category, error) {
	if stages < minStages {
		return nil, builderErrorf(methodRandomPipeline, ErrTooFewIntervals, "stages=%d < min=%d", stages, minStages)
	}
	cons := make([]Constructor, stages)
	for i := range cons {
		cons[i] = RandomCategory(perStage)
	}

	return BuildPipeline(bopts, cons...)
}
