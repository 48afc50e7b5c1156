// SPDX-License-Identifier: MIT
// Package: remap/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng        = nil            (stochastic constructors demand WithSeed/WithRand)
//   • domain     = 1<<16
//   • fillRatio  = 1.0            (every slot holds an interval)
//   • nameFn     = decimalName    ("0","1","2",...)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Exclusive upper bound for generated values.
	domain uint64
	// Probability that a slot receives an interval.
	fillRatio float64
	// Stage naming: index -> name.
	nameFn func(int) string
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultDomain    = uint64(1) << 16
	defaultFillRatio = 1.0
	minDomain        = 2
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		domain:    defaultDomain,
		fillRatio: defaultFillRatio,
		nameFn:    decimalName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalName renders an index as a base-10 string ("0","1","2",...).
func decimalName(i int) string {
	return strconv.Itoa(i)
}
