// SPDX-License-Identifier: MIT
// Package: remap/builder
//
// impl_random_category.go - RandomCategory(n) and Fixed(...) constructors.
//
// Canonical model:
//   - The domain [0, D) is cut into n equal slots (the last one absorbs the
//     remainder). Each slot receives at most one interval, so intervals
//     never overlap by construction.
//   - With fill ratio p < 1 a slot is skipped with probability 1-p, leaving
//     wider identity gaps.
//   - Inside a slot [lo, hi): start ∈ [lo, hi-2], length ∈ [1, hi-start],
//     destination ∈ [0, D-length]. Destinations of different slots may
//     overlap; categories need not be injective.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewIntervals); n == 0 yields the identity category.
//   - cfg.rng must be non-nil for n > 0 (else ErrNeedRandSource).
//   - D ≥ 2n (else ErrDomainTooSmall).
//
// Complexity: O(n log n) (dominated by category.New), O(n) space.
//
// Determinism: slots are visited in ascending order and every slot draws
// from the RNG in a fixed order.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/remap/category"
)

// RandomCategory returns a Constructor that samples up to n non-overlapping
// intervals inside the configured domain.
func RandomCategory(n int) Constructor {
	return func(name string, cfg builderConfig) (*category.Category, error) {
		if n < minIntervals {
			return nil, builderErrorf(methodRandomCategory, ErrTooFewIntervals, "n=%d < min=%d", n, minIntervals)
		}
		if n == 0 {
			return category.Identity(name), nil
		}
		if cfg.rng == nil {
			return nil, builderErrorf(methodRandomCategory, ErrNeedRandSource, "n=%d", n)
		}
		if cfg.domain < uint64(n)*slotWidth {
			return nil, builderErrorf(methodRandomCategory, ErrDomainTooSmall, "domain=%d < %d·n=%d", cfg.domain, slotWidth, n)
		}

		slot := cfg.domain / uint64(n)
		ivs := make([]category.Interval, 0, n)
		for i := 0; i < n; i++ {
			lo := uint64(i) * slot
			hi := lo + slot
			if i == n-1 {
				hi = cfg.domain
			}
			if cfg.fillRatio < 1 && cfg.rng.Float64() >= cfg.fillRatio {
				continue
			}

			start := lo + randBelow(cfg.rng, hi-lo-1)
			length := 1 + randBelow(cfg.rng, hi-start)
			dest := randBelow(cfg.rng, cfg.domain-length+1)

			iv, err := category.NewInterval(dest, start, length)
			if err != nil {
				return nil, fmt.Errorf("%s: slot %d: %w: %w", methodRandomCategory, i, ErrConstructFailed, err)
			}
			ivs = append(ivs, iv)
		}

		c, err := category.New(ivs, category.WithName(name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodRandomCategory, ErrConstructFailed, err)
		}

		return c, nil
	}
}

// Fixed returns a Constructor that builds a category from explicit
// intervals. Errors from category.New are wrapped together with
// ErrConstructFailed, so both sentinels match errors.Is.
func Fixed(intervals ...category.Interval) Constructor {
	return func(name string, _ builderConfig) (*category.Category, error) {
		c, err := category.New(intervals, category.WithName(name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodFixed, ErrConstructFailed, err)
		}

		return c, nil
	}
}

// randBelow draws uniformly from [0, x). x must be in [1, MaxInt64].
func randBelow(r *rand.Rand, x uint64) uint64 {
	return uint64(r.Int63n(int64(x)))
}
