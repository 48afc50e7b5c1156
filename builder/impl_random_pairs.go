// SPDX-License-Identifier: MIT
// Package: remap/builder
//
// impl_random_pairs.go - RandomPairs(k, maxLen) seed pair generator.
//
// Contract:
//   - k ≥ 0 and maxLen ≥ 1 (else ErrBadSize).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for k == 0, so a
//     forgotten seed surfaces early.
//   - Output is flat: [start0, len0, start1, len1, ...], with
//     start ∈ [0, D) and start+len ≤ D.

package builder

// RandomPairs returns k (start, length) seed pairs inside the configured
// domain, each length in [1, maxLen].
func RandomPairs(k int, maxLen uint64, bopts ...BuilderOption) ([]uint64, error) {
	if k < minPairs {
		return nil, builderErrorf(methodRandomPairs, ErrBadSize, "k=%d < min=%d", k, minPairs)
	}
	if maxLen == 0 {
		return nil, builderErrorf(methodRandomPairs, ErrBadSize, "maxLen=0")
	}
	cfg := newBuilderConfig(bopts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomPairs, ErrNeedRandSource, "k=%d", k)
	}

	out := make([]uint64, 0, 2*k)
	for i := 0; i < k; i++ {
		start := randBelow(cfg.rng, cfg.domain)
		length := 1 + randBelow(cfg.rng, min(maxLen, cfg.domain-start))
		out = append(out, start, length)
	}

	return out, nil
}
