package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/remap/builder"
	"github.com/katalvlaran/remap/category"
)

// TestRandomCategory_Errors covers the validation order of RandomCategory.
func TestRandomCategory_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildCategory(nil, builder.RandomCategory(-1))
	assert.ErrorIs(t, err, builder.ErrTooFewIntervals)

	_, err = builder.BuildCategory(nil, builder.RandomCategory(3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildCategory([]builder.BuilderOption{builder.WithSeed(1), builder.WithDomain(5)}, builder.RandomCategory(3))
	assert.ErrorIs(t, err, builder.ErrDomainTooSmall)
}

// TestRandomCategory_Invariant checks that generated categories are valid and
// stay inside the domain for many seeds and fill ratios.
func TestRandomCategory_Invariant(t *testing.T) {
	t.Parallel()

	const domain = 200
	for seed := int64(0); seed < 50; seed++ {
		for _, fill := range []float64{0.3, 1} {
			opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithDomain(domain), builder.WithFillRatio(fill)}
			c, err := builder.BuildCategory(opts, builder.RandomCategory(8))
			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.LessOrEqual(t, c.Len(), 8)
			for _, iv := range c.Intervals() {
				assert.LessOrEqual(t, iv.SourceEnd, uint64(domain), "seed %d: %v", seed, iv)
				assert.LessOrEqual(t, iv.DestinationEnd, uint64(domain), "seed %d: %v", seed, iv)
			}
		}
	}
}

// TestRandomCategory_Zero yields a named identity category without needing an RNG.
func TestRandomCategory_Zero(t *testing.T) {
	t.Parallel()

	c, err := builder.BuildCategory(nil, builder.RandomCategory(0))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "0", c.Name())
}

// TestBuildPipeline_Deterministic verifies that equal seeds give equal pipelines
// and that stages are named by the scheme.
func TestBuildPipeline_Deterministic(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{
		builder.WithSeed(99),
		builder.WithDomain(1000),
		builder.WithNameScheme(func(i int) string { return fmt.Sprintf("stage-%d", i) }),
	}
	a, err := builder.RandomPipeline(4, 5, opts...)
	require.NoError(t, err)
	b, err := builder.RandomPipeline(4, 5, opts...)
	require.NoError(t, err)

	require.Len(t, a, 4)
	for i := range a {
		assert.True(t, a[i].Equal(b[i]), "stage %d differs", i)
		assert.Equal(t, fmt.Sprintf("stage-%d", i), a[i].Name())
	}
}

// TestBuildPipeline_Errors covers orchestration failures.
func TestBuildPipeline_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildPipeline(nil)
	assert.ErrorIs(t, err, builder.ErrTooFewIntervals)

	_, err = builder.BuildPipeline(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.RandomPipeline(0, 3, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewIntervals)

	overlap := builder.Fixed(
		category.Interval{SourceStart: 0, SourceEnd: 10, DestinationStart: 20, DestinationEnd: 30},
		category.Interval{SourceStart: 5, SourceEnd: 8, DestinationStart: 40, DestinationEnd: 43},
	)
	_, err = builder.BuildPipeline(nil, overlap)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, category.ErrOverlappingCategory)
}

// TestFixed mixes explicit and random stages in one pipeline.
func TestFixed(t *testing.T) {
	t.Parallel()

	shift := builder.Fixed(category.Interval{SourceStart: 8, SourceEnd: 18, DestinationStart: 5, DestinationEnd: 15})
	cats, err := builder.BuildPipeline([]builder.BuilderOption{builder.WithSeed(3), builder.WithDomain(64)},
		shift, builder.RandomCategory(4))
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, uint64(7), cats[0].FindDestination(10))
	assert.Equal(t, "0", cats[0].Name())
	assert.Equal(t, "1", cats[1].Name())
}

// TestRandomPairs checks bounds and errors of the pair generator.
func TestRandomPairs(t *testing.T) {
	t.Parallel()

	_, err := builder.RandomPairs(-1, 10, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomPairs(2, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomPairs(2, 10)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	pairs, err := builder.RandomPairs(20, 15, builder.WithSeed(5), builder.WithDomain(100))
	require.NoError(t, err)
	require.Len(t, pairs, 40)
	for i := 0; i < len(pairs); i += 2 {
		start, length := pairs[i], pairs[i+1]
		assert.GreaterOrEqual(t, length, uint64(1))
		assert.LessOrEqual(t, length, uint64(15))
		assert.LessOrEqual(t, start+length, uint64(100))
	}
}
