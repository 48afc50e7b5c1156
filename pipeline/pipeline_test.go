package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/remap/category"
	"github.com/katalvlaran/remap/pipeline"
)

// stage builds a named category from (destination, source, length) triples.
func stage(t testing.TB, name string, triples ...[3]uint64) *category.Category {
	t.Helper()
	ivs := make([]category.Interval, 0, len(triples))
	for _, tr := range triples {
		iv, err := category.NewInterval(tr[0], tr[1], tr[2])
		require.NoError(t, err)
		ivs = append(ivs, iv)
	}
	c, err := category.New(ivs, category.WithName(name))
	require.NoError(t, err)

	return c
}

// workedExample is the seven-stage reference almanac with seeds 79 14 55 13.
func workedExample(t testing.TB) *pipeline.Pipeline {
	t.Helper()

	return pipeline.New([]uint64{79, 14, 55, 13},
		stage(t, "seed-to-soil", [3]uint64{50, 98, 2}, [3]uint64{52, 50, 48}),
		stage(t, "soil-to-fertilizer", [3]uint64{0, 15, 37}, [3]uint64{37, 52, 2}, [3]uint64{39, 0, 15}),
		stage(t, "fertilizer-to-water", [3]uint64{49, 53, 8}, [3]uint64{0, 11, 42}, [3]uint64{42, 0, 7}, [3]uint64{57, 7, 4}),
		stage(t, "water-to-light", [3]uint64{88, 18, 7}, [3]uint64{18, 25, 70}),
		stage(t, "light-to-temperature", [3]uint64{45, 77, 23}, [3]uint64{81, 45, 19}, [3]uint64{68, 64, 13}),
		stage(t, "temperature-to-humidity", [3]uint64{0, 69, 1}, [3]uint64{1, 0, 69}),
		stage(t, "humidity-to-location", [3]uint64{60, 56, 37}, [3]uint64{56, 93, 4}),
	)
}

// TestLocate_Reference checks the per-seed locations of the worked example.
func TestLocate_Reference(t *testing.T) {
	p := workedExample(t)
	want := map[uint64]uint64{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, loc := range want {
		assert.Equal(t, loc, p.Locate(seed), "seed %d", seed)
	}

	low, err := p.MinimumOverSeeds()
	require.NoError(t, err)
	assert.Equal(t, uint64(35), low)
}

// TestTrace reports the value after every stage.
func TestTrace(t *testing.T) {
	p := workedExample(t)
	assert.Equal(t, []uint64{79, 81, 81, 81, 74, 78, 78, 82}, p.Trace(79))
	assert.Equal(t, []uint64{14, 14, 53, 49, 42, 42, 43, 43}, p.Trace(14))

	empty := pipeline.New(nil)
	assert.Equal(t, []uint64{5}, empty.Trace(5))
}

// TestCompose_MatchesLocate checks the composed category against stage-by-stage lookup.
func TestCompose_MatchesLocate(t *testing.T) {
	p := workedExample(t)
	c := p.Compose()
	require.NoError(t, c.Validate())
	for x := uint64(0); x < 120; x++ {
		require.Equal(t, p.Locate(x), c.FindDestination(x), "x=%d", x)
	}
	assert.Equal(t, 0, pipeline.New(nil).Compose().Len(), "empty pipeline composes to identity")
}

// TestOrderMatters reverses the stages and expects a different answer.
func TestOrderMatters(t *testing.T) {
	a := stage(t, "a", [3]uint64{5, 8, 10})
	b := stage(t, "b", [3]uint64{3, 2, 10})

	ab := pipeline.New(nil, a, b)
	ba := pipeline.New(nil, b, a)
	assert.Equal(t, uint64(8), ab.Locate(10))
	assert.Equal(t, uint64(10), ab.Locate(12))
	assert.Equal(t, uint64(9), ba.Locate(12))
}

// TestNew_Copies verifies that New and the accessors do not alias caller slices.
func TestNew_Copies(t *testing.T) {
	seeds := []uint64{1, 2}
	a := stage(t, "a", [3]uint64{5, 8, 10})
	cats := []*category.Category{a}
	p := pipeline.New(seeds, cats...)

	seeds[0] = 99
	cats[0] = nil
	assert.Equal(t, []uint64{1, 2}, p.Seeds())
	assert.Same(t, a, p.Categories()[0])
	assert.Equal(t, 1, p.Len())

	got := p.Seeds()
	got[1] = 77
	assert.Equal(t, uint64(2), p.Seeds()[1])
}

// TestMinimumOverSeeds_Empty must not return a sentinel value.
func TestMinimumOverSeeds_Empty(t *testing.T) {
	_, err := pipeline.New(nil).MinimumOverSeeds()
	assert.ErrorIs(t, err, pipeline.ErrEmptyQuery)
}

// TestNilStage treats a nil category as identity.
func TestNilStage(t *testing.T) {
	a := stage(t, "a", [3]uint64{5, 8, 10})
	p := pipeline.New(nil, nil, a, nil)
	assert.Equal(t, uint64(7), p.Locate(10))
	assert.Equal(t, uint64(7), p.Compose().FindDestination(10))
}
