package category_test

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/remap/builder"
	"github.com/katalvlaran/remap/category"
)

// sequential applies cats in order, the reference Merge must agree with.
func sequential(x uint64, cats ...*category.Category) uint64 {
	for _, c := range cats {
		x = c.FindDestination(x)
	}

	return x
}

// assertCanonical checks the structural guarantees of a Merge result: valid,
// no identity intervals, no neighbours that should have been coalesced.
func assertCanonical(t *testing.T, c *category.Category) {
	t.Helper()
	require.NoError(t, c.Validate())
	ivs := c.Intervals()
	for i, it := range ivs {
		assert.False(t, it.IsIdentity(), "identity interval %v kept", it)
		if i > 0 {
			prev := ivs[i-1]
			seamless := prev.SourceEnd == it.SourceStart && prev.DestinationEnd == it.DestinationStart
			assert.False(t, seamless, "%v and %v should be coalesced", prev, it)
		}
	}
}

// TestMerge_Scenario is the two-stage example: 10 -> 7 -> 8.
func TestMerge_Scenario(t *testing.T) {
	a := mustNew(t, "a", iv(5, 8, 10))
	b := mustNew(t, "b", iv(3, 2, 10))

	assert.Equal(t, uint64(7), a.FindDestination(10))
	assert.Equal(t, uint64(8), b.FindDestination(7))

	ab := category.Merge(a, b)
	assert.Equal(t, uint64(8), ab.FindDestination(10))
	assert.Equal(t, []category.Interval{iv(3, 2, 6), iv(6, 8, 7), iv(12, 15, 3)}, ab.Intervals())
	assert.Equal(t, "a+b", ab.Name())
	assertCanonical(t, ab)
}

// TestMerge_EdgeCases covers the four overlap shapes between the first
// category's image and the second category.
func TestMerge_EdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		first  []category.Interval
		second []category.Interval
		want   []category.Interval
	}{
		{
			name:   "first interval inside one second interval",
			first:  []category.Interval{iv(20, 10, 5)},
			second: []category.Interval{iv(100, 18, 12)},
			want:   []category.Interval{iv(102, 10, 5), iv(100, 18, 12)},
		},
		{
			name:   "first interval spans second intervals and gaps",
			first:  []category.Interval{iv(10, 0, 10)},
			second: []category.Interval{iv(50, 12, 2), iv(60, 16, 2)},
			want: []category.Interval{
				iv(10, 0, 2), iv(50, 2, 2), iv(14, 4, 2), iv(60, 6, 2), iv(18, 8, 2),
				iv(50, 12, 2), iv(60, 16, 2),
			},
		},
		{
			name:   "first image misses second entirely",
			first:  []category.Interval{iv(100, 5, 5)},
			second: []category.Interval{iv(200, 0, 50)},
			want:   []category.Interval{iv(200, 0, 5), iv(100, 5, 5), iv(210, 10, 40)},
		},
		{
			name:   "second reached only through first's gaps",
			first:  nil,
			second: []category.Interval{iv(7, 1, 2), iv(0, 30, 4)},
			want:   []category.Interval{iv(7, 1, 2), iv(0, 30, 4)},
		},
		{
			name:   "second undoes first",
			first:  []category.Interval{iv(40, 10, 5)},
			second: []category.Interval{iv(10, 40, 5)},
			want:   []category.Interval{iv(10, 40, 5)},
		},
		{
			name:   "second maps first's image back onto its source",
			first:  []category.Interval{iv(40, 10, 5), iv(10, 40, 5)},
			second: []category.Interval{iv(10, 40, 5), iv(40, 10, 5)},
			want:   nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustNew(t, "a", tc.first...)
			b := mustNew(t, "b", tc.second...)
			ab := category.Merge(a, b)

			if tc.want == nil {
				assert.Equal(t, 0, ab.Len(), "got %v", ab)
			} else {
				assert.Equal(t, tc.want, ab.Intervals())
			}
			assertCanonical(t, ab)
			for x := uint64(0); x < 128; x++ {
				require.Equal(t, sequential(x, a, b), ab.FindDestination(x), "x=%d", x)
			}
		})
	}
}

// TestMerge_IdentityNeutral checks that the identity category is neutral on both sides.
func TestMerge_IdentityNeutral(t *testing.T) {
	c := seedToSoil(t)
	id := category.Identity("id")

	assert.True(t, category.Merge(id, c).Equal(c))
	assert.True(t, category.Merge(c, id).Equal(c))
	assert.True(t, category.Merge(nil, c).Equal(c))
	assert.Equal(t, 0, category.Merge(nil, nil).Len())
}

// TestMerge_NonCommutative shows that application order matters.
func TestMerge_NonCommutative(t *testing.T) {
	a := mustNew(t, "a", iv(5, 8, 10))
	b := mustNew(t, "b", iv(3, 2, 10))

	ab := category.Merge(a, b)
	ba := category.Merge(b, a)
	assert.Equal(t, uint64(10), ab.FindDestination(12)) // 12 -> 9 -> 10
	assert.Equal(t, uint64(9), ba.FindDestination(12))  // 12 -> 12 -> 9
	assert.False(t, ab.Equal(ba))
}

// TestMerge_TopOfDomain exercises intervals that end at MaxUint64.
func TestMerge_TopOfDomain(t *testing.T) {
	const top = math.MaxUint64
	a := mustNew(t, "a", iv(0, top-10, 10))
	b := mustNew(t, "b", iv(top-10, 0, 10))
	ab := category.Merge(a, b)

	assertCanonical(t, ab)
	assert.Equal(t, []category.Interval{iv(top-10, 0, 10)}, ab.Intervals(), "the round trip on top is identity")
	assert.Equal(t, uint64(top-7), ab.FindDestination(3))
	assert.Equal(t, uint64(top-5), ab.FindDestination(top-5))
	assert.Equal(t, uint64(top), ab.FindDestination(top))

	ba := category.Merge(b, a)
	assert.Equal(t, []category.Interval{iv(0, top-10, 10)}, ba.Intervals())
}

// TestMerge_Observer records the raw pieces before elision and coalescing.
func TestMerge_Observer(t *testing.T) {
	a := mustNew(t, "a", iv(5, 8, 10))
	b := mustNew(t, "b", iv(3, 2, 10))

	var pieces []category.Piece
	category.Merge(a, b, category.WithOnPiece(func(p category.Piece) { pieces = append(pieces, p) }))

	require.Len(t, pieces, 5)
	assert.Equal(t, category.Piece{Interval: iv(0, 0, 2)}, pieces[0])
	assert.Equal(t, category.Piece{Interval: iv(3, 2, 6), ViaSecond: true}, pieces[1])
	assert.Equal(t, category.Piece{Interval: iv(6, 8, 7), ViaFirst: true, ViaSecond: true}, pieces[2])
	assert.Equal(t, category.Piece{Interval: iv(12, 15, 3), ViaFirst: true}, pieces[3])
	assert.Equal(t, uint64(18), pieces[4].Interval.SourceStart)
	assert.Equal(t, uint64(math.MaxUint64), pieces[4].Interval.SourceEnd)
	assert.True(t, pieces[4].Interval.IsIdentity())
}

// TestMerge_Coalesce compares the coalesced and raw representations.
func TestMerge_Coalesce(t *testing.T) {
	split := mustNew(t, "split", iv(10, 0, 5), iv(15, 5, 5))
	id := category.Identity("id")

	joined := category.Merge(split, id)
	assert.Equal(t, []category.Interval{iv(10, 0, 10)}, joined.Intervals())

	raw := category.Merge(split, id, category.WithoutCoalesce())
	assert.Equal(t, []category.Interval{iv(10, 0, 5), iv(15, 5, 5)}, raw.Intervals())

	for x := uint64(0); x < 20; x++ {
		assert.Equal(t, joined.FindDestination(x), raw.FindDestination(x))
	}
}

// TestMerge_Names covers default and explicit names.
func TestMerge_Names(t *testing.T) {
	a := mustNew(t, "a", iv(1, 0, 1))
	b := mustNew(t, "b", iv(2, 1, 1))
	anon := mustNew(t, "", iv(3, 2, 1))

	assert.Equal(t, "a+b", category.Merge(a, b).Name())
	assert.Equal(t, "", category.Merge(a, anon).Name())
	assert.Equal(t, "ab", category.Merge(a, b, category.WithMergeName("ab")).Name())
}

// TestMerge_RandomComposition is the core property: for random categories,
// Merge(a, b)(x) == b(a(x)) on the whole test domain, with a canonical result.
func TestMerge_RandomComposition(t *testing.T) {
	const domain = 300
	for seed := int64(0); seed < 200; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithDomain(domain), builder.WithFillRatio(0.7)}
		cats, err := builder.RandomPipeline(2, 6, opts...)
		require.NoError(t, err)
		a, b := cats[0], cats[1]

		ab := category.Merge(a, b)
		assertCanonical(t, ab)
		for x := uint64(0); x < domain+16; x++ {
			if got, want := ab.FindDestination(x), sequential(x, a, b); got != want {
				t.Fatalf("seed %d x=%d: merged=%d sequential=%d\n%s", seed, x, got, want,
					spew.Sdump(a.Intervals(), b.Intervals(), ab.Intervals()))
			}
		}
	}
}

// TestMerge_Associativity checks that both fold directions agree with
// sequential application and produce the same canonical category.
func TestMerge_Associativity(t *testing.T) {
	const domain = 200
	for seed := int64(0); seed < 100; seed++ {
		cats, err := builder.RandomPipeline(3, 5, builder.WithSeed(seed), builder.WithDomain(domain))
		require.NoError(t, err)
		a, b, c := cats[0], cats[1], cats[2]

		left := category.Merge(category.Merge(a, b), c)
		right := category.Merge(a, category.Merge(b, c))
		if !left.Equal(right) {
			t.Fatalf("seed %d: folds differ\n%s", seed, spew.Sdump(left.Intervals(), right.Intervals()))
		}
		for x := uint64(0); x < domain; x++ {
			require.Equal(t, sequential(x, a, b, c), left.FindDestination(x), "seed %d x=%d", seed, x)
		}
	}
}

// TestCompose folds a list left to right.
func TestCompose(t *testing.T) {
	assert.Equal(t, 0, category.Compose(nil).Len())

	c := seedToSoil(t)
	assert.Same(t, c, category.Compose([]*category.Category{c}))

	cats, err := builder.RandomPipeline(5, 4, builder.WithSeed(11), builder.WithDomain(120))
	require.NoError(t, err)
	composed := category.Compose(cats)
	assertCanonical(t, composed)
	for x := uint64(0); x < 130; x++ {
		assert.Equal(t, sequential(x, cats...), composed.FindDestination(x), "x=%d", x)
	}
	assert.Equal(t, "0+1+2+3+4", composed.Name())
}
