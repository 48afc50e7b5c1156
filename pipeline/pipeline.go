package pipeline

import (
	"fmt"

	"github.com/katalvlaran/remap/category"
)

// Pipeline is an ordered list of categories plus the seeds to query.
// It is immutable after New.
type Pipeline struct {
	seeds      []uint64
	categories []*category.Category
}

// New returns a pipeline applying categories in the given order. Both
// slices are copied. Nil categories act as identity stages.
func New(seeds []uint64, categories ...*category.Category) *Pipeline {
	p := &Pipeline{
		seeds:      make([]uint64, len(seeds)),
		categories: make([]*category.Category, len(categories)),
	}
	copy(p.seeds, seeds)
	copy(p.categories, categories)

	return p
}

// Seeds returns a copy of the seed values.
func (p *Pipeline) Seeds() []uint64 {
	out := make([]uint64, len(p.seeds))
	copy(out, p.seeds)

	return out
}

// Categories returns the stages in application order. The slice is a copy;
// the categories themselves are immutable and shared.
func (p *Pipeline) Categories() []*category.Category {
	out := make([]*category.Category, len(p.categories))
	copy(out, p.categories)

	return out
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.categories) }

// Locate folds FindDestination through every stage in order.
func (p *Pipeline) Locate(seed uint64) uint64 {
	x := seed
	for _, c := range p.categories {
		x = c.FindDestination(x)
	}

	return x
}

// Trace returns seed followed by its value after each stage, so the result
// has Len()+1 entries and its last entry equals Locate(seed).
func (p *Pipeline) Trace(seed uint64) []uint64 {
	out := make([]uint64, 0, len(p.categories)+1)
	out = append(out, seed)
	x := seed
	for _, c := range p.categories {
		x = c.FindDestination(x)
		out = append(out, x)
	}

	return out
}

// Compose merges all stages left to right into one category with
// Compose().FindDestination(x) == Locate(x) for every x. An empty pipeline
// composes to the identity category.
func (p *Pipeline) Compose(opts ...category.MergeOption) *category.Category {
	return category.Compose(p.categories, opts...)
}

// MinimumOverSeeds returns the smallest location of the individual seeds.
//
// Errors: ErrEmptyQuery when the pipeline has no seeds.
func (p *Pipeline) MinimumOverSeeds() (uint64, error) {
	if len(p.seeds) == 0 {
		return 0, fmt.Errorf("MinimumOverSeeds: no seeds: %w", ErrEmptyQuery)
	}
	low := p.Locate(p.seeds[0])
	for _, s := range p.seeds[1:] {
		low = min(low, p.Locate(s))
	}

	return low, nil
}
