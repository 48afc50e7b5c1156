// Package pipeline provides the range type, query strategies and options.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/remap/category"
)

// Range is the half-open set of values [Start, End).
type Range struct {
	Start uint64
	End   uint64
}

// Len returns End-Start, or 0 for a malformed range.
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}

	return r.End - r.Start
}

// Empty reports whether the range holds no value.
func (r Range) Empty() bool { return r.End <= r.Start }

// String renders the range as "[Start,End)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Strategy selects how MinimumOverRanges pushes ranges through the pipeline.
type Strategy int

const (
	// StrategyComposed merges all stages into one category first.
	StrategyComposed Strategy = iota
	// StrategyPropagate maps the range set stage by stage.
	StrategyPropagate
)

var strategyNames = map[Strategy]string{
	StrategyComposed:  "composed",
	StrategyPropagate: "propagate",
}

// String returns the lower-case name used by ParseStrategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "composed" or "propagate" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "composed":
		return StrategyComposed, nil
	case "propagate":
		return StrategyPropagate, nil
	default:
		return 0, fmt.Errorf("ParseStrategy: %q: %w", name, ErrUnknownStrategy)
	}
}

// Option configures MinimumOverRanges via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a range query.
type Options struct {
	// Strategy picks composed or stage-by-stage evaluation.
	Strategy Strategy

	// OnRun is called for every final run with its source range (composed)
	// or destination range (propagate) and the run's minimum location.
	OnRun func(run Range, low uint64)

	// Composed, when set, stands in for Compose() under StrategyComposed.
	Composed *category.Category

	err error
}

// DefaultOptions returns StrategyComposed with a no-op OnRun.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyComposed,
		OnRun:    func(Range, uint64) {},
	}
}

// WithStrategy selects the evaluation strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if _, ok := strategyNames[s]; !ok {
			o.err = fmt.Errorf("WithStrategy: %v: %w", s, ErrOptionViolation)
			return
		}
		o.Strategy = s
	}
}

// WithOnRun registers an observer for the runs a query reduces over.
// A nil fn is ignored.
func WithOnRun(fn func(run Range, low uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRun = fn
		}
	}
}

// WithComposed hands MinimumOverRanges a category already built by
// Compose on the same pipeline, so the composed strategy does not merge
// the stages again. A nil c is ignored.
func WithComposed(c *category.Category) Option {
	return func(o *Options) {
		if c != nil {
			o.Composed = c
		}
	}
}
