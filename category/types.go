// Package category defines intervals, categories and the options that tune
// construction and composition.
package category

// Interval maps the half-open source range [SourceStart, SourceEnd) onto the
// destination range [DestinationStart, DestinationEnd) of the same length.
// Every x in the source range maps to DestinationStart + (x - SourceStart).
type Interval struct {
	SourceStart      uint64
	SourceEnd        uint64
	DestinationStart uint64
	DestinationEnd   uint64
}

// Segment is one run of a walked range that maps through a single offset.
//
//   - [Start, End)  - the source values of the run.
//   - Destination   - the image of Start; the run maps onto
//     [Destination, Destination+(End-Start)).
//   - Mapped        - false when the run lies in a gap (identity).
type Segment struct {
	Start       uint64
	End         uint64
	Destination uint64
	Mapped      bool
}

// Piece is reported to a WithOnPiece observer for every sub-range Merge
// produces, before identity pieces are dropped and neighbours coalesced.
//
//   - Interval     - the composed mapping of the piece.
//   - ViaFirst     - the first category moved the piece (false: identity gap).
//   - ViaSecond    - the second category moved the piece (false: identity gap).
type Piece struct {
	Interval  Interval
	ViaFirst  bool
	ViaSecond bool
}

// Category is an immutable, sorted, non-overlapping set of intervals with
// identity on every value no interval covers. Build one with New.
type Category struct {
	name      string
	intervals []Interval
}

// Option configures New.
type Option func(*categoryOptions)

type categoryOptions struct {
	name string
}

// WithName labels the category (e.g. "seed-to-soil"). The name only shows up
// in String, error messages and renderers.
func WithName(name string) Option {
	return func(o *categoryOptions) {
		o.name = name
	}
}

// MergeOption configures Merge.
type MergeOption func(*MergeOptions)

// MergeOptions holds the knobs of a single Merge call.
//
//   - Name      - name of the composed category; defaults to "<first>+<second>"
//     when both inputs are named, else empty.
//   - OnPiece   - observer for every raw composed piece, in source order.
//   - Coalesce  - join adjacent pieces sharing one offset (default true).
type MergeOptions struct {
	Name     string
	OnPiece  func(Piece)
	Coalesce bool
}

// DefaultMergeOptions returns the options Merge starts from: no name,
// a no-op observer and coalescing enabled.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{
		Name:     "",
		OnPiece:  func(Piece) {},
		Coalesce: true,
	}
}

// WithMergeName names the composed category.
func WithMergeName(name string) MergeOption {
	return func(o *MergeOptions) {
		o.Name = name
	}
}

// WithOnPiece registers an observer called once per composed piece.
// A nil fn is ignored.
func WithOnPiece(fn func(Piece)) MergeOption {
	return func(o *MergeOptions) {
		if fn != nil {
			o.OnPiece = fn
		}
	}
}

// WithoutCoalesce keeps adjacent pieces with a shared offset as separate
// intervals. Lookups are unaffected; only the representation grows.
func WithoutCoalesce() MergeOption {
	return func(o *MergeOptions) {
		o.Coalesce = false
	}
}
