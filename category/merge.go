package category

import "math"

// domainEnd is the exclusive end of the walked domain. No interval can cover
// math.MaxUint64 (ends are exclusive), so that value is identity in every
// category and needs no piece of its own.
const domainEnd = math.MaxUint64

// Merge composes first and second into one category equivalent to applying
// first, then second:
//
//	Merge(first, second).FindDestination(x) == second.FindDestination(first.FindDestination(x))
//
// for every x in uint64. Merge is not commutative.
//
// Algorithm:
//  1. Walk first over the whole domain [0, MaxUint64) as a worklist of
//     pieces: its intervals and the identity gaps between them. Each piece
//     is an owned value whose front is consumed; no input is mutated.
//  2. Push every piece's image through second.Segments, which splits it at
//     second's interval boundaries. A run inside a second interval takes
//     that interval's offset; a run in a gap keeps the first-stage image.
//  3. Translate each run back to source coordinates and emit it.
//  4. Drop emitted pieces that map onto themselves (they are implicit
//     identity) and, unless WithoutCoalesce, join a piece with its
//     predecessor when both sides continue seamlessly.
//
// The output is sorted by SourceStart and non-overlapping because pieces
// are emitted in strictly increasing source order.
//
// Complexity: O((n+1)·log m + k) time and O(k) space for n = first.Len(),
// m = second.Len() and k emitted pieces. k is bounded by the number of
// intervals, never by the magnitude of the values.
func Merge(first, second *Category, opts ...MergeOption) *Category {
	o := DefaultMergeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Name == "" && first.Name() != "" && second.Name() != "" {
		o.Name = first.Name() + "+" + second.Name()
	}

	m := merger{second: second, opts: o}
	m.out = make([]Interval, 0, first.Len()+second.Len())

	var cursor uint64
	for i := 0; i < first.Len(); i++ {
		iv := first.intervals[i]
		if cursor < iv.SourceStart {
			m.push(piece{src: cursor, dst: cursor, n: iv.SourceStart - cursor})
		}
		m.push(piece{src: iv.SourceStart, dst: iv.DestinationStart, n: iv.Len(), mapped: true})
		cursor = iv.SourceEnd
	}
	if cursor < domainEnd {
		m.push(piece{src: cursor, dst: cursor, n: domainEnd - cursor})
	}

	return &Category{name: o.Name, intervals: m.out}
}

// piece is a run of source values [src, src+n) that the first category maps
// onto [dst, dst+n).
type piece struct {
	src, dst, n uint64
	mapped      bool
}

// merger holds the output and settings of one Merge call.
type merger struct {
	second *Category
	opts   MergeOptions
	out    []Interval
}

// push splits p by second's boundaries and emits every run.
func (m *merger) push(p piece) {
	m.second.Segments(p.dst, p.dst+p.n, func(seg Segment) {
		src := p.src + (seg.Start - p.dst)
		n := seg.End - seg.Start
		m.emit(Piece{
			Interval: Interval{
				SourceStart:      src,
				SourceEnd:        src + n,
				DestinationStart: seg.Destination,
				DestinationEnd:   seg.Destination + n,
			},
			ViaFirst:  p.mapped,
			ViaSecond: seg.Mapped,
		})
	})
}

func (m *merger) emit(pc Piece) {
	m.opts.OnPiece(pc)

	iv := pc.Interval
	if iv.IsIdentity() {
		return
	}
	if last := len(m.out) - 1; m.opts.Coalesce && last >= 0 && m.out[last].continues(iv) {
		m.out[last].SourceEnd = iv.SourceEnd
		m.out[last].DestinationEnd = iv.DestinationEnd

		return
	}
	m.out = append(m.out, iv)
}

// Compose folds Merge over categories left to right, i.e. the result applies
// categories[0] first. An empty list yields the identity category.
func Compose(categories []*Category, opts ...MergeOption) *Category {
	if len(categories) == 0 {
		return Identity("")
	}
	acc := categories[0]
	for _, next := range categories[1:] {
		acc = Merge(acc, next, opts...)
	}

	return acc
}
