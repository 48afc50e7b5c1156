package almanac

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/remap/category"
	"github.com/katalvlaran/remap/pipeline"
)

const (
	methodParse = "Parse"
	mapLinker   = "-to-"
	rowWidth    = 3
)

// Almanac is a parsed almanac: the seed values and the maps in file order.
type Almanac struct {
	Seeds []uint64
	Maps  []Map
}

// Map is one "<From>-to-<To> map:" block.
type Map struct {
	From     string
	To       string
	Category *category.Category
}

// Parse reads an almanac from r.
func Parse(r io.Reader) (*Almanac, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w", methodParse, err)
	}

	return parse("", string(src))
}

// ParseString parses an almanac held in memory.
func ParseString(s string) (*Almanac, error) {
	return parse("", s)
}

// ParseFile reads and parses the almanac at path. Positions in grammar
// errors carry the path.
func ParseFile(path string) (*Almanac, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodParse, err)
	}

	return parse(path, string(src))
}

// parse runs the grammar, then converts and validates what it captured:
//   - Stage 1: grammar (ErrMalformedInput).
//   - Stage 2: seeds (ErrNoSeeds, ErrMalformedInput on overflow).
//   - Stage 3: rows to intervals (*RowError), overlapping rows
//     (*OverlapError), maps to categories.
//   - Stage 4: chain check (ErrBrokenChain).
func parse(filename, src string) (*Almanac, error) {
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	g, err := almanacParser.ParseString(filename, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodParse, ErrMalformedInput, err)
	}

	if len(g.Seeds) == 0 {
		return nil, fmt.Errorf("%s: line %d: %w", methodParse, g.Pos.Line, ErrNoSeeds)
	}
	a := &Almanac{Seeds: make([]uint64, 0, len(g.Seeds)), Maps: make([]Map, 0, len(g.Maps))}
	for _, s := range g.Seeds {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: seed %q: %w: %w", methodParse, s, ErrMalformedInput, err)
		}
		a.Seeds = append(a.Seeds, v)
	}

	lines := strings.Split(src, "\n")
	for _, mg := range g.Maps {
		m, err := buildMap(mg, lines)
		if err != nil {
			return nil, err
		}
		if n := len(a.Maps); n > 0 && a.Maps[n-1].To != m.From {
			return nil, fmt.Errorf("%s: line %d: map %q follows %q: %w",
				methodParse, mg.Pos.Line, mg.Name, a.Maps[n-1].Category.Name(), ErrBrokenChain)
		}
		a.Maps = append(a.Maps, m)
	}

	return a, nil
}

// buildMap splits the header name and validates every row.
func buildMap(mg *mapGrammar, lines []string) (Map, error) {
	from, to, ok := strings.Cut(mg.Name, mapLinker)
	if !ok || from == "" || to == "" {
		return Map{}, fmt.Errorf("%s: line %d: map name %q, want <from>%s<to>: %w",
			methodParse, mg.Pos.Line, mg.Name, mapLinker, ErrMalformedInput)
	}

	ivs := make([]category.Interval, 0, len(mg.Rows))
	for _, row := range mg.Rows {
		iv, err := parseRow(row.Values)
		if err != nil {
			return Map{}, &RowError{Line: row.Pos.Line, Raw: rawLine(lines, row.Pos.Line), Err: err}
		}
		ivs = append(ivs, iv)
	}
	if err := checkOverlap(mg, ivs, lines); err != nil {
		return Map{}, err
	}
	c, err := category.New(ivs, category.WithName(mg.Name))
	if err != nil {
		return Map{}, fmt.Errorf("%s: line %d: %w", methodParse, mg.Pos.Line, err)
	}

	return Map{From: from, To: to, Category: c}, nil
}

// checkOverlap reports the first pair of rows, in source order, whose
// intervals share a source value. ivs[i] was parsed from mg.Rows[i].
func checkOverlap(mg *mapGrammar, ivs []category.Interval, lines []string) error {
	order := make([]int, len(ivs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return ivs[order[i]].SourceStart < ivs[order[j]].SourceStart
	})

	for k := 1; k < len(order); k++ {
		prev, cur := order[k-1], order[k]
		if !ivs[prev].Overlaps(ivs[cur]) {
			continue
		}
		l1, l2 := mg.Rows[prev].Pos.Line, mg.Rows[cur].Pos.Line

		return &OverlapError{
			Map:       mg.Name,
			Line:      l1,
			Raw:       rawLine(lines, l1),
			OtherLine: l2,
			OtherRaw:  rawLine(lines, l2),
			Err:       fmt.Errorf("%v and %v: %w", ivs[prev], ivs[cur], category.ErrOverlappingCategory),
		}
	}

	return nil
}

// parseRow converts a (destination, source, length) triple.
func parseRow(values []string) (category.Interval, error) {
	if len(values) != rowWidth {
		return category.Interval{}, fmt.Errorf("%d values, want %d: %w", len(values), rowWidth, category.ErrMalformedInterval)
	}
	var nums [rowWidth]uint64
	for i, s := range values {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return category.Interval{}, fmt.Errorf("%w: %w", category.ErrMalformedInterval, err)
		}
		nums[i] = v
	}

	return category.NewInterval(nums[0], nums[1], nums[2])
}

func rawLine(lines []string, line int) string {
	if line < 1 || line > len(lines) {
		return ""
	}

	return strings.TrimSpace(lines[line-1])
}

// Pipeline returns the maps in file order as a pipeline over the seeds.
func (a *Almanac) Pipeline() *pipeline.Pipeline {
	cats := make([]*category.Category, len(a.Maps))
	for i, m := range a.Maps {
		cats[i] = m.Category
	}

	return pipeline.New(a.Seeds, cats...)
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]pipeline.Range, error) {
	return pipeline.PairRanges(a.Seeds)
}
