// Package render writes categories, traces and query results for the CLI:
// go-pretty tables, YAML documents, plain almanac rows and colored summaries.
package render

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/remap/category"
)

// yamlIndent is the indentation of YAML output.
const yamlIndent = 2

// Table writes one row per interval with its length and signed offset,
// followed by a footer with the interval count and the covered length.
func Table(w io.Writer, c *category.Category) error {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "Source", "Destination", "Length", "Offset"})

	var covered uint64
	for i, iv := range c.Intervals() {
		tbl.AppendRow(table.Row{
			i,
			fmt.Sprintf("[%s, %s)", comma(iv.SourceStart), comma(iv.SourceEnd)),
			fmt.Sprintf("[%s, %s)", comma(iv.DestinationStart), comma(iv.DestinationEnd)),
			comma(iv.Len()),
			offset(iv),
		})
		covered += iv.Len()
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d intervals", c.Len()), "", comma(covered), ""})

	title := c.Name()
	if title == "" {
		title = "category"
	}
	_, err := fmt.Fprintf(w, "%s:\n%s\n", title, tbl.Render())

	return err
}

// Traces writes one row per traced value. header names the columns, usually
// "seed" followed by each stage's destination kind.
func Traces(w io.Writer, header []string, traces [][]uint64) error {
	tbl := newTable()
	row := make(table.Row, len(header))
	for i, h := range header {
		row[i] = h
	}
	tbl.AppendHeader(row)

	for _, tr := range traces {
		values := make(table.Row, len(tr))
		for i, v := range tr {
			values[i] = comma(v)
		}
		tbl.AppendRow(values)
	}
	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}

type categoryDoc struct {
	Name      string        `yaml:"name,omitempty"`
	Intervals []intervalDoc `yaml:"intervals"`
}

// intervalDoc uses the almanac triple order.
type intervalDoc struct {
	Destination uint64 `yaml:"destination"`
	Source      uint64 `yaml:"source"`
	Length      uint64 `yaml:"length"`
}

// YAML writes the category as a YAML document.
func YAML(w io.Writer, c *category.Category) error {
	doc := categoryDoc{Name: c.Name(), Intervals: make([]intervalDoc, 0, c.Len())}
	for _, iv := range c.Intervals() {
		doc.Intervals = append(doc.Intervals, intervalDoc{
			Destination: iv.DestinationStart,
			Source:      iv.SourceStart,
			Length:      iv.Len(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// Text writes the category as almanac rows ("destination source length"),
// preceded by a "# name" comment when the category is named. The rows can
// be pasted under any map header.
func Text(w io.Writer, c *category.Category) error {
	if c.Name() != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", c.Name()); err != nil {
			return err
		}
	}
	for _, iv := range c.Intervals() {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", iv.DestinationStart, iv.SourceStart, iv.Len()); err != nil {
			return err
		}
	}

	return nil
}

// Result is what the solve command reports.
type Result struct {
	Seeds        int
	Stages       int
	Composed     int // intervals in the composed category
	Strategy     string
	LowestSeed   uint64
	LowestRange  uint64
	RangesFailed error // set when the seeds do not form (start, length) pairs
}

// Summary writes a labelled, colored result block. Colors follow
// color.NoColor, which fatih/color disables on non-terminals.
func Summary(w io.Writer, r Result) error {
	label := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	lines := []struct {
		name string
		val  string
	}{
		{"seeds", strconv.Itoa(r.Seeds)},
		{"stages", strconv.Itoa(r.Stages)},
		{"composed intervals", humanize.Comma(int64(r.Composed))},
		{"strategy", r.Strategy},
		{"lowest location (seeds)", comma(r.LowestSeed)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s %s\n", label.Sprintf("%-26s", l.name+":"), value.Sprint(l.val)); err != nil {
			return err
		}
	}

	name := label.Sprintf("%-26s", "lowest location (ranges):")
	if r.RangesFailed != nil {
		_, err := fmt.Fprintf(w, "%s %s\n", name, warn.Sprint(r.RangesFailed.Error()))
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s\n", name, value.Sprint(comma(r.LowestRange)))

	return err
}

// comma groups digits with commas for the whole uint64 range.
func comma(v uint64) string {
	if v <= math.MaxInt64 {
		return humanize.Comma(int64(v))
	}

	return humanize.BigComma(new(big.Int).SetUint64(v))
}

// offset renders DestinationStart-SourceStart with an explicit sign.
func offset(iv category.Interval) string {
	if iv.DestinationStart >= iv.SourceStart {
		return "+" + comma(iv.DestinationStart-iv.SourceStart)
	}

	return "-" + comma(iv.SourceStart-iv.DestinationStart)
}
