// Package almanac reads the textual almanac format into seeds and named
// categories, and turns the result into a pipeline.
//
// Format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	0 15 37
//	…
//
// Every row is a (destination start, source start, length) triple. Blank
// lines, '#' comments and CRLF line endings are accepted. Map headers are
// "<from>-to-<to> map:" and consecutive maps must chain: the To of one map
// is the From of the next.
//
// The grammar is built with participle; rows are validated afterwards so a
// bad row reports its line and raw text (see RowError).
package almanac
