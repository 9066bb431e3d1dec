// Package normalize turns the untyped cell grid read from an uploaded
// spreadsheet into a structured invoice record. The grid layout is never
// validated; rows are matched by positional heuristics and every missing
// or malformed field degrades to a documented default.
package normalize

import (
	"strconv"
	"strings"
)

// Grid is a row-oriented sequence of cell values as delivered by the
// spreadsheet reader. Cells are plain strings; numeric content is parsed
// lazily at extraction time.
type Grid [][]string

// Cell returns the trimmed value at (row, col), or "" when the
// coordinate is out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// stringOr substitutes def for a blank cell value.
func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// floatOr parses v as a float, falling back to def when the cell is
// empty or unparseable. This is the only numeric leniency point.
func floatOr(v string, def float64) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// floatPtr parses v into an optional float. nil means the value was
// absent or unparseable, which callers treat as "not supplied".
func floatPtr(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func isNumeric(v string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil
}
