package render

import (
	"strings"

	"github.com/obops/obadmin/internal/result"
)

// Layout selects how a result set is rendered. The decision is made once per
// set and applies to every page of it.
type Layout int

const (
	// LayoutHorizontal renders a bordered grid, one line per row.
	LayoutHorizontal Layout = iota
	// LayoutVertical renders one labeled record per row, one line per column.
	LayoutVertical
)

// DefaultMaxColumns is the column count above which the grid degrades and
// the record view takes over.
const DefaultMaxColumns = 10

// Decide picks the layout for a result set: vertical when the set is wider
// than maxColumns, or when any cell's raw text contains a line feed. The row
// scan stops at the first match.
func Decide(set *result.Set, maxColumns int) Layout {
	if maxColumns <= 0 {
		maxColumns = DefaultMaxColumns
	}
	if len(set.Headers) > maxColumns {
		return LayoutVertical
	}
	for _, row := range set.Rows {
		for _, c := range row {
			if strings.ContainsRune(c.String(), '\n') {
				return LayoutVertical
			}
		}
	}
	return LayoutHorizontal
}
