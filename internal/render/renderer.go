package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/obops/obadmin/internal/result"
)

// Renderer turns a result set into terminal output. Width is consulted once
// per horizontal render; tests substitute a fixed-width function.
type Renderer struct {
	Policy     WidthPolicy
	MaxColumns int
	Width      func() int
}

// NewRenderer returns a renderer with stock policy reading the real terminal.
func NewRenderer() *Renderer {
	return &Renderer{
		Policy:     DefaultWidthPolicy(),
		MaxColumns: DefaultMaxColumns,
		Width:      func() int { return TerminalWidth(DefaultFallbackWidth) },
	}
}

// Decide picks the layout for set under this renderer's column threshold.
func (r *Renderer) Decide(set *result.Set) Layout {
	return Decide(set, r.MaxColumns)
}

// Render writes set in the given layout. An empty set prints a "no results"
// indicator without touching width or layout machinery. A horizontal render
// failure degrades to the vertical view of the same data instead of aborting.
func (r *Renderer) Render(w io.Writer, set *result.Set, layout Layout) {
	if len(set.Rows) == 0 {
		fmt.Fprintln(w, "(no results)")
		return
	}
	if layout == LayoutHorizontal {
		err := r.Horizontal(w, set)
		if err == nil {
			return
		}
		fmt.Fprintf(w, "(grid render failed: %v; falling back to vertical)\n", err)
	}
	r.Vertical(w, set)
}

// Horizontal renders a bordered grid with a leading 1-based index column.
// Cells are sanitized and truncated to the uniform allocated column width.
func (r *Renderer) Horizontal(w io.Writer, set *result.Set) error {
	for i, row := range set.Rows {
		if len(row) != len(set.Headers) {
			return fmt.Errorf("row %d has %d cells, expected %d", i+1, len(row), len(set.Headers))
		}
	}

	cw := r.Policy.CellWidth(len(set.Headers), r.Width())

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetAutoIndex(true)

	header := make(table.Row, len(set.Headers))
	configs := make([]table.ColumnConfig, len(set.Headers))
	for i, h := range set.Headers {
		header[i] = h
		configs[i] = table.ColumnConfig{Number: i + 1, WidthMax: cw}
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for _, row := range set.Rows {
		out := make(table.Row, len(row))
		for i, c := range row {
			out[i] = CleanMax(c, cw)
		}
		t.AppendRow(out)
	}
	t.Render()

	fmt.Fprintf(w, "\n(%d row(s) returned)\n", len(set.Rows))
	return nil
}

// Vertical renders one record per row: a separator labeled with the 1-based
// row number, then one "header : value" line per column with headers
// right-aligned to the longest header. Values keep their line structure
// since the record view is not width-constrained.
func (r *Renderer) Vertical(w io.Writer, set *result.Set) {
	hw := 0
	for _, h := range set.Headers {
		if len(h) > hw {
			hw = len(h)
		}
	}

	for i, row := range set.Rows {
		fmt.Fprintf(w, "%s[ Row %d ]%s\n", strings.Repeat("*", 27), i+1, strings.Repeat("*", 27))
		for j, h := range set.Headers {
			val := ""
			if j < len(row) {
				val = strings.ToValidUTF8(row[j].String(), "�")
			}
			fmt.Fprintf(w, "%*s : %s\n", hw, h, val)
		}
	}
	fmt.Fprintf(w, "\n(%d row(s) returned)\n", len(set.Rows))
}
