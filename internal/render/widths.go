package render

// Width allocation defaults. These are tuning constants, not invariants; the
// display config may override them as long as MinCell <= MaxCell.
const (
	DefaultMinCellWidth = 10
	DefaultMaxCellWidth = 40
	DefaultMinUsable    = 40
)

// WidthPolicy distributes terminal width uniformly across columns.
type WidthPolicy struct {
	MinCell   int // lower clamp for one column
	MaxCell   int // upper clamp for one column
	MinUsable int // floor for the usable width after border overhead
}

// DefaultWidthPolicy returns the policy with the stock clamps.
func DefaultWidthPolicy() WidthPolicy {
	return WidthPolicy{
		MinCell:   DefaultMinCellWidth,
		MaxCell:   DefaultMaxCellWidth,
		MinUsable: DefaultMinUsable,
	}
}

// CellWidth computes the uniform per-column width for the given column count
// and terminal width. Borders and separators reserve three characters per
// column plus one. Every column receives the same width.
func (p WidthPolicy) CellWidth(columns, terminalWidth int) int {
	if columns < 1 {
		columns = 1
	}
	usable := terminalWidth - columns*3 - 1
	if usable < p.MinUsable {
		usable = p.MinUsable
	}
	w := usable / columns
	if w < p.MinCell {
		w = p.MinCell
	}
	if w > p.MaxCell {
		w = p.MaxCell
	}
	return w
}
