package render

import (
	"strings"

	"github.com/obops/obadmin/internal/result"
)

// Ellipsis marks a truncated cell. It counts as one rune toward the limit.
const Ellipsis = "…"

var controlReplacer = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ")

// Clean converts a cell into safely printable text: null becomes the empty
// string, carriage returns, line feeds and tabs become spaces, whitespace
// runs collapse to a single space, and invalid UTF-8 is replaced lossily.
func Clean(c result.Cell) string {
	if c.IsNull() {
		return ""
	}
	s := strings.ToValidUTF8(c.String(), "�")
	s = controlReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// CleanMax sanitizes like Clean and additionally truncates the result to at
// most max runes, the last of which is the ellipsis marker. A max of zero or
// less means no limit.
func CleanMax(c result.Cell, max int) string {
	s := Clean(c)
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + Ellipsis
}
