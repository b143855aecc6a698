package render

import (
	"os"

	"golang.org/x/term"
)

// DefaultFallbackWidth is used when the terminal geometry cannot be read,
// e.g. when output is piped or there is no controlling TTY.
const DefaultFallbackWidth = 120

// TerminalWidth returns the column count of the controlling terminal, or
// fallback when it cannot be determined. It never fails the caller.
func TerminalWidth(fallback int) int {
	if fallback <= 0 {
		fallback = DefaultFallbackWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
