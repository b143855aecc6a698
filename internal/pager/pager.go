// Package pager slices a result set into pages and drives the interactive
// paging loop.
package pager

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/obops/obadmin/internal/prompt"
	"github.com/obops/obadmin/internal/render"
	"github.com/obops/obadmin/internal/result"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 20

// PageCount returns ceil(total / size).
func PageCount(total, size int) int {
	if size < 1 {
		size = 1
	}
	return (total + size - 1) / size
}

// PageBounds returns the [start, end) row window of a page.
func PageBounds(page, size, total int) (start, end int) {
	start = page * size
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}

// Pager owns one paging session over one result set. The layout decision is
// computed once for the whole set and reused for every page.
type Pager struct {
	Out      io.Writer
	In       prompt.LineReader
	Renderer *render.Renderer
	PageSize int

	// Save exports the entire result set, not just the current page.
	Save func(set *result.Set) error

	// Clear clears prior output before each page render.
	Clear func()

	// Pause keeps a notice visible before the next clear wipes it.
	Pause func()
}

func (p *Pager) notice(msg string) {
	fmt.Fprintln(p.Out, msg)
	if p.Pause != nil {
		p.Pause()
	}
}

// Run pages through set until the user quits. Interrupt or EOF on the paging
// prompt returns control to the caller like quit does.
func (p *Pager) Run(set *result.Set) {
	if len(set.Rows) == 0 {
		fmt.Fprintln(p.Out, "(no results)")
		return
	}

	size := p.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	layout := p.Renderer.Decide(set)
	total := len(set.Rows)
	page := 0

	for {
		if p.Clear != nil {
			p.Clear()
		}
		start, end := PageBounds(page, size, total)
		fmt.Fprintf(p.Out, "Rows %d-%d / %d\n\n", start+1, end, total)
		p.Renderer.Render(p.Out, set.Slice(start, end), layout)
		fmt.Fprintln(p.Out, "\n[n] next  [p] previous  [s] save CSV  [q] back to menu")

		line, err := p.In.ReadLine("> ")
		if err != nil {
			if errors.Is(err, prompt.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintf(p.Out, "input error: %v\n", err)
			return
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "n":
			if end >= total {
				p.notice("Already on the last page.")
			} else {
				page++
			}
		case "p":
			if page == 0 {
				p.notice("Already on the first page.")
			} else {
				page--
			}
		case "s":
			if p.Save != nil {
				if err := p.Save(set); err != nil {
					p.notice(fmt.Sprintf("Save failed: %v", err))
				}
			}
		case "q":
			return
		default:
			p.notice("Invalid command.")
		}
	}
}
