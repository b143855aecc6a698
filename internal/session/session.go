// Package session drives the interactive menu loop: load menu, display,
// dispatch the chosen action, reload on demand, quit on request.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/obops/obadmin/internal/adapter"
	"github.com/obops/obadmin/internal/export"
	"github.com/obops/obadmin/internal/menu"
	"github.com/obops/obadmin/internal/pager"
	"github.com/obops/obadmin/internal/prompt"
	"github.com/obops/obadmin/internal/render"
	"github.com/obops/obadmin/internal/result"
)

// Session owns the menu snapshot and the single live database handle for
// the duration of one interactive run.
type Session struct {
	Out      io.Writer
	In       prompt.LineReader
	DB       adapter.Adapter
	Logger   *slog.Logger
	Renderer *render.Renderer
	PageSize int
	MenuPath string
	Database string

	// Clear clears the screen before menu and page redisplays; nil disables.
	Clear func()
	// Pause keeps a notice visible before the next clear; nil disables.
	Pause func()
	// Now supplies timestamps for export filenames; nil means time.Now.
	Now func() time.Time

	// menu is an immutable snapshot, swapped wholesale on reload.
	menu *menu.Menu
}

// Run loads the menu and loops until the user quits. The database handle is
// closed (best effort) exactly once, on every return path.
func (s *Session) Run(ctx context.Context) error {
	defer func() { _ = s.DB.Close() }()

	s.menu = s.loadMenu()
	for {
		s.clear()
		s.printMenu()

		choice, err := s.In.ReadLine("\nSelect: ")
		if err != nil {
			// Interrupt or EOF at the menu prompt is a clean quit.
			fmt.Fprintln(s.Out, "Bye.")
			return nil
		}
		choice = trimmed(choice)

		switch choice {
		case "":
			continue
		case "q", "0":
			fmt.Fprintln(s.Out, "Bye.")
			return nil
		case "r":
			s.menu = s.loadMenu()
			s.notice("Menu reloaded.")
		default:
			item, ok := s.menu.Lookup(choice)
			if !ok {
				s.notice("Invalid selection.")
				continue
			}
			s.dispatch(ctx, item)
		}
	}
}

// ProbeVersion asks the server for its version right after connecting.
// Failure is reported but never fatal.
func (s *Session) ProbeVersion(ctx context.Context) {
	out, err := s.DB.Run(ctx, "SELECT VERSION()")
	if err != nil || !out.ReturnedRows() || len(out.Rows.Rows) == 0 || len(out.Rows.Rows[0]) == 0 {
		s.logger().Debug("version probe failed", "error", err)
		return
	}
	fmt.Fprintf(s.Out, "Server version: %s\n", out.Rows.Rows[0][0].String())
}

// loadMenu runs the configuration load with its fallback chain: a readable
// document wins, anything else degrades to the built-in menu.
func (s *Session) loadMenu() *menu.Menu {
	m, err := menu.Load(s.MenuPath, s.Database, s.logger())
	if err != nil {
		s.logger().Warn("menu config unusable, using built-in menu", "path", s.MenuPath, "error", err)
		fmt.Fprintf(s.Out, "Menu config unusable (%v); using built-in menu.\n", err)
		return menu.Builtin(s.Database)
	}
	return m
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.Out, "=== Cluster Admin Menu ===")
	fmt.Fprintln(s.Out)
	for _, it := range s.menu.Items() {
		fmt.Fprintf(s.Out, "  %s. %s\n", it.Key, it.Title)
	}
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, "  r. Reload menu")
	fmt.Fprintln(s.Out, "  q. Quit")
}

// saveCSV exports the entire result set to a user-named file, defaulting to
// a timestamped name.
func (s *Session) saveCSV(set *result.Set) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	name, err := prompt.WithDefault(s.In, "Save as CSV", export.DefaultFilename(now()))
	if err != nil {
		return err
	}
	if err := export.WriteFile(name, set); err != nil {
		return err
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		abs = name
	}
	s.notice("Saved: " + abs)
	return nil
}

func (s *Session) newPager() *pager.Pager {
	return &pager.Pager{
		Out:      s.Out,
		In:       s.In,
		Renderer: s.Renderer,
		PageSize: s.PageSize,
		Save:     s.saveCSV,
		Clear:    s.Clear,
		Pause:    s.Pause,
	}
}

func (s *Session) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (s *Session) clear() {
	if s.Clear != nil {
		s.Clear()
	}
}

func (s *Session) notice(msg string) {
	fmt.Fprintln(s.Out, msg)
	if s.Pause != nil {
		s.Pause()
	}
}
