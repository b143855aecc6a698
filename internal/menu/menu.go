// Package menu holds the reloadable query-menu definition. A load produces
// an immutable snapshot; reloading swaps the whole snapshot, never mutating
// items in place.
package menu

import (
	"sort"
	"strconv"
)

// Kind is the closed set of menu item behaviors.
type Kind int

const (
	// Simple executes its statement as-is.
	Simple Kind = iota
	// ParameterTemplate prompts for one value and substitutes it into the
	// statement template before executing.
	ParameterTemplate
	// Custom reads free-form statement text from the user.
	Custom
)

// CustomSentinel marks the free-form entry in list-form configuration files.
const CustomSentinel = "__CUSTOM__"

// Placeholder is the substitution marker in parameter templates.
const Placeholder = "{query}"

// Item is one selectable query definition.
type Item struct {
	Key       string
	Title     string
	Kind      Kind
	Statement string // Simple
	Template  string // ParameterTemplate, containing one Placeholder
	Enabled   bool
}

// Menu is an immutable snapshot of items ordered by key.
type Menu struct {
	items []Item
}

// New builds a snapshot with items sorted by key: numerically when every key
// parses as an integer, lexically otherwise.
func New(items []Item) *Menu {
	sorted := make([]Item, len(items))
	copy(sorted, items)

	numeric := true
	for _, it := range sorted {
		if _, err := strconv.Atoi(it.Key); err != nil {
			numeric = false
			break
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if numeric {
			a, _ := strconv.Atoi(sorted[i].Key)
			b, _ := strconv.Atoi(sorted[j].Key)
			return a < b
		}
		return sorted[i].Key < sorted[j].Key
	})
	return &Menu{items: sorted}
}

// Items returns the enabled items in display order.
func (m *Menu) Items() []Item {
	out := make([]Item, 0, len(m.items))
	for _, it := range m.items {
		if it.Enabled {
			out = append(out, it)
		}
	}
	return out
}

// Lookup returns the enabled item with the given key.
func (m *Menu) Lookup(key string) (Item, bool) {
	for _, it := range m.items {
		if it.Enabled && it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

// HasCustom reports whether any enabled item is the free-form entry.
func (m *Menu) HasCustom() bool {
	for _, it := range m.items {
		if it.Enabled && it.Kind == Custom {
			return true
		}
	}
	return false
}
