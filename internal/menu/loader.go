package menu

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// listDocument is shape (a): {"queries": [{"title", "sql", "enabled"}, ...]}.
type listDocument struct {
	Queries []listEntry `json:"queries"`
}

type listEntry struct {
	Title   string `json:"title"`
	SQL     string `json:"sql"`
	Enabled *bool  `json:"enabled"` // absent means enabled
}

// keyedEntry is one value of shape (b): {"<key>": {"title", "type", ...}}.
type keyedEntry struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	SQL         string `json:"sql"`
	SQLTemplate string `json:"sql_template"`
	Enabled     *bool  `json:"enabled"`
}

// Load reads a menu configuration file supporting both document shapes. The
// {db} placeholder in list-form statements is substituted with database. An
// error is returned only when the document cannot be read or parsed at all;
// the caller falls back to the built-in menu in that case. A parseable keyed
// document with unusable entries yields an (almost) empty menu with warnings
// logged, plus the guaranteed free-form entry.
func Load(path, database string, log *slog.Logger) (*Menu, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu config: %w", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("failed to parse menu config %s: %w", path, err)
	}

	var items []Item
	if queries, ok := top["queries"]; ok {
		items = loadListForm(queries, database, log)
	} else {
		items = loadKeyedForm(top, log)
	}
	return New(ensureCustom(items)), nil
}

func loadListForm(queries json.RawMessage, database string, log *slog.Logger) []Item {
	var entries []listEntry
	if err := json.Unmarshal(queries, &entries); err != nil {
		log.Warn("menu list entries unusable", "error", err)
		return nil
	}

	db := database
	if db == "" {
		db = "oceanbase"
	}

	var items []Item
	for _, e := range entries {
		title := strings.TrimSpace(e.Title)
		stmt := strings.TrimSpace(e.SQL)
		if title == "" || stmt == "" {
			continue
		}
		it := Item{
			Key:     strconv.Itoa(len(items) + 1),
			Title:   title,
			Enabled: e.Enabled == nil || *e.Enabled,
		}
		if stmt == CustomSentinel {
			it.Kind = Custom
		} else {
			it.Kind = Simple
			it.Statement = strings.ReplaceAll(stmt, "{db}", db)
		}
		items = append(items, it)
	}
	return items
}

func loadKeyedForm(top map[string]json.RawMessage, log *slog.Logger) []Item {
	var items []Item
	for key, raw := range top {
		var e keyedEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			log.Warn("skipping malformed menu entry", "key", key, "error", err)
			continue
		}

		it := Item{
			Key:     key,
			Title:   strings.TrimSpace(e.Title),
			Enabled: e.Enabled == nil || *e.Enabled,
		}
		switch e.Type {
		case "", "simple":
			it.Kind = Simple
			it.Statement = strings.TrimSpace(e.SQL)
			if it.Statement == CustomSentinel {
				it.Kind = Custom
				it.Statement = ""
			}
		case "parameter_query":
			it.Kind = ParameterTemplate
			it.Template = strings.TrimSpace(e.SQLTemplate)
		default:
			log.Warn("skipping menu entry with unknown type", "key", key, "type", e.Type)
			continue
		}
		if it.Title == "" || (it.Kind == Simple && it.Statement == "") ||
			(it.Kind == ParameterTemplate && it.Template == "") {
			log.Warn("skipping incomplete menu entry", "key", key)
			continue
		}
		items = append(items, it)
	}
	return items
}

// ensureCustom guarantees the menu carries a free-form entry. The injected
// key continues the numeric sequence when every existing key is numeric, so
// the snapshot keeps numeric ordering.
func ensureCustom(items []Item) []Item {
	for _, it := range items {
		if it.Kind == Custom {
			return items
		}
	}
	key := "c"
	allNumeric, maxKey := true, 0
	for _, it := range items {
		n, err := strconv.Atoi(it.Key)
		if err != nil {
			allNumeric = false
			break
		}
		if n > maxKey {
			maxKey = n
		}
	}
	if allNumeric {
		key = strconv.Itoa(maxKey + 1)
	}
	return append(items, Item{
		Key:     key,
		Title:   "Custom SQL (manual input)",
		Kind:    Custom,
		Enabled: true,
	})
}
