// Package config provides configuration management for the obadmin CLI.
package config

import (
	"github.com/obops/obadmin/internal/pager"
	"github.com/obops/obadmin/internal/render"
)

// Config holds all CLI configuration options. Values are prompt defaults;
// the session confirms connection parameters interactively.
type Config struct {
	Driver      string        `koanf:"driver"`
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Cluster     string        `koanf:"cluster"`
	User        string        `koanf:"user"`
	Password    string        `koanf:"password"`
	Database    string        `koanf:"database"`
	MenuPath    string        `koanf:"menu"`
	HistoryFile string        `koanf:"history_file"`
	Verbose     bool          `koanf:"verbose"`
	Display     DisplayConfig `koanf:"display"`
}

// DisplayConfig carries the presentation tuning knobs. The bounds are
// tuning constants preserved from long-standing defaults, not invariants.
type DisplayConfig struct {
	PageSize      int `koanf:"page_size"`
	MaxColumns    int `koanf:"max_columns"`
	MinCellWidth  int `koanf:"min_cell_width"`
	MaxCellWidth  int `koanf:"max_cell_width"`
	FallbackWidth int `koanf:"fallback_width"`
}

// Default configuration values.
const (
	DefaultDriver   = "mysql"
	DefaultHost     = "127.0.0.1"
	DefaultPort     = 2883
	DefaultCluster  = "obcluster"
	DefaultUser     = "root"
	DefaultDatabase = "oceanbase"
	DefaultMenuPath = "queries.json"
)

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"driver":                 DefaultDriver,
		"host":                   DefaultHost,
		"port":                   DefaultPort,
		"cluster":                DefaultCluster,
		"user":                   DefaultUser,
		"password":               "",
		"database":               DefaultDatabase,
		"menu":                   DefaultMenuPath,
		"history_file":           "",
		"verbose":                false,
		"display.page_size":      pager.DefaultPageSize,
		"display.max_columns":    render.DefaultMaxColumns,
		"display.min_cell_width": render.DefaultMinCellWidth,
		"display.max_cell_width": render.DefaultMaxCellWidth,
		"display.fallback_width": render.DefaultFallbackWidth,
	}
}
