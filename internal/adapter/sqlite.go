package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	// sqlite registered as a database/sql driver.
	_ "modernc.org/sqlite"
)

// SQLiteAdapter opens a local sqlite file. Useful for poking at a database
// without a running cluster.
type SQLiteAdapter struct {
	BaseSQLAdapter
}

func init() {
	Register("sqlite", func(logger *slog.Logger) Adapter {
		return &SQLiteAdapter{BaseSQLAdapter{Logger: logger}}
	})
}

// Connect opens the database file named by cfg.Database (":memory:" works).
func (a *SQLiteAdapter) Connect(ctx context.Context, cfg Config) error {
	path := cfg.Database
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	a.DB = db
	if a.Logger != nil {
		a.Logger.Debug("connected", "driver", "sqlite", "path", path)
	}
	return nil
}

// DriverName returns the registered adapter name.
func (a *SQLiteAdapter) DriverName() string { return "sqlite" }
