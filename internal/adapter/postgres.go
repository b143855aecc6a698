package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"

	// pgx registered as a database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresAdapter connects to PostgreSQL-protocol databases through pgx.
type PostgresAdapter struct {
	BaseSQLAdapter
}

func init() {
	Register("postgres", func(logger *slog.Logger) Adapter {
		return &PostgresAdapter{BaseSQLAdapter{Logger: logger}}
	})
}

// Connect opens and verifies the connection.
func (a *PostgresAdapter) Connect(ctx context.Context, cfg Config) error {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=prefer",
		url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password),
		cfg.Host, cfg.Port, cfg.Database)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	a.DB = db
	if a.Logger != nil {
		a.Logger.Debug("connected", "driver", "postgres", "host", cfg.Host, "database", cfg.Database)
	}
	return nil
}

// DriverName returns the registered adapter name.
func (a *PostgresAdapter) DriverName() string { return "postgres" }
