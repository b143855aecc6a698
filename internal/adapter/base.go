package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/obops/obadmin/internal/result"
)

// BaseSQLAdapter provides common database/sql functionality. Concrete
// adapters embed it to get standard Close and Run implementations.
type BaseSQLAdapter struct {
	DB     *sql.DB
	Logger *slog.Logger
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool {
	return b.DB != nil
}

// Run executes one statement. Statements classified as row-returning go
// through Query and yield a materialized result set; everything else goes
// through Exec and yields an affected-row count.
func (b *BaseSQLAdapter) Run(ctx context.Context, stmt string) (*Outcome, error) {
	if b.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	if ReturnsRows(stmt) {
		rows, err := b.DB.QueryContext(ctx, stmt)
		if err != nil {
			return nil, fmt.Errorf("failed to execute query: %w", err)
		}
		defer func() { _ = rows.Close() }()

		set, err := result.FromSQLRows(rows)
		if err != nil {
			return nil, err
		}
		return &Outcome{Rows: set}, nil
	}

	res, err := b.DB.ExecContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute statement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		// Some drivers cannot report a count; the statement still succeeded.
		affected = 0
	}
	return &Outcome{Affected: affected}, nil
}
