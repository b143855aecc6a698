// Package adapter provides database adapters for the admin session. Each
// adapter wraps database/sql for one driver and executes statements on a
// single live connection handle.
package adapter

import (
	"context"
	"strings"

	"github.com/obops/obadmin/internal/result"
)

// Config holds the parameters for connecting to a database.
type Config struct {
	// Type specifies the adapter (e.g. "mysql", "postgres", "sqlite").
	Type string

	// Host is the hostname for network databases.
	Host string

	// Port is the port number for network databases.
	Port int

	// User for authentication. For OceanBase this is the full
	// user@tenant#cluster string.
	User string

	// Password for authentication.
	Password string

	// Database is the database/schema name, or the file path for sqlite.
	Database string

	// Options contains additional driver-specific parameters.
	Options map[string]string
}

// Outcome is the two-case result of executing one statement: either a
// result set was returned, or some number of rows was affected. The case is
// decided by the statement's classification before execution, never by
// catching a driver error.
type Outcome struct {
	Rows     *result.Set
	Affected int64
}

// ReturnedRows reports whether the statement produced a result set.
func (o *Outcome) ReturnedRows() bool { return o.Rows != nil }

// Adapter is the opaque database handle the session operates through.
type Adapter interface {
	// Connect establishes the connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection and releases resources.
	Close() error

	// Run executes one statement and returns its outcome.
	Run(ctx context.Context, stmt string) (*Outcome, error)

	// DriverName returns the adapter's registered name.
	DriverName() string
}

// rowVerbs are the leading keywords of statements that return result sets.
var rowVerbs = map[string]bool{
	"select":   true,
	"show":     true,
	"desc":     true,
	"describe": true,
	"explain":  true,
	"with":     true,
	"values":   true,
	"table":    true,
	"pragma":   true,
}

// ReturnsRows classifies a statement by its leading keyword.
func ReturnsRows(stmt string) bool {
	fields := strings.Fields(stmt)
	if len(fields) == 0 {
		return false
	}
	return rowVerbs[strings.ToLower(fields[0])]
}
