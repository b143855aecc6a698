package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
)

// connectTimeout bounds the initial dial; mid-query cancellation beyond the
// driver's own handling is deliberately out of scope.
const connectTimeout = 10 * time.Second

// MySQLAdapter connects over the MySQL wire protocol. This is the primary
// adapter: OceanBase clusters are driven through it.
type MySQLAdapter struct {
	BaseSQLAdapter
}

func init() {
	Register("mysql", func(logger *slog.Logger) Adapter {
		return &MySQLAdapter{BaseSQLAdapter{Logger: logger}}
	})
}

// Connect opens and verifies the connection.
func (a *MySQLAdapter) Connect(ctx context.Context, cfg Config) error {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.DBName = cfg.Database
	mc.Timeout = connectTimeout
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	for k, v := range cfg.Options {
		mc.Params[k] = v
	}

	db, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to open mysql connection: %w", err)
	}
	// One interactive session, one connection.
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to %s: %w", mc.Addr, err)
	}

	a.DB = db
	if a.Logger != nil {
		a.Logger.Debug("connected", "driver", "mysql", "addr", mc.Addr, "database", cfg.Database)
	}
	return nil
}

// DriverName returns the registered adapter name.
func (a *MySQLAdapter) DriverName() string { return "mysql" }
