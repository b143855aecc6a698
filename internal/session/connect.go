package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/obops/obadmin/internal/adapter"
	"github.com/obops/obadmin/internal/prompt"
)

// ConnectDefaults are the stated defaults for the connection prompts,
// sourced from configuration.
type ConnectDefaults struct {
	Driver   string
	Host     string
	Port     int
	Cluster  string
	User     string
	Password string
	Database string
}

// PromptConnection collects connection parameters interactively. For the
// mysql driver it synthesizes the OceanBase sys-tenant user string
// user@sys#cluster from the base user and cluster name, offering it as the
// username default.
func PromptConnection(in prompt.LineReader, d ConnectDefaults) (adapter.Config, error) {
	cfg := adapter.Config{Type: d.Driver}

	if d.Driver == "sqlite" {
		path, err := prompt.WithDefault(in, "Database file", d.Database)
		if err != nil {
			return cfg, err
		}
		cfg.Database = path
		return cfg, nil
	}

	host, err := prompt.WithDefault(in, "Host", d.Host)
	if err != nil {
		return cfg, err
	}
	cfg.Host = host

	portStr, err := prompt.WithDefault(in, "Port", strconv.Itoa(d.Port))
	if err != nil {
		return cfg, err
	}
	port, convErr := strconv.Atoi(portStr)
	if convErr != nil || port <= 0 {
		port = d.Port
	}
	cfg.Port = port

	userDefault := d.User
	if d.Driver == "mysql" {
		cluster, err := prompt.WithDefault(in, "Cluster name", d.Cluster)
		if err != nil {
			return cfg, err
		}
		base, err := prompt.WithDefault(in, "Base user (joined into the sys tenant string)", d.User)
		if err != nil {
			return cfg, err
		}
		userDefault = fmt.Sprintf("%s@sys#%s", base, cluster)
	}
	user, err := prompt.WithDefault(in, "Username", userDefault)
	if err != nil {
		return cfg, err
	}
	cfg.User = user

	mask := strings.Repeat("*", min(6, len(d.Password)))
	pwd, err := in.ReadPassword(fmt.Sprintf("Password [%s]: ", mask))
	if err != nil {
		return cfg, err
	}
	pwd = strings.TrimSpace(pwd)
	if pwd == "" {
		pwd = d.Password
	}
	cfg.Password = pwd

	db, err := prompt.WithDefault(in, "Database", d.Database)
	if err != nil {
		return cfg, err
	}
	cfg.Database = db

	return cfg, nil
}
