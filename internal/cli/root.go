// Package cli provides the command-line interface for obadmin.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/obops/obadmin/internal/adapter"
	"github.com/obops/obadmin/internal/cli/config"
	"github.com/obops/obadmin/internal/prompt"
	"github.com/obops/obadmin/internal/render"
	"github.com/obops/obadmin/internal/session"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// ErrConnect marks a failure to establish the initial database connection,
// which exits with a distinct code.
var ErrConnect = errors.New("could not establish database connection")

// noticeDelay keeps transient notices readable before the screen clears.
const noticeDelay = 800 * time.Millisecond

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "obadmin",
		Short: "Interactive admin console for OceanBase clusters",
		Long: `obadmin is an interactive terminal session for operating an OceanBase
cluster through a reloadable menu of preconfigured and ad-hoc queries.

Connection parameters are confirmed interactively with stated defaults;
results page through the terminal and can be exported to CSV. Destructive
statements require explicit confirmation.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSession,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./obadmin.yaml)")
	rootCmd.Flags().String("driver", "", "database driver (mysql|postgres|sqlite)")
	rootCmd.Flags().String("host", "", "server host")
	rootCmd.Flags().Int("port", 0, "server port")
	rootCmd.Flags().String("cluster", "", "cluster name (joined into the sys tenant user string)")
	rootCmd.Flags().String("user", "", "base user name")
	rootCmd.Flags().String("database", "", "database name")
	rootCmd.Flags().String("menu", "", "menu configuration file")
	rootCmd.Flags().Int("page-size", 0, "rows per result page")
	rootCmd.Flags().Int("max-columns", 0, "column count above which results render vertically")
	rootCmd.Flags().BoolP("verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and maps errors onto process exit codes:
// 0 on a normal quit or interrupt, 2 when the initial connection cannot be
// established, 1 otherwise.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, ErrConnect) {
			return 2
		}
		return 1
	}
	return 0
}

func runSession(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if cfg.Verbose {
		if used := config.GetConfigFileUsed(); used != "" {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", used)
		}
	}

	in, err := prompt.NewReadline(historyPath(cfg.HistoryFile))
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out := cmd.OutOrStdout()
	screen := termenv.NewOutput(os.Stdout)
	clear := func() { screen.ClearScreen() }
	pause := func() { time.Sleep(noticeDelay) }

	clear()
	fmt.Fprintln(out, "OceanBase cluster admin console")
	fmt.Fprintln(out)

	connCfg, err := session.PromptConnection(in, session.ConnectDefaults{
		Driver:   cfg.Driver,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Cluster:  cfg.Cluster,
		User:     cfg.User,
		Password: cfg.Password,
		Database: cfg.Database,
	})
	if err != nil {
		return quietOnInterrupt(err)
	}

	db, err := adapter.New(connCfg.Type, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nConnecting ...")
	ctx := cmd.Context()
	if err := db.Connect(ctx, connCfg); err != nil {
		return fmt.Errorf("%w: %v", ErrConnect, err)
	}
	fmt.Fprintln(out, "Connected.")

	menuPath, err := prompt.WithDefault(in, "Menu config path", cfg.MenuPath)
	if err != nil {
		_ = db.Close()
		return quietOnInterrupt(err)
	}

	sess := &session.Session{
		Out:      out,
		In:       in,
		DB:       db,
		Logger:   logger,
		Renderer: newRenderer(cfg.Display),
		PageSize: cfg.Display.PageSize,
		MenuPath: menuPath,
		Database: connCfg.Database,
		Clear:    clear,
		Pause:    pause,
	}
	sess.ProbeVersion(ctx)
	pause()
	return sess.Run(ctx)
}

func newRenderer(d config.DisplayConfig) *render.Renderer {
	return &render.Renderer{
		Policy: render.WidthPolicy{
			MinCell:   d.MinCellWidth,
			MaxCell:   d.MaxCellWidth,
			MinUsable: render.DefaultMinUsable,
		},
		MaxColumns: d.MaxColumns,
		Width:      func() int { return render.TerminalWidth(d.FallbackWidth) },
	}
}

// historyPath resolves the readline history file, defaulting to the home
// directory so ad-hoc SQL survives across sessions.
func historyPath(configured string) string {
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".obadmin_history")
}

// quietOnInterrupt turns an interrupt or EOF during the startup prompts into
// a clean exit.
func quietOnInterrupt(err error) error {
	if errors.Is(err, prompt.ErrInterrupt) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
