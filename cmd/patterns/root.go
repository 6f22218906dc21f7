package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/creational/factorymethod"
	"github.com/sghaida/patterns/internal/catalog"
	"github.com/sghaida/patterns/internal/config"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string

	cfg      config.Config
	logger   *slog.Logger
	registry *catalog.MapRegistry

	dbOnce sync.Once
	db     *sqlx.DB
	dbErr  error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "patterns",
		Short: "Catalog of classic design patterns",
		Long:  "patterns lists, describes and runs small demos of the behavioral, creational and structural design patterns.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a TOML config file (overrides "+config.EnvConfigPath+")")

	root.AddCommand(newListCmd(a), newRunCmd(a), newShowCmd(a))
	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cfg, stderr)
	a.registry = buildRegistry(a)
	a.logger.Debug("config loaded", "env", cfg.Env, "patterns", a.registry.Len())
	return nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// database opens the configured SQLite database on first use.
func (a *app) database(ctx context.Context) (*sqlx.DB, error) {
	a.dbOnce.Do(func() {
		db, err := sqlx.ConnectContext(ctx, "sqlite3", a.cfg.DatabaseDSN)
		if err != nil {
			a.dbErr = fmt.Errorf("open database: %w", err)
			return
		}
		// :memory: databases live as long as their single connection.
		db.SetMaxOpenConns(1)
		if err := factorymethod.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			a.dbErr = err
			return
		}
		a.logger.Debug("database opened", "dsn", a.cfg.DatabaseDSN)
		a.db = db
	})
	return a.db, a.dbErr
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
