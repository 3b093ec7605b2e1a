package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/hoopmetrics/internal/config"
	"github.com/pable/hoopmetrics/internal/log"
	"github.com/pable/hoopmetrics/internal/storage"
)

var (
	dbPath     string
	configPath string
	logLevel   string

	cfg      *config.Config
	closeLog = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "hoopmetrics",
	Short: "Basketball possession metrics tool",
	Long:  "Import possession-by-possession basketball game logs and compute team and player box scores.",

	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { closeLog() },
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (default ~/.hoopmetrics/games.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(boxCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(possessionsCmd)
	rootCmd.AddCommand(facetsCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(sqlCmd)
}

// setup loads configuration, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	cfg = c

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	closer, err := log.Setup(os.Stderr, level, cfg.LogFile)
	if err != nil {
		return err
	}
	closeLog = closer
	slog.Debug("Config loaded", slog.String("db", cfg.DBPath), slog.String("level", string(level)))
	return nil
}

// openStore opens the configured database, creating its directory if needed.
func openStore() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}
