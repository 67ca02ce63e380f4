// Package app wires the command-line interface: flag handling, store
// setup, and one file per subcommand.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vahanalytics/internal/store"
)

var (
	dbPath  string
	verbose bool

	// RootCmd is the root command for vahanalytics.
	RootCmd = &cobra.Command{
		Use:   "vahanalytics",
		Short: "Vehicle-registration analytics for investor dashboards",
		Long: `vahanalytics ingests vehicle-registration counts (by date, category,
manufacturer), persists them in SQLite, and computes growth, market-share,
scorecard, and forecast metrics for investor reporting.

Quick Start:
  1. vahanalytics init
  2. vahanalytics generate --out data.csv
  3. vahanalytics ingest data.csv
  4. vahanalytics report scorecard

Examples:
  # Ranked YoY growth by manufacturer
  vahanalytics report growth

  # Quarter-over-quarter growth, JSON output
  vahanalytics report growth --period qoq --json

  # Market concentration for two-wheelers only
  vahanalytics report concentration --category 2W

  # Executive summary and investment themes
  vahanalytics summary

  # Keep the database in sync with a CSV feed
  vahanalytics watch data.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.vahanalytics/vahan.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// newLogger builds the process logger. Debug level when --verbose is set.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// getDBPath returns the database path, using the flag value or default.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".vahanalytics")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return filepath.Join(dir, "vahan.db"), nil
}

// openStore opens the database at the configured path.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}
	st, err := store.New(path, newLogger())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}
