// Package cmd implements the riskdash CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/theirongolddev/riskdash/internal/cli"
	"github.com/theirongolddev/riskdash/internal/config"
	"github.com/theirongolddev/riskdash/internal/logging"
	"github.com/theirongolddev/riskdash/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagDatasetFile string
	flagDatasetDB   string
	flagDatasetName string
	flagLogLevel    string
	flagQuiet       bool
)

// cfg is the loaded configuration with flag overrides applied.
var cfg config.Config

// closeLog releases the log file opened in PersistentPreRunE, if any.
var closeLog = func() error { return nil }

var rootCmd = &cobra.Command{
	Use:   "riskdash",
	Short: "Loan risk dashboard",
	Long:  "Score loan applicants with a linear risk model and review portfolio performance.",
	RunE:  runSummary,

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		}
		cfg = applyFlags(loaded)

		// The TUI owns the terminal; its logs go to a file or nowhere.
		var w io.Writer = os.Stderr
		if cmd.Name() == tuiCmd.Name() {
			w = io.Discard
		}
		_, closer, err := logging.Init(cfg.Logging, w)
		if err != nil {
			return err
		}
		closeLog = closer
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeLog()
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDatasetFile, "dataset-file", "f", "", "TOML portfolio dataset file")
	rootCmd.PersistentFlags().StringVar(&flagDatasetDB, "dataset-db", "", "SQLite dataset store")
	rootCmd.PersistentFlags().StringVar(&flagDatasetName, "dataset", "", "Dataset name within the store")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// applyFlags lets persistent flags override the configuration.
func applyFlags(c config.Config) config.Config {
	if flagDatasetFile != "" {
		c.General.DatasetFile = flagDatasetFile
	}
	if flagDatasetDB != "" {
		c.General.DatasetDB = flagDatasetDB
	}
	if flagDatasetName != "" {
		c.General.DatasetName = flagDatasetName
	}
	if flagLogLevel != "" {
		c.Logging.Level = flagLogLevel
	}
	return c
}

func datasetOptions() pipeline.DatasetOptions {
	return pipeline.DatasetOptions{
		DBPath: cfg.General.DatasetDB,
		Name:   cfg.General.DatasetName,
		File:   cfg.General.DatasetFile,
	}
}

// loadDataset is the shared dataset loading path used by all commands.
func loadDataset() *pipeline.LoadResult {
	result := pipeline.LoadDataset(datasetOptions())
	if flagQuiet {
		return result
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, cli.RenderWarning(w))
	}
	if result.Location != "" {
		fmt.Fprintf(os.Stderr, "  Dataset %q from %s %s\n", result.Dataset.Name, result.Source, result.Location)
	} else {
		slog.Debug("using built-in sample dataset")
	}
	return result
}
