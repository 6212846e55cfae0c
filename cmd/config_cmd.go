package cmd

import (
	"fmt"

	"github.com/theirongolddev/riskdash/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	orNotSet := func(s string) string {
		if s == "" {
			return "not set"
		}
		return s
	}

	fmt.Println("  [General]")
	fmt.Printf("    Dataset file: %s\n", orNotSet(cfg.General.DatasetFile))
	fmt.Printf("    Dataset DB:   %s\n", orNotSet(cfg.General.DatasetDB))
	fmt.Printf("    Dataset name: %s\n", orNotSet(cfg.General.DatasetName))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level:  %s\n", cfg.Logging.Level)
	fmt.Printf("    Format: %s\n", cfg.Logging.Format)
	fmt.Printf("    File:   %s\n", orNotSet(cfg.Logging.File))
	fmt.Println()

	fmt.Printf("  Environment overrides: %s, %s, %s\n",
		config.EnvDatasetDB, config.EnvDatasetFile, config.EnvLogLevel)
	fmt.Println("  Run `riskdash setup` to reconfigure.")
	return nil
}
