package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/riskdash/internal/config"
	"github.com/theirongolddev/riskdash/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file alone so flag and env overrides are not persisted.
	base, err := config.LoadFile()
	if err != nil {
		return fmt.Errorf("%s: %w (fix or remove it before running setup)", config.Path(), err)
	}

	vals := tui.SetupValuesFrom(base)
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled; nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if err := config.Save(vals.Apply(base)); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `riskdash setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
