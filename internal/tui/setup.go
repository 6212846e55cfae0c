package tui

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/theirongolddev/riskdash/internal/config"
	"github.com/theirongolddev/riskdash/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup wizard.
type SetupValues struct {
	Theme       string
	DatasetFile string
}

// SetupValuesFrom seeds the wizard with the current configuration.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:       cfg.Appearance.Theme,
		DatasetFile: cfg.General.DatasetFile,
	}
}

// Apply copies the answers into cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	if theme.Exists(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
	cfg.General.DatasetFile = strings.TrimSpace(v.DatasetFile)
	return cfg
}

// NewSetupForm builds the first-run wizard. Answers are written to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	if vals.Theme == "" {
		vals.Theme = theme.DefaultName
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to riskdash").
				Description("Score loan applicants and review portfolio performance.\nA few settings and you're done."),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Portfolio dataset file").
				Description("TOML dataset shown beside the calculator. Leave empty for the built-in sample.").
				Placeholder("~/datasets/q3.toml").
				Value(&vals.DatasetFile).
				Validate(validateDatasetPath),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateDatasetPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	info, err := os.Stat(s)
	if err != nil {
		return errors.New("file not found")
	}
	if info.IsDir() {
		return errors.New("path is a directory")
	}
	return nil
}

func newSetupForm(vals *SetupValues) *huh.Form {
	*vals = SetupValuesFrom(loadConfigOrDefault())
	return NewSetupForm(vals)
}

// saveSetupConfig persists the wizard answers and applies them. It reports
// whether the dataset source changed.
func (a *App) saveSetupConfig() bool {
	base, err := config.LoadFile()
	cfg := a.setupVals.Apply(base)
	theme.SetActive(cfg.Appearance.Theme)
	a.form.applyStyles()

	if err != nil {
		slog.Warn("config unreadable, setup not saved", "err", err)
	} else if err := config.Save(cfg); err != nil {
		slog.Warn("saving setup config", "err", err)
	}

	if cfg.General.DatasetFile == a.opts.File {
		return false
	}
	a.opts.File = cfg.General.DatasetFile
	return true
}
