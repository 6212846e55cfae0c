package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/riskdash/internal/config"
	"github.com/theirongolddev/riskdash/internal/tui/theme"
)

// saveSetting edits the field under the cursor to val and saves it.
func saveSetting(a *App, field int, val string) bool {
	a.settings.cursor = field
	a.settings.input = newSettingsInput()
	a.settings.input.SetValue(val)
	return a.settingsSave()
}

func TestSettingsSaveKeepsEnvOverridesOutOfFile(t *testing.T) {
	a := newTestApp(t)
	t.Cleanup(func() { theme.SetActive(theme.DefaultName) })
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvDatasetDB, "/tmp/ephemeral.db")
	t.Setenv(config.EnvDatasetFile, "/tmp/ephemeral.toml")

	saveSetting(&a, settingsFieldTheme, "gruvbox-dark")
	if a.settings.saveErr != nil {
		t.Fatalf("save: %v", a.settings.saveErr)
	}

	data, err := os.ReadFile(config.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "gruvbox-dark") {
		t.Fatalf("theme not saved:\n%s", data)
	}
	for _, leaked := range []string{"/tmp/ephemeral.db", "/tmp/ephemeral.toml", "debug"} {
		if strings.Contains(string(data), leaked) {
			t.Errorf("env override %q written to config:\n%s", leaked, data)
		}
	}
}

func TestSettingsSaveLeavesUnreadableConfigAlone(t *testing.T) {
	a := newTestApp(t)
	t.Cleanup(func() { theme.SetActive(theme.DefaultName) })

	bad := []byte("[general\n")
	if err := os.MkdirAll(filepath.Dir(config.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(config.Path(), bad, 0o600); err != nil {
		t.Fatal(err)
	}

	saveSetting(&a, settingsFieldTheme, "terminal")
	if a.settings.saveErr == nil {
		t.Error("save over a malformed config should report an error")
	}
	data, err := os.ReadFile(config.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(bad) {
		t.Errorf("malformed config was overwritten:\n%s", data)
	}
}

func TestSetupSaveKeepsEnvOverridesOutOfFile(t *testing.T) {
	a := newTestApp(t)
	t.Cleanup(func() { theme.SetActive(theme.DefaultName) })
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvDatasetDB, "/tmp/ephemeral.db")

	a.setupVals = SetupValues{Theme: "flexoki-light"}
	a.saveSetupConfig()

	cfg, err := config.LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-light" {
		t.Errorf("theme = %q, want flexoki-light", cfg.Appearance.Theme)
	}
	if cfg.Logging.Level != "info" || cfg.General.DatasetDB != "" {
		t.Errorf("env overrides persisted: level=%q db=%q", cfg.Logging.Level, cfg.General.DatasetDB)
	}
}
