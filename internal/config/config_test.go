package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDatasetDB, "")
	t.Setenv(EnvDatasetFile, "")
	t.Setenv(EnvLogLevel, "")

	if Exists() {
		t.Fatal("Exists() = true for empty config dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvDatasetDB, "")
	t.Setenv(EnvDatasetFile, "")
	t.Setenv(EnvLogLevel, "")

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "gruvbox-dark"
	cfg.General.DatasetFile = "/tmp/q3.toml"
	cfg.Logging.Level = "debug"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if got := Path(); got != filepath.Join(dir, "riskdash", "config.toml") {
		t.Fatalf("Path() = %q", got)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDatasetDB, "/data/riskdash.db")
	t.Setenv(EnvDatasetFile, "/data/q3.toml")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DatasetDB != "/data/riskdash.db" || cfg.General.DatasetFile != "/data/q3.toml" {
		t.Fatalf("dataset overrides not applied: %+v", cfg.General)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "riskdash"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "riskdash", "config.toml"), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded on malformed TOML")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("malformed config should fall back to defaults, got theme %q", cfg.Appearance.Theme)
	}
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDatasetDB, "/tmp/ephemeral.db")
	t.Setenv(EnvDatasetFile, "/tmp/ephemeral.toml")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	cfg.Appearance.Theme = "gruvbox-dark"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(Path())
	if err != nil {
		t.Fatal(err)
	}
	for _, leaked := range []string{"/tmp/ephemeral.db", "/tmp/ephemeral.toml", "debug"} {
		if strings.Contains(string(data), leaked) {
			t.Errorf("config file picked up env override %q:\n%s", leaked, data)
		}
	}

	eff, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if eff.Appearance.Theme != "gruvbox-dark" || eff.Logging.Level != "debug" || eff.General.DatasetDB != "/tmp/ephemeral.db" {
		t.Fatalf("Load() should layer env over the file, got %+v", eff)
	}
}
