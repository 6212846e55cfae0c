// Package config loads and saves the riskdash TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all riskdash configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig selects the portfolio dataset shown on the dashboard.
type GeneralConfig struct {
	DatasetDB   string `toml:"dataset_db,omitempty"`   // SQLite dataset store
	DatasetName string `toml:"dataset_name,omitempty"` // dataset within the store
	DatasetFile string `toml:"dataset_file,omitempty"` // TOML dataset file
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig holds log settings. An empty File means the TUI discards
// logs and CLI commands write them to stderr.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file,omitempty"`
}

// Environment overrides.
const (
	EnvDatasetDB   = "RISKDASH_DATASET_DB"
	EnvDatasetFile = "RISKDASH_DATASET_FILE"
	EnvLogLevel    = "RISKDASH_LOG_LEVEL"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DatasetName: "sample",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "riskdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "riskdash")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultStorePath returns where `riskdash dataset init` puts the store.
func DefaultStorePath() string {
	return filepath.Join(Dir(), "datasets.db")
}

// Load returns the effective configuration: the file (or defaults) with
// environment overrides applied.
func Load() (Config, error) {
	cfg, err := LoadFile()
	return applyEnv(cfg), err
}

// LoadFile reads the config file without environment overrides, returning
// defaults if it doesn't exist. Anything passed to Save must start here so
// per-session overrides are never persisted.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv(EnvDatasetDB); v != "" {
		cfg.General.DatasetDB = v
	}
	if v := os.Getenv(EnvDatasetFile); v != "" {
		cfg.General.DatasetFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	return cfg
}
