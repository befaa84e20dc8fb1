package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store backend names accepted in store.backend.
const (
	BackendSQLite      = "sqlite"
	BackendMemory      = "memory"
	BackendWinRegistry = "winregistry"
)

// Config is the root configuration structure for vcamctl.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig selects and configures the preferences store backend.
type StoreConfig struct {
	// Backend is one of "sqlite", "memory" or "winregistry".
	Backend string `yaml:"backend"`

	// Path is the SQLite database location. Ignored by other backends.
	Path string `yaml:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: VCAMCTL_SECTION_KEY
// For example: VCAMCTL_STORE_PATH, VCAMCTL_LOG_LEVEL
//
// An empty path skips the file step: defaults plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendSQLite,
			Path:    defaultStorePath(),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// defaultStorePath places the database under the user's config directory,
// falling back to the working directory when none is known.
func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "vcamctl.db"
	}
	return filepath.Join(dir, "vcamctl", "prefs.db")
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: VCAMCTL_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VCAMCTL_STORE_BACKEND"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("VCAMCTL_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("VCAMCTL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("VCAMCTL_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Store.Backend) {
	case BackendSQLite:
		if c.Store.Path == "" {
			errs = append(errs, "store.path is required for the sqlite backend")
		}
	case BackendMemory, BackendWinRegistry:
	default:
		errs = append(errs, fmt.Sprintf("store.backend %q is not one of sqlite, memory, winregistry", c.Store.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
