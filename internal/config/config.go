// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"goalgraph/core/types"
	goalerrors "goalgraph/internal/errors"
	"goalgraph/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Validation contains validation rule settings
	Validation ValidationConfig `json:"validation"`

	// Planning contains planning settings
	Planning PlanningConfig `json:"planning"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ValidationConfig contains validation-related settings
type ValidationConfig struct {
	// CheckDuplicates warns about repeated dependencies between the same goals
	CheckDuplicates bool `json:"check_duplicates"`

	// Strict makes invalid reports exit non-zero
	Strict bool `json:"strict"`
}

// PlanningConfig contains planning-related settings
type PlanningConfig struct {
	// Currency is the currency goal amounts are expressed in
	Currency types.Currency `json:"currency"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// NoColor disables terminal styling
	NoColor bool `json:"no_color"`

	// ShowDepths prints per-goal depth in the CLI report
	ShowDepths bool `json:"show_depths"`
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".goalgraph.json")
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Validation: ValidationConfig{
			CheckDuplicates: true,
			Strict:          false,
		},
		Planning: PlanningConfig{
			Currency: types.CurrencyUSD,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			NoColor:       false,
			ShowDepths:    true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, goalerrors.Config("failed to read config", err).WithContext("path", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, goalerrors.Config("failed to parse config", err).WithContext("path", path)
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
