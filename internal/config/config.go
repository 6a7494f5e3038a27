// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile     string `json:"profile,omitempty"`     // Path to candidate profile JSON
	Institution string `json:"institution,omitempty"` // Path to institutional config JSON
	Dataset     string `json:"dataset,omitempty"`     // Path to training dataset CSV
	Model       string `json:"model,omitempty"`       // Path to model artifact JSON

	// Generation
	Samples int    `json:"samples,omitempty"` // Synthetic dataset size
	Seed    uint64 `json:"seed,omitempty"`    // RNG seed for generation and training

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed evaluation output
	UseModel    bool   `json:"use_model,omitempty"`    // Score with the trained model instead of the heuristic
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Samples < 0 {
		return fmt.Errorf("config error: 'samples' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	if c.Institution != "" {
		if _, err := os.Stat(c.Institution); os.IsNotExist(err) {
			return fmt.Errorf("config error: institution file not found: %s", c.Institution)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Institution == "" {
		result.Institution = defaults.Institution
	}
	if result.Dataset == "" {
		result.Dataset = defaults.Dataset
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Samples == 0 {
		result.Samples = defaults.Samples
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.UseModel {
		result.UseModel = defaults.UseModel
	}

	return result
}

// DatabaseURLFromEnv returns the DATABASE_URL environment variable when the
// config does not carry one.
func (c *Config) DatabaseURLFromEnv() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return os.Getenv("DATABASE_URL")
}
