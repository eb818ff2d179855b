// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the ranker configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Engine tunables
	MaxHops             int                `json:"max_hops,omitempty"`              // Equivalence traversal bound (1-2)
	ResultLimit         int                `json:"result_limit,omitempty"`          // Ranked output truncation
	YearsRampSaturation int                `json:"years_ramp_saturation,omitempty"` // Tenure at which the years factor reaches 1.0
	LevelMultipliers    map[string]float64 `json:"level_multipliers,omitempty"`     // Proficiency level -> multiplier table

	// Infrastructure
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the graph store
	Port        int    `json:"port,omitempty"`         // HTTP API port

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print boxed summaries of each stage
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
func (c *Config) Validate() error {
	if c.MaxHops < 0 || c.MaxHops > 2 {
		return fmt.Errorf("config error: 'max_hops' must be between 0 and 2")
	}
	if c.ResultLimit < 0 {
		return fmt.Errorf("config error: 'result_limit' must be non-negative")
	}
	if c.YearsRampSaturation < 0 {
		return fmt.Errorf("config error: 'years_ramp_saturation' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	for level, multiplier := range c.LevelMultipliers {
		if multiplier < 0 {
			return fmt.Errorf("config error: multiplier for level %q must be non-negative", level)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.MaxHops == 0 {
		result.MaxHops = defaults.MaxHops
	}
	if result.ResultLimit == 0 {
		result.ResultLimit = defaults.ResultLimit
	}
	if result.YearsRampSaturation == 0 {
		result.YearsRampSaturation = defaults.YearsRampSaturation
	}
	if result.LevelMultipliers == nil {
		result.LevelMultipliers = defaults.LevelMultipliers
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
