// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMaxUploadBytes caps resume uploads at 16 MiB.
const DefaultMaxUploadBytes = 16 << 20

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Server
	Port           int    `json:"port,omitempty"`             // HTTP listen port
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty"` // Upload size cap for /api/analyze
	DatabaseURL    string `json:"database_url,omitempty"`     // PostgreSQL connection URL; empty disables persistence

	// AI
	APIKey string `json:"api_key,omitempty"` // Gemini API key; empty disables AI analysis

	// Parsing
	ReferenceYear int `json:"reference_year,omitempty"` // Year used for open-ended date ranges; zero means current year

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.ReferenceYear != 0 && (c.ReferenceYear < 1900 || c.ReferenceYear > 2200) {
		return fmt.Errorf("config error: 'reference_year' must be a plausible year")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags and environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		if defaults.MaxUploadBytes > 0 {
			result.MaxUploadBytes = defaults.MaxUploadBytes
		} else {
			result.MaxUploadBytes = DefaultMaxUploadBytes
		}
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ReferenceYear == 0 {
		result.ReferenceYear = defaults.ReferenceYear
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
