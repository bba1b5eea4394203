// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Account is an operator account allowed to authenticate against the API.
// Passwords are stored as bcrypt hashes, never in the clear.
type Account struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	SchemaPath string `json:"schema_path,omitempty"` // Path to the door parameters JSON Schema
	OutputPath string `json:"output_path,omitempty"` // Path to write reports to (default stdout)

	// Server
	Port     int       `json:"port,omitempty"`     // HTTP listen port
	Accounts []Account `json:"accounts,omitempty"` // Operator accounts for API login

	// Behavior
	Format      string `json:"format,omitempty"`      // Report format: "text" or "json"
	Verbose     bool   `json:"verbose,omitempty"`     // Print detailed debug information
	Concurrency int    `json:"concurrency,omitempty"` // Parallel evaluations in batch mode
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Format != "" && c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("config error: 'format' must be \"text\" or \"json\"")
	}

	if c.SchemaPath != "" {
		if _, err := os.Stat(c.SchemaPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.SchemaPath)
		}
	}

	for i, account := range c.Accounts {
		if account.Email == "" {
			return fmt.Errorf("config error: account %d has no email", i)
		}
		if account.PasswordHash == "" {
			return fmt.Errorf("config error: account %s has no password hash", account.Email)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}
	if result.OutputPath == "" {
		result.OutputPath = defaults.OutputPath
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if len(result.Accounts) == 0 {
		result.Accounts = defaults.Accounts
	}

	return result
}
