// Package config loads tracectl settings from ~/.tracectl/config.yaml with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds global tracectl settings.
type Config struct {
	// ClientPath is the lttng executable to invoke. Empty means resolve
	// from PATH.
	ClientPath string `yaml:"client_path"`
	// Home is the directory exported as LTTNG_HOME to the client. Empty
	// means the ambient LTTNG_HOME, falling back to ~/.lttng.
	Home string `yaml:"home"`
	// Debug holds diagnostic settings.
	Debug DebugConfig `yaml:"debug"`
}

// DebugConfig holds debug logging settings.
type DebugConfig struct {
	// RetentionDays is how many days of debug log files to keep (0 = no
	// cleanup).
	RetentionDays int `yaml:"retention_days"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Debug: DebugConfig{RetentionDays: 7},
	}
}

// Load reads ~/.tracectl/config.yaml and applies environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(filepath.Join(Dir(), "config.yaml")); err == nil {
		_ = yaml.Unmarshal(data, cfg) // Ignore unmarshal errors, use defaults
	}

	if path := os.Getenv("TRACECTL_CLIENT_PATH"); path != "" {
		cfg.ClientPath = path
	}
	if home := os.Getenv("TRACECTL_HOME"); home != "" {
		cfg.Home = home
	}
	if days := os.Getenv("TRACECTL_DEBUG_RETENTION_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			cfg.Debug.RetentionDays = n
		}
	}

	return cfg, nil
}

// Dir returns the path to ~/.tracectl.
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".tracectl")
	}
	return filepath.Join(homeDir, ".tracectl")
}
