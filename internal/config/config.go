package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ConfigFileName is the optional per-user configuration file, looked up
// in the user's home directory.
const ConfigFileName = ".cargodex.yaml"

// Config is the main configuration structure for cargodex.
type Config struct {
	// Theme selects the prompt theme by name (see internal/tui).
	Theme string `yaml:"theme,omitempty"`

	// NoColor disables styled output, same as the --no-color flag.
	NoColor bool `yaml:"no-color,omitempty"`

	// Exclude lists glob patterns for directory names to skip during
	// project scanning.
	Exclude []string `yaml:"exclude,omitempty"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads the configuration from the user's home directory.
// A missing config file is not an error and yields the defaults.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return LoadFrom(filepath.Join(home, ConfigFileName))
}

// LoadFrom reads the configuration from the given path.
// A missing file yields the defaults; a malformed file is an error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	return &cfg, nil
}

// GetExcludePatterns returns the configured exclude patterns, nil-safe.
func (c *Config) GetExcludePatterns() []string {
	if c == nil {
		return nil
	}
	return c.Exclude
}
