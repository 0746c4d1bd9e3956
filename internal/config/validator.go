package config

import (
	"fmt"
	"path/filepath"
)

// Validate checks the configuration for values that would fail later at
// scan time. It returns the first problem found.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	for _, pattern := range c.Exclude {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	return nil
}
