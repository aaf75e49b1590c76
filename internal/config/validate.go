package config

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	dirs := []struct {
		key   string
		value string
	}{
		{"backend_dir", c.BackendDir},
		{"migrations_dir", c.MigrationsDir},
		{"client_dir", c.ClientDir},
	}
	for _, d := range dirs {
		if err := validateDir(d.value); err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
	}

	if !strings.HasPrefix(c.APIPrefix, "/") {
		return fmt.Errorf("api_prefix must start with \"/\" (got %q)", c.APIPrefix)
	}

	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path must be set when history is enabled")
	}

	return nil
}

// validateDir accepts a non-empty relative directory inside the project root.
func validateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("must not be empty")
	}
	slashed := filepath.ToSlash(dir)
	if filepath.IsAbs(dir) || path.IsAbs(slashed) {
		return fmt.Errorf("must be relative to the project root (got %q)", dir)
	}
	clean := path.Clean(slashed)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("must stay inside the project root (got %q)", dir)
	}
	return nil
}
