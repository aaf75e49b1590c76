package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by Save when the file exists and force is unset.
var ErrConfigExists = errors.New("config file already exists")

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the configuration to stackgen.yaml in root and returns the
// path written. An existing file is only replaced when force is set.
func Save(root string, cfg *Config, force bool) (string, error) {
	path := filepath.Join(root, FileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s: %w", path, ErrConfigExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return path, fmt.Errorf("failed to check config: %w", err)
		}
	}

	data, err := cfg.Marshal()
	if err != nil {
		return path, err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return path, fmt.Errorf("failed to write config: %w", err)
	}

	return path, nil
}
