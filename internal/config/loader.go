package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (Default, then env-default tags).
// The YAML file path is STACKGEN_CONFIG when set, otherwise stackgen.yaml in
// root. If the file does not exist and STACKGEN_CONFIG was not set
// explicitly, configuration is loaded from ENV + defaults only.
func Load(root string) (*Config, error) {
	cfg := *Default()

	path := os.Getenv("STACKGEN_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = filepath.Join(root, FileName)
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
