// Package config loads project-level generator settings.
package config

import (
	"path/filepath"

	"github.com/example/stackgen/internal/scaffold"
)

// FileName is the configuration file looked up in the project root.
const FileName = "stackgen.yaml"

// Config is the root generator configuration.
// Booleans have no env-default tag; their defaults come from Default.
type Config struct {
	BackendDir    string        `yaml:"backend_dir"    env:"STACKGEN_BACKEND_DIR"    env-default:"src"`
	MigrationsDir string        `yaml:"migrations_dir" env:"STACKGEN_MIGRATIONS_DIR" env-default:"src/migrations"`
	ClientDir     string        `yaml:"client_dir"     env:"STACKGEN_CLIENT_DIR"     env-default:"client/src"`
	APIPrefix     string        `yaml:"api_prefix"     env:"STACKGEN_API_PREFIX"     env-default:"/api"`
	SkipClient    bool          `yaml:"skip_client"    env:"STACKGEN_SKIP_CLIENT"`
	Overwrite     bool          `yaml:"overwrite"      env:"STACKGEN_OVERWRITE"`
	History       HistoryConfig `yaml:"history"`
}

// HistoryConfig controls the sqlite run history.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" env:"STACKGEN_HISTORY"`
	Path    string `yaml:"path"    env:"STACKGEN_HISTORY_PATH" env-default:".stackgen/history.db"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	layout := scaffold.DefaultLayout()
	return &Config{
		BackendDir:    layout.BackendDir,
		MigrationsDir: layout.MigrationsDir,
		ClientDir:     layout.ClientDir,
		APIPrefix:     layout.APIPrefix,
		SkipClient:    false,
		Overwrite:     true,
		History: HistoryConfig{
			Enabled: true,
			Path:    ".stackgen/history.db",
		},
	}
}

// Layout returns the artifact layout described by the configuration.
func (c *Config) Layout() scaffold.Layout {
	return scaffold.Layout{
		BackendDir:    filepath.ToSlash(c.BackendDir),
		MigrationsDir: filepath.ToSlash(c.MigrationsDir),
		ClientDir:     filepath.ToSlash(c.ClientDir),
		APIPrefix:     c.APIPrefix,
	}
}

// HistoryPath resolves the history database path against the project root.
func (c *Config) HistoryPath(root string) string {
	if filepath.IsAbs(c.History.Path) {
		return c.History.Path
	}
	return filepath.Join(root, filepath.FromSlash(c.History.Path))
}
