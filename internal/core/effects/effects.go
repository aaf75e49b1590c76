// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// FileEffect represents a file system operation.
type FileEffect struct {
	Operation    string // "mkdir" or "write"
	Path         string // relative to the project root
	Kind         string // artifact kind for "write"
	Content      []byte // For write operations
	Mode         uint32 // File permissions
	SkipIfExists bool   // leave an existing file untouched
}

func (e FileEffect) EffectType() string { return "file" }

// ManifestEffect ensures lines are present in a manifest file.
// The manifest is read once and written at most once.
type ManifestEffect struct {
	Path  string
	Lines []string
}

func (e ManifestEffect) EffectType() string { return "manifest" }

// PersistEffect represents a database persistence operation.
type PersistEffect struct {
	Entity    string // e.g., "run"
	Operation string // e.g., "create"
	Data      any    // The entity data
}

func (e PersistEffect) EffectType() string { return "persist" }
