// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// FileStore defines the secondary port for project file access.
// Paths are slash separated and relative to the project root.
type FileStore interface {
	// ReadIfExists returns the file content and true, or "" and false when
	// the file does not exist.
	ReadIfExists(ctx context.Context, path string) (string, bool, error)

	// Exists reports whether a file exists.
	Exists(ctx context.Context, path string) (bool, error)

	// Write creates or replaces a file.
	Write(ctx context.Context, path string, content []byte, mode uint32) error

	// EnsureDir creates a directory and any missing parents.
	EnsureDir(ctx context.Context, path string, mode uint32) error

	// Root returns the project root the store is bound to.
	Root() string
}
