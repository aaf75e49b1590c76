// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/stackgen/internal/ports/secondary"
	"github.com/example/stackgen/internal/scaffold"
)

// ProjectStore implements secondary.FileStore on the local disk, rooted at a
// project directory.
type ProjectStore struct {
	root string
}

// NewProjectStore creates a store rooted at root.
// If root is empty, defaults to the current working directory.
func NewProjectStore(root string) (*ProjectStore, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	return &ProjectStore{root: abs}, nil
}

// Root returns the absolute project root.
func (s *ProjectStore) Root() string {
	return s.root
}

// ReadIfExists reads a file below the root. A missing file is not an error.
func (s *ProjectStore) ReadIfExists(ctx context.Context, path string) (string, bool, error) {
	full, err := s.resolve("read", path)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, scaffold.NewFileSystemError("read", path, err)
	}
	return string(data), true, nil
}

// Exists reports whether a regular file exists below the root.
func (s *ProjectStore) Exists(ctx context.Context, path string) (bool, error) {
	full, err := s.resolve("stat", path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, scaffold.NewFileSystemError("stat", path, err)
	}
	return !info.IsDir(), nil
}

// Write creates or replaces a file below the root.
func (s *ProjectStore) Write(ctx context.Context, path string, content []byte, mode uint32) error {
	full, err := s.resolve("write", path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(full, content, os.FileMode(mode)); err != nil {
		return scaffold.NewFileSystemError("write", path, err)
	}
	return nil
}

// EnsureDir creates a directory with all parent directories.
func (s *ProjectStore) EnsureDir(ctx context.Context, path string, mode uint32) error {
	full, err := s.resolve("mkdir", path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(full, os.FileMode(mode)); err != nil {
		return scaffold.NewFileSystemError("mkdir", path, err)
	}
	return nil
}

// resolve maps a slash-separated relative path to an absolute path that is
// guaranteed to stay below the root.
func (s *ProjectStore) resolve(op, path string) (string, error) {
	if filepath.IsAbs(path) || filepath.IsAbs(filepath.FromSlash(path)) {
		return "", scaffold.NewFileSystemError(op, path, errors.New("path must be relative to the project root"))
	}

	full := filepath.Join(s.root, filepath.FromSlash(path))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", scaffold.NewFileSystemError(op, path, errors.New("path escapes the project root"))
	}
	return full, nil
}

// Ensure ProjectStore implements the interface
var _ secondary.FileStore = (*ProjectStore)(nil)
