package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every failure of a generation run matches exactly one.
var (
	// ErrUsage indicates a missing or extra command-line argument.
	ErrUsage = errors.New("stackgen: usage error")
	// ErrEmptySpec indicates an empty field specification string.
	ErrEmptySpec = errors.New("stackgen: empty field specification")
	// ErrMalformedFieldSpec indicates a field token that does not parse.
	ErrMalformedFieldSpec = errors.New("stackgen: malformed field specification")
	// ErrInvalidEntityName indicates an empty or unusable entity name.
	ErrInvalidEntityName = errors.New("stackgen: invalid entity name")
	// ErrFileSystem indicates a failed directory creation, read or write.
	ErrFileSystem = errors.New("stackgen: file system error")
)

// UsageError reports a command-line usage problem.
type UsageError struct {
	Message string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return "stackgen: usage: " + e.Message
}

// Is reports whether target is ErrUsage.
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// NewUsageError creates a UsageError.
func NewUsageError(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// FieldSpecError reports the offending token of a field specification.
type FieldSpecError struct {
	Index  int    // 0-based token position
	Token  string // token as written
	Reason string
}

// Error implements the error interface.
func (e *FieldSpecError) Error() string {
	return fmt.Sprintf("stackgen: malformed field %d %q: %s", e.Index, e.Token, e.Reason)
}

// Is reports whether target is ErrMalformedFieldSpec.
func (e *FieldSpecError) Is(target error) bool {
	return target == ErrMalformedFieldSpec
}

// EntityNameError reports an entity name that cannot be used.
type EntityNameError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *EntityNameError) Error() string {
	return fmt.Sprintf("stackgen: invalid entity name %q: %s", e.Name, e.Reason)
}

// Is reports whether target is ErrInvalidEntityName.
func (e *EntityNameError) Is(target error) bool {
	return target == ErrInvalidEntityName
}

// FileSystemError wraps an I/O failure with the operation and path involved.
type FileSystemError struct {
	Op    string // "mkdir", "read", "write"
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *FileSystemError) Error() string {
	var b strings.Builder
	b.WriteString("stackgen: ")
	b.WriteString(e.Op)
	b.WriteString(" ")
	b.WriteString(e.Path)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying I/O error.
func (e *FileSystemError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrFileSystem.
func (e *FileSystemError) Is(target error) bool {
	return target == ErrFileSystem
}

// NewFileSystemError creates a FileSystemError.
func NewFileSystemError(op, path string, cause error) *FileSystemError {
	return &FileSystemError{Op: op, Path: path, Cause: cause}
}
