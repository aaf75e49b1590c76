// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// ScaffoldService defines the primary port for generation runs.
type ScaffoldService interface {
	// Generate writes every artifact for an entity and merges its manifests.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Preview computes what Generate would write without touching the disk.
	Preview(ctx context.Context, req GenerateRequest) (*PreviewResponse, error)

	// History lists recorded runs, newest first.
	History(ctx context.Context, req HistoryRequest) ([]*Run, error)

	// GetRun returns one recorded run by ID.
	GetRun(ctx context.Context, id string) (*Run, error)
}

// GenerateRequest contains parameters for a generation run.
type GenerateRequest struct {
	Entity       string
	FieldSpec    string
	SkipClient   bool
	SkipExisting bool
}

// File actions reported in FileResult.
const (
	ActionCreated     = "created"
	ActionOverwritten = "overwritten"
	ActionSkipped     = "skipped"
)

// FileResult reports what happened to one artifact.
type FileResult struct {
	Kind   string
	Path   string
	Action string
}

// ManifestResult reports the lines appended to one manifest.
type ManifestResult struct {
	Path  string
	Added []string
}

// GenerateResponse contains the result of a generation run.
type GenerateResponse struct {
	RunID     string // empty when history is disabled
	Entity    string
	Migration string
	Files     []FileResult
	Manifests []ManifestResult
}

// PlannedFile is an artifact as it would be written.
type PlannedFile struct {
	Kind    string
	Path    string
	Content string
}

// PlannedManifest lists the lines a run would ensure in one manifest.
type PlannedManifest struct {
	Path  string
	Lines []string
}

// PreviewResponse contains the result of a dry run.
type PreviewResponse struct {
	Entity    string
	Migration string
	Files     []PlannedFile
	Manifests []PlannedManifest
}

// HistoryRequest contains filter options for listing runs.
type HistoryRequest struct {
	Entity string
	Limit  int
}

// Run represents a recorded generation run at the port boundary.
type Run struct {
	ID         string
	Entity     string
	FieldSpec  string
	Migration  string
	FileCount  int
	SkipClient bool
	CreatedAt  string
}
