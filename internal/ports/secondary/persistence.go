package secondary

import "context"

// RunRepository defines the secondary port for generation history.
type RunRepository interface {
	// Create persists a finished run.
	Create(ctx context.Context, run *RunRecord) error

	// GetByID retrieves a run by its ID.
	GetByID(ctx context.Context, id string) (*RunRecord, error)

	// List retrieves runs, newest first.
	List(ctx context.Context, filters RunFilters) ([]*RunRecord, error)
}

// RunRecord represents a generation run as stored in persistence.
type RunRecord struct {
	ID         string
	Entity     string
	FieldSpec  string
	Migration  string
	FileCount  int
	SkipClient bool
	CreatedAt  string
}

// RunFilters contains filter options for querying runs.
type RunFilters struct {
	Entity string
	Limit  int
}
