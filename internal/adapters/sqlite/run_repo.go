// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/stackgen/internal/ports/secondary"
)

// RunRepository implements secondary.RunRepository with SQLite.
type RunRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRunRepository creates a new SQLite run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db, now: time.Now}
}

// Create persists a finished run. An empty ID is assigned a new UUID and an
// empty CreatedAt is set to the current time; both are written back to run.
func (r *RunRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	createdAt := r.now().UTC()
	if run.CreatedAt != "" {
		parsed, err := time.Parse(time.RFC3339, run.CreatedAt)
		if err != nil {
			return fmt.Errorf("invalid run timestamp %q: %w", run.CreatedAt, err)
		}
		createdAt = parsed.UTC()
	}
	run.CreatedAt = createdAt.Format(time.RFC3339)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generation_runs (id, entity, field_spec, migration, file_count, skip_client, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Entity, run.FieldSpec, run.Migration, run.FileCount, run.SkipClient, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetByID retrieves a run by its ID.
func (r *RunRepository) GetByID(ctx context.Context, id string) (*secondary.RunRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, entity, field_spec, migration, file_count, skip_client, created_at
		 FROM generation_runs WHERE id = ?`,
		id,
	)

	record, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return record, nil
}

// List retrieves runs newest first, optionally filtered by entity.
func (r *RunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	query := `SELECT id, entity, field_spec, migration, file_count, skip_client, created_at
		FROM generation_runs`
	var (
		where []string
		args  []any
	)

	if filters.Entity != "" {
		where = append(where, "entity = ?")
		args = append(args, filters.Entity)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*secondary.RunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*secondary.RunRecord, error) {
	var createdAt time.Time

	record := &secondary.RunRecord{}
	err := row.Scan(&record.ID, &record.Entity, &record.FieldSpec, &record.Migration,
		&record.FileCount, &record.SkipClient, &createdAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return record, nil
}

// Ensure RunRepository implements the interface.
var _ secondary.RunRepository = (*RunRepository)(nil)
