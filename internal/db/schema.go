package db

import "database/sql"

// SchemaSQL is the complete schema for a fresh history database.
// This schema reflects the current state after all migrations.
//
// This is the single source of truth for the schema. Repository tests load
// it through GetSchemaSQL() rather than declaring their own tables, so a
// column referenced by repository code but missing here fails immediately
// with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Generation runs (one row per successful generate)
CREATE TABLE IF NOT EXISTS generation_runs (
	id TEXT PRIMARY KEY,
	entity TEXT NOT NULL,
	field_spec TEXT NOT NULL,
	migration TEXT NOT NULL,
	file_count INTEGER NOT NULL DEFAULT 0,
	skip_client INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_generation_runs_entity ON generation_runs(entity);
CREATE INDEX IF NOT EXISTS idx_generation_runs_created ON generation_runs(created_at);
`

// InitSchema creates the schema on a fresh database and migrates an
// existing one.
func InitSchema(db *sql.DB) error {
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		// schema_version table exists - run any pending migrations
		return RunMigrations(db)
	}

	// Fresh install - create modern schema directly and mark every
	// migration as applied
	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(db); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
