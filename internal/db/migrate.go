package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Draft key-value store: one row per key, last writer wins.
	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Local audit trail of completed submissions.
	`CREATE TABLE IF NOT EXISTS submissions (
		id            TEXT PRIMARY KEY,
		reference     TEXT NOT NULL,
		source        TEXT NOT NULL,
		company       TEXT NOT NULL,
		email         TEXT NOT NULL,
		industry      TEXT NOT NULL,
		package_size  INTEGER NOT NULL,
		total_setup   REAL NOT NULL,
		monthly_final REAL NOT NULL,
		billing       TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_submissions_created_at
		ON submissions (created_at DESC)`,
}
