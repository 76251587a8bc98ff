package database

import (
	"context"
	"fmt"
)

// Schema for the attendance tracker. The unique constraint on
// (emp_id, date) is the arbiter for concurrent submissions: upserts
// resolve conflicts in the store, not in the application.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		emp_id     TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id              UUID PRIMARY KEY,
		emp_id          TEXT NOT NULL REFERENCES employees(emp_id),
		emp_name        TEXT NOT NULL,
		attendance_type TEXT NOT NULL,
		date            DATE NOT NULL,
		timestamp       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (emp_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_date
		ON attendance_records (date)`,
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
// Called once at startup; statements are idempotent.
func EnsureSchema(ctx context.Context, db *DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
