package database

import (
	"context"
	"database/sql"
)

// Migrate creates the database schema if needed. Exported so tests and
// tooling can prepare ad-hoc databases.
func Migrate(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db)
}

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create trials table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS trials (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			trial_id TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			cohort TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (trial_id, cohort)
		)
	`)
	if err != nil {
		return err
	}

	// Create criteria table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS criteria (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			trial_id INTEGER NOT NULL,
			rule_num INTEGER NOT NULL,
			rule_id TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL DEFAULT '',
			code TEXT NOT NULL DEFAULT '',
			llm_code TEXT NOT NULL DEFAULT '',
			override_code TEXT NOT NULL DEFAULT '',
			checked BOOLEAN NOT NULL DEFAULT 0,
			error TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (trial_id) REFERENCES trials(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient grid queries
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_criteria_trial
		ON criteria(trial_id, rule_num)
	`)
	return err
}
