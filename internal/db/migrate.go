package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// additions tolerate "duplicate column name" on re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS elements (
		id            TEXT PRIMARY KEY,
		department_id TEXT NOT NULL REFERENCES departments(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		start_date    TEXT,
		due_date      TEXT,
		priority      TEXT NOT NULL DEFAULT 'medium'
		              CHECK(priority IN ('low','medium','high')),
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_elements_department ON elements(department_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		element_id    TEXT REFERENCES elements(id) ON DELETE SET NULL,
		department_id TEXT NOT NULL REFERENCES departments(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		start_date    TEXT,
		due_date      TEXT,
		status        TEXT NOT NULL DEFAULT 'todo'
		              CHECK(status IN ('todo','in_progress','done')),
		progress_pct  INTEGER NOT NULL DEFAULT 0,
		assignee      TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_element ON tasks(element_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_department ON tasks(department_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
}
