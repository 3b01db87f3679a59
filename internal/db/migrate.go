package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicates are tolerated because the whole list re-runs on every startup.
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
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		owner_id    TEXT NOT NULL DEFAULT '',
		archived    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		planned_start TEXT,
		planned_end   TEXT,
		actual_start  TEXT,
		actual_end    TEXT,
		order_index   INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_phases_project ON phases(project_id)`,

	`CREATE TABLE IF NOT EXISTS works (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		phase_id      TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		planned_start TEXT,
		planned_end   TEXT,
		actual_start  TEXT,
		actual_end    TEXT,
		order_index   INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_works_project ON works(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_works_phase ON works(phase_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		work_id       TEXT NOT NULL REFERENCES works(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		planned_start TEXT,
		planned_end   TEXT,
		actual_start  TEXT,
		actual_end    TEXT,
		order_index   INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_work ON tasks(work_id)`,

	`CREATE TABLE IF NOT EXISTS todos (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		task_id       TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'NOT_STARTED'
		              CHECK(status IN ('NOT_STARTED','IN_PROGRESS','DONE')),
		assignee_id   TEXT NOT NULL DEFAULT '',
		due_date      TEXT,
		memo          TEXT NOT NULL DEFAULT '',
		reference_url TEXT NOT NULL DEFAULT '',
		today         INTEGER NOT NULL DEFAULT 0,
		order_index   INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_todos_project ON todos(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_todos_task ON todos(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_todos_due ON todos(due_date)`,
}
