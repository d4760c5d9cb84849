package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// whole list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS practice_sessions (
		id               TEXT PRIMARY KEY,
		start_time       TEXT NOT NULL,
		end_time         TEXT NOT NULL,
		duration_seconds REAL NOT NULL CHECK(duration_seconds > 0),
		created_at       TEXT NOT NULL,
		CHECK(end_time > start_time)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_practice_sessions_start ON practice_sessions(start_time)`,

	`CREATE TABLE IF NOT EXISTS weekly_goal (
		id             TEXT PRIMARY KEY CHECK(id = 'default'),
		target_seconds REAL NOT NULL CHECK(target_seconds > 0),
		updated_at     TEXT NOT NULL
	)`,

	// Seed the default goal once; later runs keep the user's value.
	`INSERT OR IGNORE INTO weekly_goal (id, target_seconds, updated_at)
		VALUES ('default', 3600.0, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))`,
}
