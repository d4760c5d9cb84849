package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"practice_sessions", "weekly_goal"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}

	var idx string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_practice_sessions_start'`).Scan(&idx)
	require.NoError(t, err)
}

func TestMigrate_SeedsDefaultGoalOnce(t *testing.T) {
	db := openTestDB(t)

	var target float64
	require.NoError(t, db.QueryRow(`SELECT target_seconds FROM weekly_goal WHERE id = 'default'`).Scan(&target))
	assert.Equal(t, 3600.0, target)

	_, err := db.Exec(`UPDATE weekly_goal SET target_seconds = 5400 WHERE id = 'default'`)
	require.NoError(t, err)

	// Replaying migrations must not overwrite the user's target.
	require.NoError(t, Migrate(db))
	require.NoError(t, db.QueryRow(`SELECT target_seconds FROM weekly_goal WHERE id = 'default'`).Scan(&target))
	assert.Equal(t, 5400.0, target)
}

func TestMigrate_ChecksRejectBadRows(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name  string
		query string
		args  []any
	}{
		{
			name:  "zero duration",
			query: `INSERT INTO practice_sessions (id, start_time, end_time, duration_seconds, created_at) VALUES (?, ?, ?, ?, ?)`,
			args:  []any{"a", "2026-01-01T10:00:00.000Z", "2026-01-01T10:01:00.000Z", 0.0, "2026-01-01T10:01:00.000Z"},
		},
		{
			name:  "end before start",
			query: `INSERT INTO practice_sessions (id, start_time, end_time, duration_seconds, created_at) VALUES (?, ?, ?, ?, ?)`,
			args:  []any{"b", "2026-01-01T10:01:00.000Z", "2026-01-01T10:00:00.000Z", 60.0, "2026-01-01T10:01:00.000Z"},
		},
		{
			name:  "non-positive goal",
			query: `UPDATE weekly_goal SET target_seconds = ? WHERE id = 'default'`,
			args:  []any{0.0},
		},
		{
			name:  "second goal row",
			query: `INSERT INTO weekly_goal (id, target_seconds, updated_at) VALUES (?, ?, ?)`,
			args:  []any{"other", 60.0, "2026-01-01T10:00:00.000Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.Exec(tt.query, tt.args...)
			assert.Error(t, err)
		})
	}
}
