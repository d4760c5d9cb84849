package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/practicelog/internal/db"
	"github.com/alexanderramin/practicelog/internal/domain"
)

const sessionColumns = `id, start_time, end_time, duration_seconds, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO practice_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		formatTime(s.StartTime),
		formatTime(s.EndTime),
		s.DurationSeconds,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting practice session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM practice_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("practice session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning practice session: %w", err)
	}
	return s, nil
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM practice_sessions ORDER BY start_time DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing practice sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM practice_sessions
		WHERE start_time >= ?
		ORDER BY start_time DESC, id`
	rows, err := r.db.QueryContext(ctx, query, formatTime(since))
	if err != nil {
		return nil, fmt.Errorf("listing recent practice sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM practice_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting practice session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("practice session: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) SumDuration(ctx context.Context, since *time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(duration_seconds), 0) FROM practice_sessions
		WHERE ?1 IS NULL OR start_time >= ?1`
	var total float64
	if err := r.db.QueryRowContext(ctx, query, nullableTimeToString(since)).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing practice durations: %w", err)
	}
	return total, nil
}

func (r *SQLiteSessionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM practice_sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting practice sessions: %w", err)
	}
	return n, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	var startStr, endStr, createdStr string

	if err := row.Scan(&s.ID, &startStr, &endStr, &s.DurationSeconds, &createdStr); err != nil {
		return nil, err
	}

	var err error
	if s.StartTime, err = parseTime("start_time", startStr); err != nil {
		return nil, err
	}
	if s.EndTime, err = parseTime("end_time", endStr); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime("created_at", createdStr); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}
