package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/practicelog/internal/db"
	"github.com/alexanderramin/practicelog/internal/domain"
)

// SQLiteWeeklyGoalRepo implements WeeklyGoalRepo over the singleton
// weekly_goal row.
type SQLiteWeeklyGoalRepo struct {
	db db.DBTX
}

// NewSQLiteWeeklyGoalRepo creates a new SQLiteWeeklyGoalRepo.
func NewSQLiteWeeklyGoalRepo(conn db.DBTX) *SQLiteWeeklyGoalRepo {
	return &SQLiteWeeklyGoalRepo{db: conn}
}

func (r *SQLiteWeeklyGoalRepo) Get(ctx context.Context) (*domain.WeeklyGoal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT target_seconds, updated_at FROM weekly_goal WHERE id = 'default'`)

	var g domain.WeeklyGoal
	var updatedStr string
	if err := row.Scan(&g.TargetSeconds, &updatedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("weekly goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning weekly goal: %w", err)
	}

	updated, err := parseTime("updated_at", updatedStr)
	if err != nil {
		return nil, err
	}
	g.UpdatedAt = updated
	return &g, nil
}

func (r *SQLiteWeeklyGoalRepo) Upsert(ctx context.Context, g *domain.WeeklyGoal) error {
	updated := nowUTC()
	if !g.UpdatedAt.IsZero() {
		updated = formatTime(g.UpdatedAt)
	}
	query := `INSERT OR REPLACE INTO weekly_goal (id, target_seconds, updated_at)
		VALUES ('default', ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, g.TargetSeconds, updated); err != nil {
		return fmt.Errorf("upserting weekly goal: %w", err)
	}
	return nil
}
