package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/practicelog/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// List returns all sessions, newest start time first.
	List(ctx context.Context) ([]*domain.Session, error)
	// ListSince returns sessions starting at or after since, newest first.
	ListSince(ctx context.Context, since time.Time) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
	// SumDuration totals duration_seconds for sessions starting at or
	// after since. A nil since sums every session.
	SumDuration(ctx context.Context, since *time.Time) (float64, error)
	Count(ctx context.Context) (int, error)
}

type WeeklyGoalRepo interface {
	Get(ctx context.Context) (*domain.WeeklyGoal, error)
	Upsert(ctx context.Context, g *domain.WeeklyGoal) error
}
