package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/practicelog/internal/domain"
)

// ErrInvalidID indicates a session id that is not a well-formed UUID.
var ErrInvalidID = errors.New("invalid session identifier")

type SessionService interface {
	// Create validates and stores s, assigning an ID if it has none.
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	ListRecent(ctx context.Context, days int) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type StatsService interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
	WeeklyTarget(ctx context.Context) (float64, error)
	SetWeeklyTarget(ctx context.Context, seconds float64) error
}
