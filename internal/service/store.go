package service

import (
	"context"
	"time"

	"github.com/alexanderramin/practicelog/internal/domain"
	"github.com/alexanderramin/practicelog/internal/timer"
)

// Store exposes the session and stats services as the timer's session
// store.
type Store struct {
	Sessions SessionService
	Stats    StatsService
}

var _ timer.SessionStore = (*Store)(nil)

func NewStore(sessions SessionService, stats StatsService) *Store {
	return &Store{Sessions: sessions, Stats: stats}
}

func (s *Store) CreateSession(ctx context.Context, startTime, endTime time.Time, durationSeconds float64) (string, error) {
	session := &domain.Session{
		StartTime:       startTime.UTC(),
		EndTime:         endTime.UTC(),
		DurationSeconds: durationSeconds,
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return session.ID, nil
}

func (s *Store) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	return s.Sessions.List(ctx)
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	return s.Sessions.Delete(ctx, id)
}

func (s *Store) GetStats(ctx context.Context) (*domain.Stats, error) {
	return s.Stats.GetStats(ctx)
}

func (s *Store) SetWeeklyTarget(ctx context.Context, seconds float64) error {
	return s.Stats.SetWeeklyTarget(ctx, seconds)
}
