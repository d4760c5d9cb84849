package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/practicelog/internal/clock"
	"github.com/alexanderramin/practicelog/internal/domain"
	"github.com/alexanderramin/practicelog/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	clock    clock.Clock
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, clk clock.Clock, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		clock:    clk,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Create(ctx context.Context, session *domain.Session) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"duration_seconds": session.DurationSeconds}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = session.Validate(); err != nil {
		return err
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = s.clock.Now().UTC()
	fields["session_id"] = session.ID

	return s.sessions.Create(ctx, session)
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.List(ctx)
}

func (s *sessionService) ListRecent(ctx context.Context, days int) ([]*domain.Session, error) {
	if days <= 0 {
		return s.sessions.List(ctx)
	}
	return s.sessions.ListSince(ctx, s.clock.Now().AddDate(0, 0, -days))
}

func (s *sessionService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"session_id": id},
		})
	}()

	if _, err = uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return s.sessions.Delete(ctx, id)
}
