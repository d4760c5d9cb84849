package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/practicelog/internal/clock"
	"github.com/alexanderramin/practicelog/internal/db"
	"github.com/alexanderramin/practicelog/internal/domain"
	"github.com/alexanderramin/practicelog/internal/repository"
)

type statsService struct {
	sessions repository.SessionRepo
	goals    repository.WeeklyGoalRepo
	uow      db.UnitOfWork
	clock    clock.Clock
	observer UseCaseObserver
}

func NewStatsService(
	sessions repository.SessionRepo,
	goals repository.WeeklyGoalRepo,
	uow db.UnitOfWork,
	clk clock.Clock,
	observers ...UseCaseObserver,
) StatsService {
	return &statsService{
		sessions: sessions,
		goals:    goals,
		uow:      uow,
		clock:    clk,
		observer: useCaseObserverOrNoop(observers),
	}
}

// GetStats sums practice over the calendar week (from Monday), month and
// year containing the current local time.
func (s *statsService) GetStats(ctx context.Context) (*domain.Stats, error) {
	periods := domain.PeriodsAt(s.clock.Now())

	weekly, err := s.sessions.SumDuration(ctx, &periods.WeekStart)
	if err != nil {
		return nil, err
	}
	monthly, err := s.sessions.SumDuration(ctx, &periods.MonthStart)
	if err != nil {
		return nil, err
	}
	yearly, err := s.sessions.SumDuration(ctx, &periods.YearStart)
	if err != nil {
		return nil, err
	}
	total, err := s.sessions.SumDuration(ctx, nil)
	if err != nil {
		return nil, err
	}
	count, err := s.sessions.Count(ctx)
	if err != nil {
		return nil, err
	}
	target, err := s.WeeklyTarget(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		WeeklySeconds:            weekly,
		MonthlySeconds:           monthly,
		YearlySeconds:            yearly,
		TotalSeconds:             total,
		TotalSessions:            count,
		WeeklyTargetSeconds:      target,
		WeeklyProgressPercentage: domain.ProgressPct(weekly, target),
	}, nil
}

func (s *statsService) WeeklyTarget(ctx context.Context) (float64, error) {
	g, err := s.goals.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading weekly goal: %w", err)
	}
	return g.TargetSeconds, nil
}

func (s *statsService) SetWeeklyTarget(ctx context.Context, seconds float64) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "set-weekly-target",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"target_seconds": seconds},
		})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteWeeklyGoalRepo(tx)

		g, err := txGoals.Get(ctx)
		if err != nil {
			// A missing row is recreated rather than treated as fatal.
			g = &domain.WeeklyGoal{TargetSeconds: domain.DefaultWeeklyTargetSeconds}
		}
		if err := g.SetTarget(seconds, s.clock.Now()); err != nil {
			return err
		}
		return txGoals.Upsert(ctx, g)
	})
}
