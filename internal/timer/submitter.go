package timer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/practicelog/internal/domain"
)

// Submitter records a finished session. It is called at most once per
// Completion.
type Submitter interface {
	Submit(ctx context.Context, rec Record) error
}

// Refresh carries the store's view after a successful submission. Err is
// set when the reads failed; the session itself is already recorded.
type Refresh struct {
	SessionID string
	Sessions  []*domain.Session
	Stats     *domain.Stats
	Err       error
}

// RefreshFunc receives the post-submission refresh.
type RefreshFunc func(ctx context.Context, r Refresh)

// StoreSubmitter submits records to a SessionStore and then re-reads the
// session list and stats.
type StoreSubmitter struct {
	store     SessionStore
	onRefresh RefreshFunc
	logger    *slog.Logger
}

// NewStoreSubmitter creates a StoreSubmitter. onRefresh and logger may be
// nil.
func NewStoreSubmitter(store SessionStore, onRefresh RefreshFunc, logger *slog.Logger) *StoreSubmitter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StoreSubmitter{store: store, onRefresh: onRefresh, logger: logger}
}

// Submit creates the session. A create failure is returned as a
// *SubmissionError and is not retried. Refresh failures only reach the
// RefreshFunc and the log.
func (s *StoreSubmitter) Submit(ctx context.Context, rec Record) error {
	id, err := s.store.CreateSession(ctx, rec.StartTime, rec.EndTime, rec.DurationSeconds)
	if err != nil {
		return &SubmissionError{Record: rec, Err: err}
	}
	s.logger.InfoContext(ctx, "session recorded",
		"session_id", id,
		"mode", rec.Mode.String(),
		"duration_seconds", rec.DurationSeconds,
		"auto_complete", rec.AutoComplete,
	)

	r := s.refresh(ctx)
	r.SessionID = id
	if r.Err != nil {
		s.logger.WarnContext(ctx, "refresh after submit failed", "error", r.Err)
	}
	if s.onRefresh != nil {
		s.onRefresh(ctx, r)
	}
	return nil
}

func (s *StoreSubmitter) refresh(ctx context.Context) Refresh {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return Refresh{Err: fmt.Errorf("listing sessions: %w", err)}
	}
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		return Refresh{Sessions: sessions, Err: fmt.Errorf("loading stats: %w", err)}
	}
	return Refresh{Sessions: sessions, Stats: stats}
}
