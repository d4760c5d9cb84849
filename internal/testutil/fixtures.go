package testutil

import (
	"time"

	"github.com/alexanderramin/practicelog/internal/domain"
	"github.com/google/uuid"
)

// SessionOption customizes a fixture session.
type SessionOption func(*domain.Session)

// WithStart moves the session to begin at start, keeping its duration.
func WithStart(start time.Time) SessionOption {
	return func(s *domain.Session) {
		d := s.EndTime.Sub(s.StartTime)
		s.StartTime = start
		s.EndTime = start.Add(d)
	}
}

// NewTestSession returns a valid session of the given length that ended
// one minute ago.
func NewTestSession(durationSeconds float64, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC().Truncate(time.Millisecond)
	end := now.Add(-time.Minute)
	s := &domain.Session{
		ID:              uuid.New().String(),
		StartTime:       end.Add(-time.Duration(durationSeconds * float64(time.Second))),
		EndTime:         end,
		DurationSeconds: durationSeconds,
		CreatedAt:       now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
