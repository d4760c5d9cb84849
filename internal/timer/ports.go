package timer

import (
	"context"
	"time"

	"github.com/alexanderramin/practicelog/internal/domain"
)

// SessionStore is the persistence collaborator behind a Submitter.
type SessionStore interface {
	CreateSession(ctx context.Context, startTime, endTime time.Time, durationSeconds float64) (string, error)
	ListSessions(ctx context.Context) ([]*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*domain.Stats, error)
	SetWeeklyTarget(ctx context.Context, seconds float64) error
}

// CompletionNotifier is told once per countdown that runs out on its own,
// before the session is submitted. Its failures never affect submission.
type CompletionNotifier interface {
	NotifyCompletion(ctx context.Context, rec Record) error
}

// NotifierFunc adapts a function to CompletionNotifier.
type NotifierFunc func(ctx context.Context, rec Record) error

func (f NotifierFunc) NotifyCompletion(ctx context.Context, rec Record) error { return f(ctx, rec) }

// Frame is what a DisplaySink receives on each tick and transition.
type Frame struct {
	Mode      Mode
	Phase     Phase
	Elapsed   time.Duration
	Remaining time.Duration
	Target    time.Duration
	Text      string
}

// DisplaySink renders frames.
type DisplaySink interface {
	Show(f Frame)
}

// DisplayFunc adapts a function to DisplaySink.
type DisplayFunc func(f Frame)

func (f DisplayFunc) Show(fr Frame) { f(fr) }

type nopDisplay struct{}

func (nopDisplay) Show(Frame) {}
