package timer

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/practicelog/internal/clock"
	"github.com/alexanderramin/practicelog/internal/domain"
)

var epoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type recordingSubmitter struct {
	mu      sync.Mutex
	records []Record
	err     error
}

func (s *recordingSubmitter) Submit(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return s.err
}

func (s *recordingSubmitter) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.records...)
}

type recordingDisplay struct {
	mu     sync.Mutex
	frames []Frame
}

func (d *recordingDisplay) Show(f Frame) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = append(d.frames, f)
}

func (d *recordingDisplay) Last() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames[len(d.frames)-1]
}

func (d *recordingDisplay) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.frames)
}

type fakeStore struct {
	created   []Record
	createErr error
	listErr   error
	statsErr  error
	lists     int
	statReads int
}

func (f *fakeStore) CreateSession(_ context.Context, start, end time.Time, seconds float64) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, Record{StartTime: start, EndTime: end, DurationSeconds: seconds})
	return "sess-1", nil
}

func (f *fakeStore) ListSessions(context.Context) ([]*domain.Session, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []*domain.Session{{ID: "sess-1"}}, nil
}

func (f *fakeStore) DeleteSession(context.Context, string) error { return nil }

func (f *fakeStore) GetStats(context.Context) (*domain.Stats, error) {
	f.statReads++
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &domain.Stats{TotalSessions: 1}, nil
}

func (f *fakeStore) SetWeeklyTarget(context.Context, float64) error { return nil }

func newTestEngine(mode Mode, opts ...Option) (*Engine, *clock.FakeClock, *recordingSubmitter) {
	clk := clock.Fake(epoch)
	sub := &recordingSubmitter{}
	all := append([]Option{WithSubmitter(sub)}, opts...)
	return NewEngine(mode, clk, all...), clk, sub
}

// pump delivers any buffered scheduler tick to the engine the way Run
// does, completing an auto-finish inline.
func pump(e *Engine) {
	select {
	case <-e.Scheduler().C():
		if c, ok := e.Poll(); ok {
			_ = e.Complete(context.Background(), c)
		}
	default:
	}
}

// advance moves the clock in tick-sized steps, pumping after each.
func advance(e *Engine, clk *clock.FakeClock, d time.Duration) {
	step := e.Scheduler().Period()
	for d > 0 {
		s := min(step, d)
		clk.Advance(s)
		pump(e)
		d -= s
	}
}
