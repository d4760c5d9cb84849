package timer

import (
	"time"

	"github.com/alexanderramin/practicelog/internal/clock"
)

// DefaultTickInterval is the refresh period while an engine runs.
const DefaultTickInterval = 250 * time.Millisecond

// Scheduler owns the periodic tick for one engine. It holds a live ticker
// only between Arm and Disarm.
type Scheduler struct {
	clock  clock.Clock
	period time.Duration
	ticker *clock.Ticker
	gen    uint64
}

// NewScheduler returns a disarmed scheduler. A non-positive period falls
// back to DefaultTickInterval.
func NewScheduler(clk clock.Clock, period time.Duration) *Scheduler {
	if period <= 0 {
		period = DefaultTickInterval
	}
	return &Scheduler{clock: clk, period: period}
}

// Arm starts ticking. Arming an armed scheduler does nothing.
func (s *Scheduler) Arm() {
	if s.ticker != nil {
		return
	}
	s.ticker = s.clock.NewTicker(s.period)
	s.gen++
}

// Disarm stops ticking. Disarming a disarmed scheduler does nothing.
func (s *Scheduler) Disarm() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

func (s *Scheduler) Armed() bool { return s.ticker != nil }

func (s *Scheduler) Period() time.Duration { return s.period }

// Generation increments on every Arm. Ticks tagged with an older
// generation belong to a ticker that has since been released.
func (s *Scheduler) Generation() uint64 { return s.gen }

// C is the current tick channel, or nil while disarmed so that a select
// on it blocks.
func (s *Scheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// Tick is one delivery from an armed scheduler.
type Tick struct {
	At         time.Time
	Generation uint64
}

// Await returns a blocking receive bound to the current ticker, for
// callers that wait for ticks on another goroutine. The function returns
// false once that ticker is disarmed. Await returns nil while disarmed.
func (s *Scheduler) Await() func() (Tick, bool) {
	if s.ticker == nil {
		return nil
	}
	t, gen := s.ticker, s.gen
	return func() (Tick, bool) {
		select {
		case at := <-t.C:
			return Tick{At: at, Generation: gen}, true
		case <-t.Done():
			return Tick{}, false
		}
	}
}
