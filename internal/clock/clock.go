// Package clock abstracts wall-clock reads and periodic tickers so timer
// code can be driven deterministically in tests.
//
// Production code uses Real(). Tests use Fake(start) and move time with
// Advance; tickers registered on a FakeClock fire only during Advance.
package clock

import (
	"sync"
	"time"
)

// Clock provides the time operations used by the timer engine and its
// tick scheduler.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time

	// NewTicker returns a Ticker delivering ticks on C every d.
	// Panics if d <= 0, matching time.NewTicker.
	NewTicker(d time.Duration) *Ticker
}

// Ticker wraps a periodic tick source. C has capacity 1; ticks are
// dropped when the consumer falls behind.
type Ticker struct {
	C <-chan time.Time

	stopFunc func()
	done     chan struct{}
	once     sync.Once
}

func newTicker(c <-chan time.Time, stop func()) *Ticker {
	return &Ticker{C: c, stopFunc: stop, done: make(chan struct{})}
}

// Stop turns the ticker off and closes Done. C is not closed.
// Calling Stop more than once is safe.
func (t *Ticker) Stop() {
	t.once.Do(func() {
		t.stopFunc()
		close(t.done)
	})
}

// Done is closed by Stop, releasing goroutines blocked on C.
func (t *Ticker) Done() <-chan struct{} { return t.done }

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) *Ticker {
	ticker := time.NewTicker(d)
	return newTicker(ticker.C, ticker.Stop)
}
