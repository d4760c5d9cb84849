// Package timer implements the stopwatch and countdown state machine.
//
// An Engine is driven by one control flow: commands (Start, Pause, Finish,
// Reset) and scheduler ticks (Poll) must not run concurrently. The only
// work that may leave that flow is Submit, which reads nothing but the
// Completion it is given.
package timer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/practicelog/internal/clock"
)

// Engine tracks one timer's session.
type Engine struct {
	mode      Mode
	clock     clock.Clock
	scheduler *Scheduler
	submitter Submitter
	notifier  CompletionNotifier
	display   DisplaySink
	logger    *slog.Logger

	state      state
	configured time.Duration
	target     time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler replaces the default scheduler.
func WithScheduler(s *Scheduler) Option {
	return func(e *Engine) { e.scheduler = s }
}

// WithTickInterval sets the period of the default scheduler.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) { e.scheduler = NewScheduler(e.clock, d) }
}

func WithSubmitter(s Submitter) Option {
	return func(e *Engine) { e.submitter = s }
}

func WithNotifier(n CompletionNotifier) Option {
	return func(e *Engine) { e.notifier = n }
}

func WithDisplay(d DisplaySink) Option {
	return func(e *Engine) { e.display = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine returns an idle engine. Without options it ticks every
// DefaultTickInterval, submits nowhere and displays nothing.
func NewEngine(mode Mode, clk clock.Clock, opts ...Option) *Engine {
	e := &Engine{
		mode:    mode,
		clock:   clk,
		display: nopDisplay{},
		state:   idle{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.scheduler == nil {
		e.scheduler = NewScheduler(clk, DefaultTickInterval)
	}
	if e.display == nil {
		e.display = nopDisplay{}
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	e.logger = e.logger.With("timer", mode.String())
	return e
}

func (e *Engine) Mode() Mode { return e.mode }

func (e *Engine) Phase() Phase { return e.state.phase() }

func (e *Engine) Scheduler() *Scheduler { return e.scheduler }

// Configured is the countdown length the next session will use.
func (e *Engine) Configured() time.Duration { return e.configured }

// Configure sets the countdown length for the next session. It is ignored
// on a stopwatch and while a session is open.
func (e *Engine) Configure(target time.Duration) {
	if e.mode != ModeCountdown {
		return
	}
	if _, ok := e.state.(idle); !ok {
		return
	}
	e.configured = target
	e.emit()
}

// Start opens a session or resumes a paused one. It does nothing while
// running or completing. A countdown with no positive configured length
// returns ErrInvalidDuration and stays idle.
func (e *Engine) Start() error {
	now := e.clock.Now()
	switch s := e.state.(type) {
	case running, completing:
		return nil
	case paused:
		e.state = running{session: s.session, before: s.before, segmentStart: now}
	case idle:
		if e.mode == ModeCountdown {
			if e.configured <= 0 {
				return fmt.Errorf("%w: got %s", ErrInvalidDuration, e.configured)
			}
			e.target = e.configured
		}
		e.state = running{session: now, segmentStart: now}
	}
	e.scheduler.Arm()
	e.emit()
	return nil
}

// Pause freezes the running segment. It does nothing unless running.
func (e *Engine) Pause() {
	s, ok := e.state.(running)
	if !ok {
		return
	}
	e.scheduler.Disarm()
	e.state = paused{session: s.session, before: s.elapsed(e.clock.Now())}
	e.emit()
}

// Elapsed is the accumulated running time of the open session.
func (e *Engine) Elapsed() time.Duration {
	return e.elapsedAt(e.clock.Now())
}

func (e *Engine) elapsedAt(now time.Time) time.Duration {
	switch s := e.state.(type) {
	case running:
		return s.elapsed(now)
	case paused:
		return s.before
	case completing:
		return s.total
	default:
		return 0
	}
}

// Remaining is the countdown time left, never negative. An idle countdown
// reports its configured length. A stopwatch always reports zero.
func (e *Engine) Remaining() time.Duration {
	return e.remainingAt(e.Elapsed())
}

func (e *Engine) remainingAt(elapsed time.Duration) time.Duration {
	if e.mode != ModeCountdown {
		return 0
	}
	if _, ok := e.state.(idle); ok {
		return e.configured
	}
	return max(e.target-elapsed, 0)
}

// Target is the countdown length of the open session, or the configured
// length while idle.
func (e *Engine) Target() time.Duration {
	if _, ok := e.state.(idle); ok {
		return e.configured
	}
	return e.target
}

// Snapshot reports the engine's state fields.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{Mode: e.mode, Phase: e.state.phase(), Target: e.target}
	switch s := e.state.(type) {
	case running:
		seg, start := s.segmentStart, s.session
		snap.HasSession = true
		snap.IsRunning = true
		snap.ElapsedBeforePause = s.before
		snap.RunSegmentStart = &seg
		snap.SessionStart = &start
	case paused:
		start := s.session
		snap.HasSession = true
		snap.ElapsedBeforePause = s.before
		snap.SessionStart = &start
	case completing:
		start := s.session
		snap.HasSession = true
		snap.IsCompleting = true
		snap.ElapsedBeforePause = s.total
		snap.SessionStart = &start
	}
	return snap
}

// Finish ends the open session and submits it, returning the engine to
// idle whatever the outcome. It returns (nil, nil) when there is nothing
// to finish: no session, a finish already in flight, or no elapsed time.
func (e *Engine) Finish(ctx context.Context, autoComplete bool) (*Record, error) {
	c, ok := e.BeginFinish(autoComplete)
	if !ok {
		return nil, nil
	}
	err := e.Complete(ctx, c)
	rec := c.Record
	return &rec, err
}

// BeginFinish latches the engine into completing and computes the record.
// The scheduler is disarmed before anything else happens. A session with
// less than a millisecond elapsed is discarded and the engine goes idle.
func (e *Engine) BeginFinish(autoComplete bool) (*Completion, bool) {
	now := e.clock.Now()

	var start time.Time
	var total time.Duration
	switch s := e.state.(type) {
	case running:
		start, total = s.session, s.elapsed(now)
	case paused:
		start, total = s.session, s.before
	default:
		return nil, false
	}

	e.scheduler.Disarm()

	// Sessions are stored at millisecond precision.
	total = total.Truncate(time.Millisecond)
	if total <= 0 {
		e.toIdle()
		e.emit()
		return nil, false
	}

	auto := autoComplete && e.mode == ModeCountdown && e.target > 0
	if auto {
		total = e.target
	}
	c := &Completion{Record: Record{
		Mode:            e.mode,
		StartTime:       start,
		EndTime:         now,
		DurationSeconds: total.Seconds(),
		AutoComplete:    auto,
	}}
	e.state = completing{session: start, total: total, token: c}
	e.emit()
	return c, true
}

// Submit notifies and submits c without touching engine state, so it may
// run away from the engine's control flow. The notifier runs first and
// only for countdown auto-completions.
func (e *Engine) Submit(ctx context.Context, c *Completion) error {
	if c.Record.AutoComplete {
		e.notify(ctx, c.Record)
	}
	if e.submitter == nil {
		return nil
	}
	err := e.submitter.Submit(ctx, c.Record)
	if err == nil {
		return nil
	}
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return err
	}
	return &SubmissionError{Record: c.Record, Err: err}
}

// Complete submits c and then settles it.
func (e *Engine) Complete(ctx context.Context, c *Completion) error {
	defer e.Settle(c)
	return e.Submit(ctx, c)
}

// Settle returns the engine to idle if it is still latched on c. A
// completion made stale by Reset is ignored.
func (e *Engine) Settle(c *Completion) {
	s, ok := e.state.(completing)
	if !ok || s.token != c {
		return
	}
	e.toIdle()
	e.emit()
}

// Reset discards any session and returns to idle, including while a
// submission is in flight. A countdown also forgets its configured length.
func (e *Engine) Reset() {
	e.scheduler.Disarm()
	e.toIdle()
	if e.mode == ModeCountdown {
		e.configured = 0
	}
	e.emit()
}

// Poll handles one scheduler tick: it refreshes the display and, when a
// running countdown has run out, begins an automatic finish. The caller
// must Complete (or Submit and Settle) the returned completion.
func (e *Engine) Poll() (*Completion, bool) {
	if r, ok := e.state.(running); ok && e.mode == ModeCountdown {
		if r.elapsed(e.clock.Now()) >= e.target {
			return e.BeginFinish(true)
		}
	}
	e.emit()
	return nil, false
}

// Frame describes the engine for display.
func (e *Engine) Frame() Frame {
	elapsed := e.Elapsed()
	f := Frame{
		Mode:      e.mode,
		Phase:     e.state.phase(),
		Elapsed:   elapsed,
		Remaining: e.remainingAt(elapsed),
		Target:    e.Target(),
	}
	f.Text = FrameText(f)
	return f
}

func (e *Engine) toIdle() {
	e.state = idle{}
	e.target = 0
}

func (e *Engine) emit() {
	e.display.Show(e.Frame())
}

func (e *Engine) notify(ctx context.Context, rec Record) {
	if e.notifier == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			e.logger.WarnContext(ctx, "completion notifier panicked", "panic", p)
		}
	}()
	if err := e.notifier.NotifyCompletion(ctx, rec); err != nil {
		e.logger.WarnContext(ctx, "completion notifier failed", "error", err)
	}
}
