package timer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/practicelog/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// phaseWatcher forwards frames to a channel so tests can wait for Run to
// process a command before moving the clock.
func phaseWatcher() (DisplaySink, <-chan Frame) {
	ch := make(chan Frame, 256)
	return DisplayFunc(func(f Frame) {
		select {
		case ch <- f:
		default:
		}
	}), ch
}

func waitForPhase(t *testing.T, frames <-chan Frame, want Phase) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case f := <-frames:
			if f.Phase == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for phase %s", want)
		}
	}
}

func startRun(t *testing.T, e *Engine, opts RunOptions) (chan<- Command, <-chan error) {
	t.Helper()
	commands := make(chan Command)
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), e, commands, opts)
	}()
	return commands, done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func TestRun_CountdownCompletesOnTick(t *testing.T) {
	display, frames := phaseWatcher()
	clk := clock.Fake(epoch)
	sub := &recordingSubmitter{}
	e := NewEngine(ModeCountdown, clk, WithSubmitter(sub), WithDisplay(display))
	e.Configure(3 * time.Second)

	var completed []Record
	commands, done := startRun(t, e, RunOptions{
		StopWhenIdle: true,
		OnComplete:   func(r Record, _ error) { completed = append(completed, r) },
	})

	commands <- CmdStart
	waitForPhase(t, frames, PhaseRunning)
	clk.Advance(4 * time.Second)

	require.NoError(t, waitDone(t, done))
	recs := sub.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, 3.0, recs[0].DurationSeconds)
	assert.True(t, recs[0].AutoComplete)
	assert.Equal(t, recs, completed)
	assert.Equal(t, 0, clk.ActiveTickers())
}

func TestRun_ToggleAndFinish(t *testing.T) {
	display, frames := phaseWatcher()
	clk := clock.Fake(epoch)
	sub := &recordingSubmitter{}
	e := NewEngine(ModeStopwatch, clk, WithSubmitter(sub), WithDisplay(display))

	commands, done := startRun(t, e, RunOptions{StopWhenIdle: true})

	commands <- CmdToggle
	waitForPhase(t, frames, PhaseRunning)
	clk.Advance(2 * time.Second)
	commands <- CmdToggle
	waitForPhase(t, frames, PhasePaused)
	commands <- CmdFinish

	require.NoError(t, waitDone(t, done))
	require.Len(t, sub.Records(), 1)
	assert.Equal(t, 2.0, sub.Records()[0].DurationSeconds)
}

func TestRun_ReportsErrorsAndKeepsGoing(t *testing.T) {
	display, frames := phaseWatcher()
	clk := clock.Fake(epoch)
	sub := &recordingSubmitter{err: errors.New("offline")}
	e := NewEngine(ModeCountdown, clk, WithSubmitter(sub), WithDisplay(display))

	var reported []error
	commands, done := startRun(t, e, RunOptions{OnError: func(err error) { reported = append(reported, err) }})

	// No target configured yet.
	commands <- CmdStart
	commands <- CmdFinish
	commands <- CmdReset
	waitForPhase(t, frames, PhaseIdle)
	close(commands)

	require.NoError(t, waitDone(t, done))
	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], ErrInvalidDuration)
	assert.Empty(t, sub.Records())
}

func TestRun_ReturnsSubmissionError(t *testing.T) {
	display, frames := phaseWatcher()
	clk := clock.Fake(epoch)
	sub := &recordingSubmitter{err: errors.New("offline")}
	e := NewEngine(ModeStopwatch, clk, WithSubmitter(sub), WithDisplay(display))

	commands, done := startRun(t, e, RunOptions{StopWhenIdle: true})
	commands <- CmdStart
	waitForPhase(t, frames, PhaseRunning)
	clk.Advance(time.Second)
	commands <- CmdFinish

	err := waitDone(t, done)
	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, PhaseIdle, e.Phase())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	clk := clock.Fake(epoch)
	e := NewEngine(ModeStopwatch, clk)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, e, make(chan Command), RunOptions{}) }()
	cancel()

	require.NoError(t, waitDone(t, done))
}
