package timer

import (
	"context"
	"errors"
)

// Command is an operator action for Run.
type Command int

const (
	CmdStart Command = iota
	CmdPause
	CmdToggle
	CmdFinish
	CmdReset
)

func (c Command) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdToggle:
		return "toggle"
	case CmdFinish:
		return "finish"
	case CmdReset:
		return "reset"
	default:
		return "unknown"
	}
}

// RunOptions tunes Run.
type RunOptions struct {
	// StopWhenIdle returns after the first session completes, whether or
	// not its submission succeeded.
	StopWhenIdle bool

	// OnError receives start and submission errors. Run keeps going after
	// reporting them unless StopWhenIdle ends it.
	OnError func(error)

	// OnComplete receives each record after it settles.
	OnComplete func(Record, error)
}

// Run drives e from commands and scheduler ticks until ctx ends, the
// command channel closes, or (with StopWhenIdle) a session completes.
// Submissions happen inline, so no tick is processed while one is in
// flight. The returned error is the last submission error, if any.
func Run(ctx context.Context, e *Engine, commands <-chan Command, opts RunOptions) error {
	defer e.Scheduler().Disarm()

	report := func(err error) {
		if err != nil && opts.OnError != nil {
			opts.OnError(err)
		}
	}

	var lastErr error
	complete := func(c *Completion) bool {
		err := e.Complete(ctx, c)
		report(err)
		if opts.OnComplete != nil {
			opts.OnComplete(c.Record, err)
		}
		lastErr = err
		return opts.StopWhenIdle
	}

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return lastErr
			}
			return ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				return lastErr
			}
			switch cmd {
			case CmdStart:
				report(e.Start())
			case CmdPause:
				e.Pause()
			case CmdToggle:
				if e.Phase() == PhaseRunning {
					e.Pause()
				} else {
					report(e.Start())
				}
			case CmdFinish:
				open := e.Phase() != PhaseIdle
				c, ok := e.BeginFinish(false)
				if ok && complete(c) {
					return lastErr
				}
				// An empty session is discarded rather than submitted.
				if !ok && open && opts.StopWhenIdle && e.Phase() == PhaseIdle {
					return lastErr
				}
			case CmdReset:
				e.Reset()
			}

		case <-e.Scheduler().C():
			if c, ok := e.Poll(); ok && complete(c) {
				return lastErr
			}
		}
	}
}
