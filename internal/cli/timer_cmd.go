package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alexanderramin/practicelog/internal/cli/formatter"
	"github.com/alexanderramin/practicelog/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newStopwatchCmd(app *App) *cobra.Command {
	var headless bool
	cmd := &cobra.Command{
		Use:     "stopwatch",
		Aliases: []string{"sw"},
		Short:   "Time an open-ended sitting",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimer(cmd, app, timer.ModeStopwatch, 0, headless)
		},
	}
	registerHeadless(cmd.Flags(), &headless)
	return cmd
}

func newCountdownCmd(app *App) *cobra.Command {
	var flags countdownFlags
	cmd := &cobra.Command{
		Use:     "countdown",
		Aliases: []string{"cd"},
		Short:   "Sit for a fixed length of time",
		Long: `Sit for a fixed length of time. The session is logged when the
countdown runs out or when you finish early.

Without duration flags on a terminal, a picker offers the presets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveCountdown(cmd, app, &flags)
			if err != nil {
				return err
			}
			return runTimer(cmd, app, timer.ModeCountdown, target, flags.headless)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

// resolveCountdown picks the countdown length from flags, or from the
// picker when running on a terminal without flags.
func resolveCountdown(cmd *cobra.Command, app *App, flags *countdownFlags) (time.Duration, error) {
	if flags.given(cmd.Flags()) || flags.headless || !app.interactive() {
		return flags.target()
	}

	var choice countdownChoice
	form := countdownForm(app.presets(), &choice)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, fmt.Errorf("countdown cancelled")
		}
		return 0, fmt.Errorf("countdown picker: %w", err)
	}
	return choice.Target()
}

// presets returns the configured countdown presets, falling back to the
// built-in ones.
func (a *App) presets() []time.Duration {
	if len(a.Config.Presets) > 0 {
		return a.Config.Presets
	}
	out := make([]time.Duration, len(timer.DefaultPresets))
	for i, p := range timer.DefaultPresets {
		out[i] = p.Duration
	}
	return out
}

// newEngine builds an engine wired to the store, bell and logger.
func (a *App) newEngine(mode timer.Mode, display timer.DisplaySink, onRefresh timer.RefreshFunc, bell io.Writer) *timer.Engine {
	log := a.logger()
	opts := []timer.Option{
		timer.WithTickInterval(a.Config.TickInterval),
		timer.WithDisplay(display),
		timer.WithLogger(log),
	}
	if a.Store != nil {
		opts = append(opts, timer.WithSubmitter(timer.NewStoreSubmitter(a.Store, onRefresh, log)))
	}
	if a.Config.Bell {
		opts = append(opts, timer.WithNotifier(bellNotifier(bell)))
	}
	return timer.NewEngine(mode, a.clock(), opts...)
}

func runTimer(cmd *cobra.Command, app *App, mode timer.Mode, target time.Duration, headless bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if headless || !app.interactive() {
		return runHeadless(ctx, cmd, app, mode, target)
	}
	return runInteractive(ctx, cmd, app, mode, target)
}

func runInteractive(ctx context.Context, cmd *cobra.Command, app *App, mode timer.Mode, target time.Duration) error {
	var quote func() string
	if app.Config.Quotes {
		quote = app.Quote
	}
	m, display, onRefresh := newTimerModel(ctx, mode, app.presets(), quote)
	e := app.newEngine(mode, display, onRefresh, cmd.ErrOrStderr())
	m.attach(e)
	defer e.Scheduler().Disarm()

	if mode == timer.ModeCountdown {
		e.Configure(target)
		if err := e.Start(); err != nil {
			return err
		}
	}

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("timer ui: %w", err)
	}
	return nil
}

// runHeadless drives the engine from line commands on stdin and prints a
// plain line whenever the display changes. Both modes start immediately.
func runHeadless(ctx context.Context, cmd *cobra.Command, app *App, mode timer.Mode, target time.Duration) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	var last timer.Frame
	display := timer.DisplayFunc(func(f timer.Frame) {
		if f.Text == last.Text && f.Phase == last.Phase {
			return
		}
		last = f
		fmt.Fprintln(out, formatter.FormatFrameLine(f))
	})
	var latest timer.Refresh
	onRefresh := func(_ context.Context, r timer.Refresh) { latest = r }

	e := app.newEngine(mode, display, onRefresh, errOut)
	if mode == timer.ModeCountdown {
		e.Configure(target)
	}

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	commands := make(chan timer.Command)
	go readCommands(readCtx, cmd.InOrStdin(), commands, mode)

	return timer.Run(ctx, e, commands, timer.RunOptions{
		StopWhenIdle: mode == timer.ModeCountdown,
		OnError: func(err error) {
			fmt.Fprintln(errOut, formatter.Failure(err.Error()))
		},
		OnComplete: func(rec timer.Record, err error) {
			if err != nil {
				return
			}
			fmt.Fprintln(out, formatter.Success(fmt.Sprintf("Logged %s session", formatter.FormatSeconds(rec.DurationSeconds))))
			if latest.Stats != nil {
				s := latest.Stats
				fmt.Fprintln(out, formatter.FormatGoal(s.WeeklySeconds, s.WeeklyTargetSeconds, s.WeeklyProgressPercentage))
			}
			if rec.AutoComplete && app.Config.Quotes && app.Quote != nil {
				fmt.Fprintln(out, formatter.Dim(app.Quote()))
			}
		},
	})
}

// readCommands turns stdin lines into engine commands. An empty line or
// "t" toggles; s, p, f and r start, pause, finish and reset; q quits.
// At end of input a stopwatch is finished and a countdown is resumed and
// left to run out.
func readCommands(ctx context.Context, in io.Reader, commands chan<- timer.Command, mode timer.Mode) {
	send := func(c timer.Command) bool {
		select {
		case commands <- c:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if !send(timer.CmdStart) {
		return
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		var c timer.Command
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "t", "toggle":
			c = timer.CmdToggle
		case "s", "start":
			c = timer.CmdStart
		case "p", "pause":
			c = timer.CmdPause
		case "f", "finish":
			c = timer.CmdFinish
		case "r", "reset":
			c = timer.CmdReset
		case "q", "quit":
			close(commands)
			return
		default:
			continue
		}
		if !send(c) {
			return
		}
		// A reset countdown has no length left to run.
		if c == timer.CmdReset && mode == timer.ModeCountdown {
			close(commands)
			return
		}
	}

	if mode == timer.ModeStopwatch {
		if send(timer.CmdFinish) {
			close(commands)
		}
		return
	}
	send(timer.CmdStart)
}
