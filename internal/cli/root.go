package cli

import (
	"log/slog"

	"github.com/alexanderramin/practicelog/internal/clock"
	"github.com/alexanderramin/practicelog/internal/config"
	"github.com/alexanderramin/practicelog/internal/service"
	"github.com/alexanderramin/practicelog/internal/timer"
	"github.com/spf13/cobra"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Sessions service.SessionService
	Stats    service.StatsService
	Store    timer.SessionStore
	Config   config.Config
	Clock    clock.Clock
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Quote picks a line to show after a countdown finishes on its own.
	// Nil disables quotes.
	Quote func() string
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func (a *App) clock() clock.Clock {
	if a.Clock == nil {
		return clock.Real()
	}
	return a.Clock
}

// NewRootCmd creates the top-level "practicelog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "practicelog",
		Short:         "Meditation timer and practice log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStopwatchCmd(app),
		newCountdownCmd(app),
		newSessionCmd(app),
		newStatsCmd(app),
		newGoalCmd(app),
	)

	return root
}
