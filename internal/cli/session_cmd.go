package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/practicelog/internal/cli/formatter"
	"github.com/alexanderramin/practicelog/internal/domain"
	"github.com/spf13/cobra"
)

// startLayout is the local-time format accepted by "session log --start".
const startLayout = "2006-01-02 15:04"

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage logged sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionLogCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListRecent(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(sessions, app.clock().Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Only show sessions from the last N days (0 = all)")
	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var duration time.Duration
	var start string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a session you timed elsewhere",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.clock().Now()
			begin := now.Add(-duration)
			if start != "" {
				t, err := time.ParseInLocation(startLayout, start, now.Location())
				if err != nil {
					return fmt.Errorf("invalid --start %q: use %q", start, startLayout)
				}
				begin = t
			}

			s := &domain.Session{
				StartTime:       begin.UTC(),
				EndTime:         begin.Add(duration).UTC(),
				DurationSeconds: duration.Seconds(),
			}
			if err := app.Sessions.Create(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessionLogged(s))
			return nil
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "Session length, e.g. 20m or 1h15m")
	cmd.Flags().StringVar(&start, "start", "", "Start time as \"YYYY-MM-DD HH:MM\" (default: duration ago)")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := app.Sessions.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("removing session %s: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Removed session "+formatter.TruncID(id)))
			return nil
		},
	}
}
