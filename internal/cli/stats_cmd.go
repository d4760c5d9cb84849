package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/practicelog/internal/cli/formatter"
	"github.com/alexanderramin/practicelog/internal/timer"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show practice totals and weekly goal progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.GetStats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		},
	}
}

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Show or change the weekly practice goal",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the weekly goal and this week's progress",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				stats, err := app.Stats.GetStats(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(),
					formatter.FormatGoal(stats.WeeklySeconds, stats.WeeklyTargetSeconds, stats.WeeklyProgressPercentage))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set MINUTES",
			Short: "Set the weekly goal in minutes",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				minutes, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid minutes %q: %w", args[0], err)
				}
				seconds := minutes * 60
				if err := app.Stats.SetWeeklyTarget(cmd.Context(), seconds); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Weekly goal set to "+timer.FormatHMS(seconds)))
				return nil
			},
		},
	)

	return cmd
}
