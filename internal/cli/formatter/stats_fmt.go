package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/practicelog/internal/domain"
	"github.com/alexanderramin/practicelog/internal/timer"
)

const progressWidth = 24

// FormatStats renders the period totals and weekly goal progress.
func FormatStats(s *domain.Stats) string {
	label := func(text string) string { return StyleDim.Render(fmt.Sprintf("%-11s", text)) }

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", label("This week"), Bold(timer.FormatHMS(s.WeeklySeconds)))
	fmt.Fprintf(&b, "%s%s\n", label("This month"), timer.FormatHMS(s.MonthlySeconds))
	fmt.Fprintf(&b, "%s%s\n", label("This year"), timer.FormatHMS(s.YearlySeconds))
	fmt.Fprintf(&b, "%s%s\n", label("All time"), timer.FormatHMS(s.TotalSeconds))
	fmt.Fprintf(&b, "%s%d\n\n", label("Sessions"), s.TotalSessions)
	b.WriteString(FormatGoal(s.WeeklySeconds, s.WeeklyTargetSeconds, s.WeeklyProgressPercentage))

	return RenderBox("Practice", b.String())
}

// FormatGoal renders weekly progress against the target.
func FormatGoal(weeklySeconds, targetSeconds, pct float64) string {
	return fmt.Sprintf("%s %s\n%s",
		StyleHeader.Render("Weekly goal"),
		Dim(fmt.Sprintf("%s / %s", timer.FormatHMS(weeklySeconds), timer.FormatHMS(targetSeconds))),
		RenderProgress(pct, progressWidth),
	)
}
