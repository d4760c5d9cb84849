package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/practicelog/internal/domain"
	"github.com/alexanderramin/practicelog/internal/timer"
)

// FormatSessionList renders sessions as a table in the order given, with
// times in now's location.
func FormatSessionList(sessions []*domain.Session, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No sessions logged yet.") + "\n"
	}

	rows := make([][]string, 0, len(sessions))
	var total float64
	for _, s := range sessions {
		start := s.StartTime.In(now.Location())
		end := s.EndTime.In(now.Location())
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanDate(start, now),
			start.Format("15:04"),
			end.Format("15:04"),
			timer.FormatHMS(s.DurationSeconds),
		})
		total += s.DurationSeconds
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"ID", "DATE", "START", "END", "DURATION"}, rows, AlignRight(4)))
	b.WriteString(Dim(fmt.Sprintf("%d sessions, %s total", len(sessions), FormatSeconds(total))))
	b.WriteString("\n")
	return b.String()
}

// FormatSessionLogged confirms a newly stored session.
func FormatSessionLogged(s *domain.Session) string {
	return Success(fmt.Sprintf("Logged %s session %s", timer.FormatHMS(s.DurationSeconds), TruncID(s.ID)))
}
