package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/practicelog/internal/timer"
	"github.com/charmbracelet/lipgloss"
)

var styleClock = lipgloss.NewStyle().Foreground(ColorFg).Bold(true).Padding(0, 2)

// RenderTimer draws one display frame.
func RenderTimer(f timer.Frame) string {
	var b strings.Builder
	b.WriteString(styleClock.Render(f.Text))
	b.WriteString("\n\n")
	b.WriteString(PhasePill(f.Phase))

	switch f.Mode {
	case timer.ModeCountdown:
		if f.Target > 0 {
			b.WriteString(Dim(fmt.Sprintf("  of %s", timer.FormatMMSS(f.Target.Seconds()))))
		} else {
			b.WriteString(Dim("  no duration set"))
		}
	case timer.ModeStopwatch:
		if f.Phase == timer.PhasePaused {
			b.WriteString(Dim("  press space to resume"))
		}
	}
	return RenderBox(f.Mode.String(), b.String())
}

// FormatFrameLine is the plain one-line form of a frame, for output that
// is not a terminal.
func FormatFrameLine(f timer.Frame) string {
	line := fmt.Sprintf("%s %s %s", f.Mode, f.Text, f.Phase)
	if f.Mode == timer.ModeCountdown && f.Target > 0 {
		line += " of " + timer.FormatMMSS(f.Target.Seconds())
	}
	return line
}
