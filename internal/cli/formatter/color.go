package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/practicelog/internal/timer"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhasePill returns a colored indicator for an engine phase.
func PhasePill(p timer.Phase) string {
	switch p {
	case timer.PhaseRunning:
		return StyleGreen.Render("● RUNNING")
	case timer.PhasePaused:
		return StyleYellow.Render("‖ PAUSED")
	case timer.PhaseCompleting:
		return StylePurple.Render("◌ SAVING")
	default:
		return StyleDim.Render("○ READY")
	}
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success and Failure style one-line command results.
func Success(text string) string {
	return StyleGreen.Render("✔ ") + text
}

func Failure(text string) string {
	return StyleRed.Render("✖ ") + text
}
