package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/practicelog/internal/cli/formatter"
	"github.com/alexanderramin/practicelog/internal/timer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// practiceHuhTheme styles huh forms with the formatter palette.
func practiceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// customChoice marks the "enter minutes and seconds" option.
const customChoice time.Duration = 0

// countdownChoice holds the values bound to the countdown picker.
type countdownChoice struct {
	Preset  time.Duration
	Minutes string
	Seconds string
}

// Target resolves the picker values into a countdown length.
func (c countdownChoice) Target() (time.Duration, error) {
	if c.Preset != customChoice {
		return c.Preset, nil
	}
	m, _ := strconv.Atoi(c.Minutes)
	s, _ := strconv.Atoi(c.Seconds)
	d := timer.TargetFromInputs(m, s)
	if d <= 0 {
		return 0, timer.ErrInvalidDuration
	}
	return d, nil
}

// countdownPresetOptions lists the presets followed by a custom entry.
func countdownPresetOptions(presets []time.Duration) []huh.Option[time.Duration] {
	opts := make([]huh.Option[time.Duration], 0, len(presets)+1)
	for _, p := range presets {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", formatter.FormatSeconds(p.Seconds()), timer.FormatMMSS(p.Seconds())), p))
	}
	return append(opts, huh.NewOption("Custom…", customChoice))
}

// countdownForm asks for a countdown length. The custom inputs appear only
// when the custom option is picked.
func countdownForm(presets []time.Duration, choice *countdownChoice) *huh.Form {
	if len(presets) > 0 && choice.Preset == customChoice {
		choice.Preset = presets[0]
	}
	choice.Minutes, choice.Seconds = "0", "0"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[time.Duration]().
				Title("Countdown length").
				Options(countdownPresetOptions(presets)...).
				Value(&choice.Preset),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes").
				Value(&choice.Minutes).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Seconds").
				Description("Values above 59 count as 59").
				Value(&choice.Seconds).
				Validate(validateNonNegativeInt),
		).WithHideFunc(func() bool { return choice.Preset != customChoice }),
	).WithTheme(practiceHuhTheme()).WithShowHelp(false)
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
