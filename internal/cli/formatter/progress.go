package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a goal bar like [████░░░░] 45%. pct is a
// percentage; the bar saturates at 100 but the label shows the real value.
// Reaching the goal turns the bar green; under a third is red.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if width < 2 {
		width = 2
	}

	frac := min(pct/100, 1)
	filled := int(frac * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	switch {
	case frac >= 1:
		style = StyleGreen
	case frac < 0.33:
		style = StyleRed
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct)
}
