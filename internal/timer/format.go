package timer

import (
	"fmt"
	"math"
	"time"
)

// Preset is a named countdown length offered by pickers.
type Preset struct {
	Label    string
	Duration time.Duration
}

// DefaultPresets are the stock countdown lengths.
var DefaultPresets = []Preset{
	{Label: "2 min", Duration: 2 * time.Minute},
	{Label: "5 min", Duration: 5 * time.Minute},
	{Label: "10 min", Duration: 10 * time.Minute},
}

// FormatHMS renders seconds as HH:MM:SS, flooring fractions and clamping
// negatives to zero. Hours are not capped at 99.
func FormatHMS(seconds float64) string {
	s := wholeSeconds(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// FormatMMSS renders seconds as MM:SS with the same flooring and clamping
// as FormatHMS. Minutes are not wrapped into hours.
func FormatMMSS(seconds float64) string {
	s := wholeSeconds(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func wholeSeconds(seconds float64) int64 {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	return int64(math.Floor(seconds))
}

// TargetFromInputs combines minute and second inputs into a countdown
// length. Seconds above 59 count as 59 and a negative total becomes zero.
func TargetFromInputs(minutes, seconds int) time.Duration {
	if seconds > 59 {
		seconds = 59
	}
	total := minutes*60 + seconds
	if total < 0 {
		total = 0
	}
	return time.Duration(total) * time.Second
}

// FrameText is the display string for a frame: remaining time for a
// countdown, elapsed time for a stopwatch.
func FrameText(f Frame) string {
	if f.Mode == ModeCountdown {
		return FormatMMSS(f.Remaining.Seconds())
	}
	return FormatHMS(f.Elapsed.Seconds())
}
