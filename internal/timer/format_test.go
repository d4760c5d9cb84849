package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{-5, "00:00:00"},
		{59.99, "00:00:59"},
		{61, "00:01:01"},
		{3600, "01:00:00"},
		{3725.4, "01:02:05"},
		{360000, "100:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHMS(tt.seconds), "FormatHMS(%v)", tt.seconds)
	}
}

func TestFormatMMSS(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{-1, "00:00"},
		{4.9, "00:04"},
		{90, "01:30"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMMSS(tt.seconds), "FormatMMSS(%v)", tt.seconds)
	}
}

func TestTargetFromInputs(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		seconds int
		want    time.Duration
	}{
		{name: "minutes only", minutes: 5, want: 5 * time.Minute},
		{name: "seconds clamped to 59", minutes: 1, seconds: 75, want: 119 * time.Second},
		{name: "negative total", minutes: -3, seconds: 10, want: 0},
		{name: "zero", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetFromInputs(tt.minutes, tt.seconds))
		})
	}
}

func TestFrameText(t *testing.T) {
	assert.Equal(t, "00:01:05", FrameText(Frame{Mode: ModeStopwatch, Elapsed: 65 * time.Second}))
	assert.Equal(t, "00:55", FrameText(Frame{Mode: ModeCountdown, Elapsed: 65 * time.Second, Remaining: 55 * time.Second}))
}
