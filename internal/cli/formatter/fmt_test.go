package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/practicelog/internal/domain"
	"github.com/alexanderramin/practicelog/internal/timer"
	"github.com/stretchr/testify/assert"
)

func TestFormatSessionList(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	sessions := []*domain.Session{
		{
			ID:              "aaaaaaaa-1111-4000-8000-000000000000",
			StartTime:       now.Add(-2 * time.Hour),
			EndTime:         now.Add(-2*time.Hour + 20*time.Minute),
			DurationSeconds: 1200,
		},
		{
			ID:              "bbbbbbbb-2222-4000-8000-000000000000",
			StartTime:       now.Add(-26 * time.Hour),
			EndTime:         now.Add(-26*time.Hour + 5*time.Minute),
			DurationSeconds: 300,
		},
	}

	got := stripANSI(FormatSessionList(sessions, now))

	assert.Contains(t, got, "aaaaaaaa")
	assert.Contains(t, got, "Today")
	assert.Contains(t, got, "10:00")
	assert.Contains(t, got, "00:20:00")
	assert.Contains(t, got, "Yesterday")
	assert.Contains(t, got, "2 sessions, 25m total")
}

func TestFormatSessionList_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatSessionList(nil, time.Now())), "No sessions logged yet.")
}

func TestFormatStats(t *testing.T) {
	got := stripANSI(FormatStats(&domain.Stats{
		WeeklySeconds:            1800,
		MonthlySeconds:           5400,
		YearlySeconds:            36000,
		TotalSeconds:             90000,
		TotalSessions:            42,
		WeeklyTargetSeconds:      3600,
		WeeklyProgressPercentage: 50,
	}))

	assert.Contains(t, got, "PRACTICE")
	assert.Contains(t, got, "00:30:00")
	assert.Contains(t, got, "01:30:00")
	assert.Contains(t, got, "25:00:00")
	assert.Contains(t, got, "42")
	assert.Contains(t, got, "00:30:00 / 01:00:00")
	assert.Contains(t, got, " 50%")
}

func TestRenderTimer(t *testing.T) {
	tests := []struct {
		name  string
		frame timer.Frame
		want  []string
	}{
		{
			name:  "idle countdown",
			frame: timer.Frame{Mode: timer.ModeCountdown, Phase: timer.PhaseIdle, Target: 5 * time.Minute, Text: "05:00"},
			want:  []string{"COUNTDOWN", "05:00", "READY", "of 05:00"},
		},
		{
			name:  "unconfigured countdown",
			frame: timer.Frame{Mode: timer.ModeCountdown, Phase: timer.PhaseIdle, Text: "00:00"},
			want:  []string{"no duration set"},
		},
		{
			name:  "paused stopwatch",
			frame: timer.Frame{Mode: timer.ModeStopwatch, Phase: timer.PhasePaused, Text: "00:01:05"},
			want:  []string{"STOPWATCH", "00:01:05", "PAUSED", "resume"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderTimer(tt.frame))
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestFormatFrameLine(t *testing.T) {
	f := timer.Frame{Mode: timer.ModeCountdown, Phase: timer.PhaseRunning, Target: time.Minute, Text: "00:42"}
	assert.Equal(t, "countdown 00:42 running of 01:00", FormatFrameLine(f))
}
