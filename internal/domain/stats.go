package domain

import (
	"fmt"
	"time"
)

// DefaultWeeklyTargetSeconds is the goal used until the user sets one.
const DefaultWeeklyTargetSeconds = 3600.0

// WeeklyGoal is the singleton practice target per week.
type WeeklyGoal struct {
	TargetSeconds float64
	UpdatedAt     time.Time
}

// SetTarget validates and applies a new target.
func (g *WeeklyGoal) SetTarget(seconds float64, now time.Time) error {
	if seconds <= 0 {
		return fmt.Errorf("%w: target must be greater than zero", ErrInvalidTarget)
	}
	g.TargetSeconds = seconds
	g.UpdatedAt = now
	return nil
}

// Stats aggregates logged practice over calendar periods.
type Stats struct {
	WeeklySeconds            float64
	MonthlySeconds           float64
	YearlySeconds            float64
	TotalSeconds             float64
	TotalSessions            int
	WeeklyTargetSeconds      float64
	WeeklyProgressPercentage float64
}

// ProgressPct returns weekly/target as a percentage, or 0 with no target.
// The result is not capped; going over the goal reports more than 100.
func ProgressPct(weeklySeconds, targetSeconds float64) float64 {
	if targetSeconds <= 0 {
		return 0
	}
	return weeklySeconds / targetSeconds * 100
}

// Periods holds the start instants of the reporting windows.
type Periods struct {
	WeekStart  time.Time
	MonthStart time.Time
	YearStart  time.Time
}

// PeriodsAt computes the windows containing now, in now's location.
// Weeks start on Monday at midnight.
func PeriodsAt(now time.Time) Periods {
	y, m, d := now.Date()
	loc := now.Location()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, loc)

	// time.Weekday is Sunday=0; shift so Monday=0.
	offset := (int(now.Weekday()) + 6) % 7

	return Periods{
		WeekStart:  midnight.AddDate(0, 0, -offset),
		MonthStart: time.Date(y, m, 1, 0, 0, 0, 0, loc),
		YearStart:  time.Date(y, time.January, 1, 0, 0, 0, 0, loc),
	}
}
