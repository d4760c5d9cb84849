package repository

import (
	"fmt"
	"time"
)

// timeLayout is fixed-width so stored UTC timestamps sort and compare
// lexically in SQL.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// formatTime converts t to the stored UTC representation.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp, naming the column on failure.
func parseTime(column, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

// nowUTC returns the current time in the stored representation.
func nowUTC() string {
	return formatTime(time.Now())
}
