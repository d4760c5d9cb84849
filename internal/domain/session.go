package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidSession indicates a session record failed validation.
	ErrInvalidSession = errors.New("invalid session")

	// ErrInvalidTarget indicates a non-positive weekly target.
	ErrInvalidTarget = errors.New("invalid weekly target")
)

// Session is one completed practice interval.
type Session struct {
	ID              string
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds float64
	CreatedAt       time.Time
}

// Validate checks the invariants every stored session must satisfy.
func (s *Session) Validate() error {
	if s.DurationSeconds <= 0 {
		return fmt.Errorf("%w: duration must be greater than zero", ErrInvalidSession)
	}
	if !s.EndTime.After(s.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidSession)
	}
	return nil
}

// Duration returns the logged duration as a time.Duration.
func (s *Session) Duration() time.Duration {
	return time.Duration(s.DurationSeconds * float64(time.Second))
}
