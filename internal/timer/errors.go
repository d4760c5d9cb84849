package timer

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration is returned by Start when a countdown has no positive
// target configured. No session is opened.
var ErrInvalidDuration = errors.New("timer duration must be greater than zero")

// SubmissionError reports that a finished session could not be recorded.
// The interval is lost; the engine has already returned to idle.
type SubmissionError struct {
	Record Record
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("saving %.1fs session: %v", e.Record.DurationSeconds, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
