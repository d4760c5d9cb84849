package timer

import "time"

// Mode selects between an open-ended stopwatch and a bounded countdown.
type Mode int

const (
	ModeStopwatch Mode = iota
	ModeCountdown
)

func (m Mode) String() string {
	switch m {
	case ModeStopwatch:
		return "stopwatch"
	case ModeCountdown:
		return "countdown"
	default:
		return "unknown"
	}
}

// Phase is the coarse lifecycle position of an engine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseCompleting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseCompleting:
		return "completing"
	default:
		return "unknown"
	}
}

// state is the engine's tagged variant. Each concrete type carries only the
// fields that are meaningful in that phase.
type state interface {
	phase() Phase
}

type idle struct{}

type running struct {
	session      time.Time
	before       time.Duration
	segmentStart time.Time
}

type paused struct {
	session time.Time
	before  time.Duration
}

type completing struct {
	session time.Time
	total   time.Duration
	token   *Completion
}

func (idle) phase() Phase       { return PhaseIdle }
func (running) phase() Phase    { return PhaseRunning }
func (paused) phase() Phase     { return PhasePaused }
func (completing) phase() Phase { return PhaseCompleting }

// elapsed folds the open segment into the accumulated total. A clock that
// moved backwards contributes nothing.
func (r running) elapsed(now time.Time) time.Duration {
	d := now.Sub(r.segmentStart)
	if d < 0 {
		d = 0
	}
	return r.before + d
}

// Snapshot is a read-only view of an engine.
type Snapshot struct {
	Mode               Mode
	Phase              Phase
	HasSession         bool
	IsRunning          bool
	IsCompleting       bool
	ElapsedBeforePause time.Duration
	RunSegmentStart    *time.Time
	SessionStart       *time.Time
	Target             time.Duration
}

// Record is the interval handed to a Submitter when a session finishes.
type Record struct {
	Mode            Mode
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds float64
	AutoComplete    bool
}

// Completion identifies one in-flight finish. Settle only acts on the
// completion the engine is currently latched on.
type Completion struct {
	Record Record
}
