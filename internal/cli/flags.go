package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/practicelog/internal/timer"
	"github.com/spf13/pflag"
)

// countdownFlags are the duration inputs shared by the countdown command.
type countdownFlags struct {
	minutes  int
	seconds  int
	preset   time.Duration
	headless bool
}

func (f *countdownFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.minutes, "minutes", "m", 0, "Countdown minutes")
	fs.IntVarP(&f.seconds, "seconds", "s", 0, "Countdown seconds (capped at 59)")
	fs.DurationVarP(&f.preset, "preset", "p", 0, "Countdown length such as 5m (overrides --minutes/--seconds)")
	registerHeadless(fs, &f.headless)
}

func registerHeadless(fs *pflag.FlagSet, headless *bool) {
	fs.BoolVar(headless, "headless", false, "Read commands from stdin instead of drawing a terminal UI")
}

// given reports whether any duration flag was set on fs.
func (f *countdownFlags) given(fs *pflag.FlagSet) bool {
	return fs.Changed("minutes") || fs.Changed("seconds") || fs.Changed("preset")
}

// target resolves the flags into a countdown length.
func (f *countdownFlags) target() (time.Duration, error) {
	if f.preset != 0 {
		if f.preset < 0 {
			return 0, fmt.Errorf("%w: preset %s", timer.ErrInvalidDuration, f.preset)
		}
		return f.preset, nil
	}
	d := timer.TargetFromInputs(f.minutes, f.seconds)
	if d <= 0 {
		return 0, fmt.Errorf("%w: set --minutes or --seconds", timer.ErrInvalidDuration)
	}
	return d, nil
}
