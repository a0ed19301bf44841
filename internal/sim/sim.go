// Package sim runs the linear typing pass over a loaded script.
package sim

import (
	"time"

	"github.com/frudas24/ghosttype/internal/keyinput"
	"github.com/frudas24/ghosttype/internal/script"
)

// WarmupDelay is how long the simulator waits before the first keystroke so
// the operator can move OS focus to the target window. It is a constant,
// independent of the configured delays.
const WarmupDelay = 500 * time.Millisecond

// Options holds the two run-constant typing delays.
type Options struct {
	// KeyDelay elapses between consecutive key events within one line.
	KeyDelay time.Duration
	// LineDelay elapses after each payload line before the next one starts.
	LineDelay time.Duration
}

// Simulator types script lines into the current OS input focus.
type Simulator struct {
	injector keyinput.Injector
	opts     Options
	sleep    func(time.Duration)
}

// New returns a simulator using the provided injector and delays.
func New(injector keyinput.Injector, opts Options) *Simulator {
	return &Simulator{
		injector: injector,
		opts:     opts,
		sleep:    time.Sleep,
	}
}

// Run waits the warm-up period, then types each non-comment line in file
// order and finishes with a single Enter press. Lines are injected verbatim,
// including any trailing newline; comment and empty lines are skipped with no
// delay charged. The Enter press happens even when no payload lines exist.
func (s *Simulator) Run(lines []string) error {
	s.sleep(WarmupDelay)
	for _, line := range lines {
		if script.IsComment(line) {
			continue
		}
		for i, r := range []rune(line) {
			if i > 0 {
				s.sleep(s.opts.KeyDelay)
			}
			if err := s.injector.PressChar(r); err != nil {
				return err
			}
		}
		s.sleep(s.opts.LineDelay)
	}
	return s.injector.Enter()
}
