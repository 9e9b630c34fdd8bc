package sim

import (
	"errors"

	"github.com/sweeney/rescue-rover/internal/control"
)

// Fake is a scripted Port for tests. Each Step records the actuator command
// it was given and returns the next observation.
type Fake struct {
	// Observations contains scripted observations. Each call to Step
	// consumes the next one; when exhausted the last one repeats.
	Observations []control.Observation

	// Commands records every actuator command passed to Step.
	Commands []Actuators

	// StepError, if set, will be returned by Step.
	StepError error

	// TerminateAfter, if > 0, makes Step return ErrTerminated once that
	// many steps have been taken.
	TerminateAfter int

	// Closed tracks if Close was called.
	Closed bool

	index int
	steps int
}

// NewFake creates a Fake with the given observations.
func NewFake(observations []control.Observation) *Fake {
	return &Fake{Observations: observations}
}

// Step records the command and returns the next scripted observation.
func (f *Fake) Step(cmd Actuators) (control.Observation, error) {
	if f.StepError != nil {
		return control.Observation{}, f.StepError
	}
	if f.TerminateAfter > 0 && f.steps >= f.TerminateAfter {
		return control.Observation{}, ErrTerminated
	}
	if len(f.Observations) == 0 {
		return control.Observation{}, errors.New("no observations configured")
	}

	f.steps++
	f.Commands = append(f.Commands, cmd)

	obs := f.Observations[f.index]
	if f.index < len(f.Observations)-1 {
		f.index++
	}
	return obs, nil
}

// Close marks the port as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}

// Reset rewinds the script and clears recorded commands.
func (f *Fake) Reset() {
	f.index = 0
	f.steps = 0
	f.Commands = nil
	f.Closed = false
}
