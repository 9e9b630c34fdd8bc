package sim

import (
	"errors"
	"testing"

	"github.com/sweeney/rescue-rover/internal/control"
)

func TestFakeScriptAndRepeat(t *testing.T) {
	obs := []control.Observation{
		{Front: control.SensorReading{Distance: 0.5, Valid: true}},
		{Front: control.SensorReading{Distance: 0.2, Valid: true}},
	}
	f := NewFake(obs)

	got, err := f.Step(Actuators{LeftVelocity: 1})
	if err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if got.Front.Distance != 0.5 {
		t.Errorf("step 1 front: got %v, want 0.5", got.Front.Distance)
	}

	// The last observation repeats once the script is exhausted.
	for i := 0; i < 3; i++ {
		got, err = f.Step(Actuators{})
		if err != nil {
			t.Fatalf("step %d: %v", i+2, err)
		}
		if got.Front.Distance != 0.2 {
			t.Errorf("step %d front: got %v, want 0.2", i+2, got.Front.Distance)
		}
	}

	if len(f.Commands) != 4 {
		t.Errorf("commands recorded: got %d, want 4", len(f.Commands))
	}
	if f.Commands[0].LeftVelocity != 1 {
		t.Errorf("first command: got %+v", f.Commands[0])
	}
}

func TestFakeTerminateAfter(t *testing.T) {
	f := NewFake([]control.Observation{{}})
	f.TerminateAfter = 2

	for i := 0; i < 2; i++ {
		if _, err := f.Step(Actuators{}); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if _, err := f.Step(Actuators{}); !errors.Is(err, ErrTerminated) {
		t.Errorf("err: got %v, want ErrTerminated", err)
	}
}

func TestFakeStepError(t *testing.T) {
	f := NewFake([]control.Observation{{}})
	f.StepError = errors.New("boom")

	if _, err := f.Step(Actuators{}); err == nil {
		t.Fatal("expected error")
	}
	if len(f.Commands) != 0 {
		t.Error("failed step must not record a command")
	}
}

func TestFakeClose(t *testing.T) {
	f := NewFake(nil)
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !f.Closed {
		t.Error("expected Closed=true")
	}
}
