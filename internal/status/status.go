// Package status provides a thread-safe status tracker for the rescue-rover
// daemon. It is read by the HTTP handlers, the live telemetry feed, and the
// MQTT system events.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/rescue-rover/internal/control"
)

// Config contains daemon configuration for display.
type Config struct {
	SimAddr       string
	Broker        string
	Channel       int
	TimeStepMs    int
	HTTPAddr      string
	SurvivorLabel string
}

// Snapshot is a point-in-time view of rover state. It is a value type and
// stays valid after the tracker lock is released.
type Snapshot struct {
	State control.State
	Timer int
	Tick  uint64

	Front float64
	Left  float64
	Right float64

	Tilted           bool
	SurvivorDetected bool

	LeftSpeed  float64
	RightSpeed float64

	SurvivorsSignaled int
	RadioConnected    bool

	StartTime time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			State:     control.StateSearching,
			Front:     control.NoReading,
			Left:      control.NoReading,
			Right:     control.NoReading,
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update records the outcome of one control tick.
// Called from the run loop on every tick.
func (t *Tracker) Update(res control.StepResult, frame control.Frame) {
	t.mu.Lock()
	t.snap.State = res.State
	t.snap.Timer = res.Timer
	t.snap.Tick = res.Tick + 1 // ticks completed
	t.snap.Front = frame.Front
	t.snap.Left = frame.Left
	t.snap.Right = frame.Right
	t.snap.Tilted = frame.Tilted
	t.snap.SurvivorDetected = frame.SurvivorDetected
	t.snap.LeftSpeed = res.Command.Left
	t.snap.RightSpeed = res.Command.Right
	t.mu.Unlock()
}

// AddSignal counts one successfully sent survivor signal.
func (t *Tracker) AddSignal() {
	t.mu.Lock()
	t.snap.SurvivorsSignaled++
	t.mu.Unlock()
}

// SetRadioConnected sets the broker connection status.
func (t *Tracker) SetRadioConnected(connected bool) {
	t.mu.Lock()
	t.snap.RadioConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
