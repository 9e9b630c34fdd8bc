// Package sim binds the control loop to the host simulator.
// The real implementation speaks newline-delimited JSON over TCP.
// The fake implementation allows testing without a simulator.
package sim

import (
	"errors"

	"github.com/sweeney/rescue-rover/internal/control"
)

// Device names as they appear in the simulator scene.
const (
	DeviceLeftMotor     = "left wheel motor"
	DeviceRightMotor    = "right wheel motor"
	DeviceFrontSensor   = "ds_front"
	DeviceLeftSensor    = "ds_left"
	DeviceRightSensor   = "ds_right"
	DeviceAccelerometer = "accelerometer"
	DeviceLeftLED       = "left_led"
	DeviceRightLED      = "right_led"
)

// ErrTerminated is returned by Step when the simulation has ended.
var ErrTerminated = errors.New("sim: simulation terminated")

// Actuators is the command written back to the robot each tick.
type Actuators struct {
	LeftVelocity  float64
	RightVelocity float64
	LeftLED       bool
	RightLED      bool
}

// Capabilities records which named devices the simulator resolved at
// handshake.
type Capabilities struct {
	LeftMotor     bool
	RightMotor    bool
	FrontSensor   bool
	LeftSensor    bool
	RightSensor   bool
	Accelerometer bool
	LeftLED       bool
	RightLED      bool
}

// MotorsOK reports whether both wheel motors resolved. Missing motors are
// fatal: the rover cannot act without them.
func (c Capabilities) MotorsOK() bool {
	return c.LeftMotor && c.RightMotor
}

// Missing returns the names of absent optional devices, for startup warnings.
func (c Capabilities) Missing() []string {
	var names []string
	if !c.FrontSensor {
		names = append(names, DeviceFrontSensor)
	}
	if !c.LeftSensor {
		names = append(names, DeviceLeftSensor)
	}
	if !c.RightSensor {
		names = append(names, DeviceRightSensor)
	}
	if !c.Accelerometer {
		names = append(names, DeviceAccelerometer)
	}
	if !c.LeftLED {
		names = append(names, DeviceLeftLED)
	}
	if !c.RightLED {
		names = append(names, DeviceRightLED)
	}
	return names
}

// Port is the boundary the control loop drives the simulator through.
type Port interface {
	// Step delivers the actuator command for this tick and blocks until the
	// simulator supplies the next observation; the host owns all timing.
	// Returns ErrTerminated when the simulation ends.
	Step(cmd Actuators) (control.Observation, error)

	// Close releases the connection to the simulator.
	Close() error
}
