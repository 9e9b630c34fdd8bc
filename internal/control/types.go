// Package control contains the pure control logic for the rescue rover.
// This package has NO external dependencies (no simulator, MQTT, GPIO, or
// wall-clock time). Time is counted in simulator ticks.
package control

// State identifies the behavior the rover is executing. Exactly one state is
// active per tick.
type State string

const (
	StateSearching        State = "SEARCHING"
	StateAvoidingObstacle State = "AVOIDING_OBSTACLE"
	StateDeployingAid     State = "DEPLOYING_AID"
	StateTilted           State = "TILTED"
)

// NoReading is the sentinel distance substituted for an absent sensor. It is
// far beyond every threshold, so a missing sensor never triggers avoidance or
// detection.
const NoReading = 999.0

// RecognizedObject is one entry from a sensor's recognition list. ID is the
// simulator's scene-node reference; Name is the resolved name field, empty
// when the node could not be resolved. Model is the node's model name, when
// the simulator reports one.
type RecognizedObject struct {
	ID    int
	Name  string
	Model string
}

// SensorReading is a single distance sensor's view for one tick.
type SensorReading struct {
	// Distance in meters.
	Distance float64
	// Objects recognized by this sensor this tick.
	Objects []RecognizedObject
	// Valid is false when the device is absent; the reading is then treated
	// as NoReading and the object list is ignored.
	Valid bool
}

// Observation is the raw per-tick input gathered from the devices.
type Observation struct {
	Front SensorReading
	Left  SensorReading
	Right SensorReading

	// Accel is the accelerometer vector; only the first two axes matter for
	// tilt detection.
	Accel      [3]float64
	AccelValid bool
}

// Frame is the per-tick snapshot the state machine consumes. It is built
// once per tick and never mutated.
type Frame struct {
	Front float64
	Left  float64
	Right float64

	Tilted           bool
	SurvivorDetected bool

	// DetectedBy names the sensor that saw the survivor ("front", "left" or
	// "right"); empty when SurvivorDetected is false.
	DetectedBy string
}

// MotorCommand is the pair of wheel velocities for one tick.
type MotorCommand struct {
	Left  float64
	Right float64
}

// Lights is the indicator LED pattern for one tick.
type Lights struct {
	Left  bool
	Right bool
}

// StepResult is everything one tick of the controller decided.
type StepResult struct {
	State   State
	Changed bool // state differs from the previous tick
	Timer   int  // aid-deploy ticks remaining after this tick
	Command MotorCommand
	Lights  Lights

	// Emit is true on the detection edge only: send the survivor signal
	// exactly once.
	Emit bool

	// Tick is the zero-based tick this result belongs to.
	Tick uint64
}
