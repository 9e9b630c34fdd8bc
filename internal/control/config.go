package control

// DefaultSurvivorLabel is the name field of survivor objects in the scene.
const DefaultSurvivorLabel = "SurvivorObstacle"

// Config holds the thresholds and speeds the controller runs with. The zero
// value is not useful; start from DefaultConfig.
type Config struct {
	// ObstacleDistance: avoid when the front reading is below this (meters).
	ObstacleDistance float64

	// TiltThreshold: tilted when the magnitude of either of the first two
	// accelerometer axes exceeds this.
	TiltThreshold float64

	// SurvivorRange: a recognized survivor only counts when the sensor that
	// saw it reads closer than this (meters).
	SurvivorRange float64

	// AidDeployTicks: how long the rover holds still to deploy aid.
	AidDeployTicks int

	// CruiseSpeed and TurnSpeed are wheel velocities (rad/s).
	CruiseSpeed float64
	TurnSpeed   float64

	// BlinkPeriod: deploy-indicator blink cycle in ticks; the lights are on
	// for the first half of each cycle.
	BlinkPeriod int
}

// DefaultConfig returns the tuning the rover ships with.
func DefaultConfig() Config {
	return Config{
		ObstacleDistance: 0.3,
		TiltThreshold:    3.5,
		SurvivorRange:    0.4,
		AidDeployTicks:   50,
		CruiseSpeed:      5.0,
		TurnSpeed:        4.0,
		BlinkPeriod:      4,
	}
}
