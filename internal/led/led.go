// Package led mirrors the rover's indicator LEDs onto local GPIO lines, so a
// headless bench setup shows the deploy/fault pattern without the simulator
// UI. The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package led

// Driver drives the two indicator outputs.
type Driver interface {
	// Set drives the left and right indicators.
	Set(left, right bool) error

	// Close turns the indicators off and releases GPIO resources.
	Close() error
}

// Default pin numbers (BCM numbering) for the indicator outputs.
const (
	DefaultPinLeft  = 23
	DefaultPinRight = 24
)
