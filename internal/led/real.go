//go:build linux

package led

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealDriver drives indicator LEDs on actual hardware using the Linux GPIO
// character device.
type RealDriver struct {
	chip  *gpiocdev.Chip
	left  *gpiocdev.Line
	right *gpiocdev.Line
}

// NewRealDriver requests the two output lines, initially off.
func NewRealDriver(pinLeft, pinRight int) (*RealDriver, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	leftLine, err := chip.RequestLine(pinLeft, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request left pin %d: %w", pinLeft, err)
	}

	rightLine, err := chip.RequestLine(pinRight, gpiocdev.AsOutput(0))
	if err != nil {
		leftLine.Close()
		chip.Close()
		return nil, fmt.Errorf("request right pin %d: %w", pinRight, err)
	}

	return &RealDriver{
		chip:  chip,
		left:  leftLine,
		right: rightLine,
	}, nil
}

// Set drives both indicator lines.
func (d *RealDriver) Set(left, right bool) error {
	if err := d.left.SetValue(lineValue(left)); err != nil {
		return fmt.Errorf("set left led: %w", err)
	}
	if err := d.right.SetValue(lineValue(right)); err != nil {
		return fmt.Errorf("set right led: %w", err)
	}
	return nil
}

// Close turns the indicators off and releases GPIO resources.
func (d *RealDriver) Close() error {
	var errs []error

	if d.left != nil {
		if err := d.left.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear left led: %w", err))
		}
		if err := d.left.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close left led: %w", err))
		}
	}
	if d.right != nil {
		if err := d.right.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear right led: %w", err))
		}
		if err := d.right.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close right led: %w", err))
		}
	}
	if d.chip != nil {
		if err := d.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

func lineValue(on bool) int {
	if on {
		return 1
	}
	return 0
}
