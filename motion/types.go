package motion

import (
	"fmt"
	"math"
)

// Command is one movement instruction.
type Command struct {
	// Power is a fraction of full power in [-1, 1]; negative drives backwards.
	Power float64

	// Direction is a fraction of the tightest turn in [-1, 1]; 0 is straight,
	// negative turns left.
	Direction float64
}

func (c Command) String() string {
	return fmt.Sprintf("power=%.2f direction=%.2f", c.Power, c.Direction)
}

// Validate checks both fields are within [-1, 1].
//
// Errors: ErrOutOfRange.
func (c Command) Validate() error {
	if !unit(c.Power) {
		return fmt.Errorf("power %g: %w", c.Power, ErrOutOfRange)
	}
	if !unit(c.Direction) {
		return fmt.Errorf("direction %g: %w", c.Direction, ErrOutOfRange)
	}

	return nil
}

func unit(v float64) bool { return !math.IsNaN(v) && v >= -1 && v <= 1 }

// Driver is a motion device.
type Driver interface {
	// Move starts or updates the movement.
	Move(cmd Command) error

	// Stop halts both wheels. Stopping a stopped driver is a no-op.
	Stop() error

	// Reverse reports whether negative power is supported.
	Reverse() bool
}
