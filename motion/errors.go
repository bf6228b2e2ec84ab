package motion

import "errors"

var (
	// ErrStopped indicates a call on a driver that has been closed.
	ErrStopped = errors.New("motion: driver closed")

	// ErrOutOfRange indicates a power or direction outside [-1, 1], or NaN.
	ErrOutOfRange = errors.New("motion: command out of range")

	// ErrNoReverse indicates negative power on a driver without reverse.
	ErrNoReverse = errors.New("motion: reverse not supported")

	// ErrBadLeg indicates a leg with a negative or non-finite distance.
	ErrBadLeg = errors.New("motion: invalid leg")
)
