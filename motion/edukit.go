package motion

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
)

// Motors is the pin-level interface of a two-motor board. Values are signed
// fractions of full power in [-1, 1].
type Motors interface {
	SetLeft(v float64) error
	SetRight(v float64) error
}

// EduKit drives two powered wheels with differential steering.
// Construct with NewEduKit.
type EduKit struct {
	mu     sync.Mutex
	motors Motors
	closed bool
	moving bool
	last   Command

	log      logr.Logger
	reverse  bool
	maxPower float64
	invertL  bool
	invertR  bool
}

// Option configures an EduKit.
type Option func(*EduKit)

// WithLogger sets the logger; commands are logged at V(1).
func WithLogger(log logr.Logger) Option {
	return func(e *EduKit) { e.log = log }
}

// WithPolarity inverts the left and/or right motor, for boards wired
// backwards. Applied after mixing.
func WithPolarity(invertLeft, invertRight bool) Option {
	return func(e *EduKit) { e.invertL, e.invertR = invertLeft, invertRight }
}

// WithMaxPower scales every wheel value by p. Values outside (0, 1] are
// ignored.
func WithMaxPower(p float64) Option {
	return func(e *EduKit) {
		if p > 0 && p <= 1 {
			e.maxPower = p
		}
	}
}

// WithoutReverse rejects negative power with ErrNoReverse.
func WithoutReverse() Option {
	return func(e *EduKit) { e.reverse = false }
}

// NewEduKit wraps motors. Reverse is supported unless WithoutReverse is given.
func NewEduKit(motors Motors, opts ...Option) *EduKit {
	e := &EduKit{
		motors:   motors,
		log:      logr.Discard(),
		reverse:  true,
		maxPower: 1,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Reverse reports whether negative power is accepted.
func (e *EduKit) Reverse() bool { return e.reverse }

// Move mixes cmd into wheel values and writes them to the motors.
//
// Errors: ErrStopped, ErrOutOfRange, ErrNoReverse, or a Motors error.
func (e *EduKit) Move(cmd Command) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return fmt.Errorf("Move: %w", ErrStopped)
	}
	if cmd.Power < 0 && !e.reverse {
		return fmt.Errorf("Move(%s): %w", cmd, ErrNoReverse)
	}
	left, right, err := Mix(cmd)
	if err != nil {
		return fmt.Errorf("Move: %w", err)
	}
	left, right = e.wheels(left, right)
	if err = e.write(left, right); err != nil {
		return fmt.Errorf("Move(%s): %w", cmd, err)
	}

	e.moving, e.last = true, cmd
	e.log.V(1).Info("move", "power", cmd.Power, "direction", cmd.Direction, "left", left, "right", right)

	return nil
}

// wheels applies max power and polarity to mixed values.
func (e *EduKit) wheels(left, right float64) (float64, float64) {
	left, right = clamp(left*e.maxPower), clamp(right*e.maxPower)
	if e.invertL {
		left = -left
	}
	if e.invertR {
		right = -right
	}

	return left, right
}

func (e *EduKit) write(left, right float64) error {
	if err := e.motors.SetLeft(left); err != nil {
		return fmt.Errorf("left motor: %w", err)
	}
	if err := e.motors.SetRight(right); err != nil {
		return fmt.Errorf("right motor: %w", err)
	}

	return nil
}

// Stop sets both motors to zero.
//
// Errors: ErrStopped, or a Motors error.
func (e *EduKit) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return fmt.Errorf("Stop: %w", ErrStopped)
	}

	return e.stopLocked()
}

func (e *EduKit) stopLocked() error {
	if err := e.write(0, 0); err != nil {
		return fmt.Errorf("Stop: %w", err)
	}
	if e.moving {
		e.log.V(1).Info("stop")
	}
	e.moving = false

	return nil
}

// Moving reports whether the last successful call was a Move, and its command.
func (e *EduKit) Moving() (Command, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.last, e.moving
}

// Close stops the motors and rejects further calls with ErrStopped.
// Closing twice is a no-op.
func (e *EduKit) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	return e.stopLocked()
}
