package motion

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"
)

// Leg is one hop of a planned route.
type Leg struct {
	From, To string
	Distance float64
}

// HoldFunc keeps the current command applied for d, or returns early with
// ctx.Err() on cancellation.
type HoldFunc func(ctx context.Context, d time.Duration) error

// DriveOption configures Drive.
type DriveOption func(*driveConfig)

type driveConfig struct {
	cruise float64 // power per leg
	speed  float64 // distance units per second at cruise power
	hold   HoldFunc
	log    logr.Logger
}

// WithCruise sets the forward power used on every leg, in (0, 1].
func WithCruise(power float64) DriveOption {
	return func(c *driveConfig) {
		if power > 0 && power <= 1 {
			c.cruise = power
		}
	}
}

// WithSpeed sets the distance covered per second at cruise power.
func WithSpeed(unitsPerSecond float64) DriveOption {
	return func(c *driveConfig) {
		if unitsPerSecond > 0 && !math.IsInf(unitsPerSecond, 0) {
			c.speed = unitsPerSecond
		}
	}
}

// WithHold replaces the wall-clock wait between commands.
func WithHold(h HoldFunc) DriveOption {
	return func(c *driveConfig) {
		if h != nil {
			c.hold = h
		}
	}
}

// WithDriveLogger logs each leg at V(1).
func WithDriveLogger(log logr.Logger) DriveOption {
	return func(c *driveConfig) { c.log = log }
}

// Sleep is the default HoldFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Drive plays legs on d: for each leg one straight Move at cruise power held
// for Distance / speed, then a final Stop.
//
// Behavior highlights:
//   - All legs are validated before the first Move.
//   - On any failure or cancellation the driver is stopped; a Stop error is
//     combined with the cause.
//   - An empty plan only stops.
//
// Errors: ErrBadLeg, driver errors, ctx.Err().
func Drive(ctx context.Context, d Driver, legs []Leg, opts ...DriveOption) (err error) {
	cfg := driveConfig{cruise: 0.5, speed: 1, hold: Sleep, log: logr.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}
	for i, leg := range legs {
		if math.IsNaN(leg.Distance) || math.IsInf(leg.Distance, 0) || leg.Distance < 0 {
			return fmt.Errorf("Drive: leg %d %s->%s distance %g: %w", i, leg.From, leg.To, leg.Distance, ErrBadLeg)
		}
	}

	defer func() {
		if stopErr := d.Stop(); stopErr != nil {
			err = multierr.Append(err, fmt.Errorf("Drive: %w", stopErr))
		}
	}()

	cmd := Command{Power: cfg.cruise}
	for i, leg := range legs {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("Drive: leg %d: %w", i, err)
		}
		if err = d.Move(cmd); err != nil {
			return fmt.Errorf("Drive: leg %d: %w", i, err)
		}
		hold := time.Duration(leg.Distance / cfg.speed * float64(time.Second))
		cfg.log.V(1).Info("leg", "index", i, "from", leg.From, "to", leg.To, "distance", leg.Distance, "hold", hold)
		if err = cfg.hold(ctx, hold); err != nil {
			return fmt.Errorf("Drive: leg %d: %w", i, err)
		}
	}

	return nil
}
