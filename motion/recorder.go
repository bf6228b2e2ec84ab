package motion

import (
	"fmt"
	"sync"
)

// EventKind tells a recorded Move from a Stop.
type EventKind uint8

const (
	EventMove EventKind = iota
	EventStop
)

func (k EventKind) String() string {
	if k == EventStop {
		return "stop"
	}

	return "move"
}

// Event is one call seen by a Recorder.
type Event struct {
	Kind    EventKind
	Command Command // zero for EventStop
}

func (e Event) String() string {
	if e.Kind == EventStop {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s %s", e.Kind, e.Command)
}

// Recorder is an in-memory Driver. It validates commands like a real
// driver and keeps every accepted call.
type Recorder struct {
	mu      sync.Mutex
	reverse bool
	closed  bool
	events  []Event
}

// NewRecorder returns a Recorder; reverse controls Reverse().
func NewRecorder(reverse bool) *Recorder {
	return &Recorder{reverse: reverse}
}

func (r *Recorder) Reverse() bool { return r.reverse }

// Move records cmd.
//
// Errors: ErrStopped, ErrOutOfRange, ErrNoReverse.
func (r *Recorder) Move(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fmt.Errorf("Move: %w", ErrStopped)
	}
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("Move: %w", err)
	}
	if cmd.Power < 0 && !r.reverse {
		return fmt.Errorf("Move(%s): %w", cmd, ErrNoReverse)
	}
	r.events = append(r.events, Event{Kind: EventMove, Command: cmd})

	return nil
}

// Stop records a stop.
//
// Errors: ErrStopped.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fmt.Errorf("Stop: %w", ErrStopped)
	}
	r.events = append(r.events, Event{Kind: EventStop})

	return nil
}

// Close rejects further calls.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	return nil
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}
