// Package motion drives the vehicle along a planned route.
//
// A Driver is the capability the rest of the system talks to: Move applies a
// Command (power and direction), Stop halts the wheels, Close releases the
// hardware. Concrete drivers are picked at construction time:
//
//   - EduKit: two powered wheels with differential steering over a Motors
//     pin interface. Owns mixing, clamping, max-power scaling and per-wheel
//     polarity correction.
//   - Recorder: keeps every call in memory; used for dry runs and tests.
//
// Command ranges:
//
//	Power      [-1, 1]  fraction of full power; negative needs Reverse().
//	Direction  [-1, 1]  fraction of the tightest turn; negative turns left.
//
// Drive plays a sequence of Legs on any Driver: one forward Move per leg,
// held for distance / speed, then Stop. Cancellation stops the vehicle.
//
// All drivers are safe for concurrent use.
package motion
