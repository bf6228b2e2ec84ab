package motion

import "math"

// Mix converts a Command into per-wheel power for a differential drive.
//
// Implementation:
//   - left = p·(1+d), right = p·(1−d).
//   - If either wheel exceeds 1 in magnitude, both are divided by the larger
//     magnitude, so the turn ratio is kept and full power is never exceeded.
//
// Examples: {1, 0} → (1, 1); {1, 1} → (1, 0); {0.5, -0.5} → (0.25, 0.75).
//
// Errors: ErrOutOfRange.
func Mix(cmd Command) (left, right float64, err error) {
	if err = cmd.Validate(); err != nil {
		return 0, 0, err
	}

	left = cmd.Power * (1 + cmd.Direction)
	right = cmd.Power * (1 - cmd.Direction)
	if m := math.Max(math.Abs(left), math.Abs(right)); m > 1 {
		left /= m
		right /= m
	}

	return clamp(left), clamp(right), nil
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
