package vmath

import "time"

// TriangleWave maps a countdown onto a ramp-up/ramp-down progress value
// 0 at spawn (remaining == total), 1 at the midpoint, 0 at expiry
// Returns 0 for a non-positive total
func TriangleWave(remaining, total time.Duration) float32 {
	if total <= 0 {
		return 0
	}
	if remaining < 0 {
		remaining = 0
	}
	if remaining > total {
		remaining = total
	}
	elapsed := total - remaining
	return 2 * float32(min(elapsed, remaining).Seconds()/total.Seconds())
}
