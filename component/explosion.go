package component

import "time"

// ExplosionComponent is a growing-then-expiring circular hazard
type ExplosionComponent struct {
	// Timing
	Remaining time.Duration // Countdown to despawn
	Duration  time.Duration // Total lifetime, fixed at spawn

	// Radius is the triangular progress 0 → 1 → 0, multiplied by the
	// configured explosion radius for drawing and collision
	Radius float32

	// Chain is the number of detonations since the user-initiated spawn
	Chain uint32

	// Hue in degrees, sampled from game time at spawn
	Hue float64
}
