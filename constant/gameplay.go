package constant

import "time"

// Explosion
const (
	// ExplosionRadius is the full-size radius reached at the timeline midpoint
	ExplosionRadius float32 = 40

	// ExplosionDuration is the grow-then-shrink lifetime
	ExplosionDuration = 1200 * time.Millisecond

	// ExplosionSaturation, ExplosionLightness feed the HSL explosion colour
	ExplosionSaturation = 0.9
	ExplosionLightness  = 0.9
)

// Bomb
const (
	// BombRadius is the fixed collision and draw radius of a bomb
	BombRadius float32 = 4

	// BombWillExplode is the default for newly spawned bombs
	BombWillExplode = true
)

// Chain Detector
const (
	// DetectParallelThreshold is the breakable count below which the parallel
	// detector falls back to the sequential scan
	DetectParallelThreshold = 64
)
