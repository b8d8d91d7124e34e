package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/event"
	"github.com/lixenwraith/chainburst/status"
)

// Resource holds singleton game resources, accessed via World.Resource
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Chain  *ChainResource
	Event  *EventQueueResource
	Audio  *AudioResource
	Clock  *Clock

	// Telemetry
	Status *status.Registry
}

// TimeResource is the per-frame time snapshot read by systems
// Updated by the Scheduler at the start of each frame
type TimeResource struct {
	Elapsed     time.Duration // Game time, frozen while paused
	Delta       time.Duration // Zero while paused
	Paused      bool
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(elapsed, delta time.Duration, paused bool, frame int64) {
	tr.Elapsed = elapsed
	tr.Delta = delta
	tr.Paused = paused
	tr.FrameNumber = frame
}

// ConfigResource holds world size and gameplay tunables
// Replaced wholesale on config reload under the world lock
type ConfigResource struct {
	Width  int
	Height int

	ExplosionRadius   float32
	ExplosionDuration time.Duration

	BombRadius      float32
	BombWillExplode bool

	ParallelDetect bool
	DetectWorkers  int // 0 = GOMAXPROCS
}

// DefaultConfigResource returns the built-in tunables
func DefaultConfigResource() *ConfigResource {
	return &ConfigResource{
		Width:             constant.ScreenWidth,
		Height:            constant.ScreenHeight,
		ExplosionRadius:   constant.ExplosionRadius,
		ExplosionDuration: constant.ExplosionDuration,
		BombRadius:        constant.BombRadius,
		BombWillExplode:   constant.BombWillExplode,
	}
}

// ChainResource is the maximum chain depth among live explosions
// Derived state, recomputed every frame
type ChainResource struct {
	Max uint32
}

// Display renders the chain counter, blank when zero
func (c *ChainResource) Display() string {
	if c.Max == 0 {
		return ""
	}
	return fmt.Sprintf("%d Chain(s)", c.Max)
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(req core.SoundRequest) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioResource wraps the audio player; Player may be nil when audio failed to start
type AudioResource struct {
	Player AudioPlayer
}

// Play forwards to the player, false when no player is attached
func (a *AudioResource) Play(req core.SoundRequest) bool {
	if a == nil || a.Player == nil {
		return false
	}
	return a.Player.Play(req)
}
