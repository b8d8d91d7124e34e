package constant

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation and rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick so a stalled frame cannot skip an explosion's lifetime
	MaxFrameDelta = 250 * time.Millisecond
)

// ECS & Resource Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = EventQueueSize - 1
)

// World dimensions (logical pixels, origin top-left, y down)
const (
	ScreenWidth  = 480
	ScreenHeight = 320
	WindowTitle  = "chainburst"
)
