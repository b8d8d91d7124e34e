package constant

// System Execution Priorities (lower runs first)
// Order within a frame: detect → react → grow → aggregate → audio
const (
	PriorityChainDetect = 10
	PriorityBreakable   = 20 // Consumes damage written by detector in the same frame
	PriorityExplosion   = 30 // After breakable so follow-on explosions age this frame
	PriorityChainCount  = 40 // After growth so expired explosions are excluded
	PriorityAudio       = 900
)

// Event-only systems, Update is a no-op
const (
	PriorityClock = 1
	PrioritySpawn = 2
)
