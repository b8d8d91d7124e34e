package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundDetonation SoundType = iota // Bomb set off by an explosion
	SoundSpawn                       // User-placed explosion
	SoundPause                       // Pause/resume toggle
	SoundTypeCount
)

// SoundRequest is a single playback request routed to the audio player
// Chain raises the pitch of detonations so deeper chains are audible
type SoundRequest struct {
	Type  SoundType
	Chain uint32
}
