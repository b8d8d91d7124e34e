package event

// EventType represents the type of game event
type EventType int

const (
	// EventSpawnExplosionRequest places a depth-0 explosion
	// Trigger: Left click
	// Consumer: SpawnSystem | Payload: *SpawnPayload
	EventSpawnExplosionRequest EventType = iota + 1

	// EventSpawnBombRequest places a bomb
	// Trigger: Middle click
	// Consumer: SpawnSystem | Payload: *SpawnPayload
	EventSpawnBombRequest

	// EventPauseToggleRequest flips the clock between paused and running
	// Trigger: Right click
	// Consumer: ClockSystem | Payload: nil
	EventPauseToggleRequest

	// EventDetonation signals a breakable set off a follow-on explosion
	// Trigger: BreakableSystem
	// Consumer: AudioSystem | Payload: *DetonationPayload
	EventDetonation

	// EventWorldReset removes every entity and restarts the clock
	// Trigger: 'r' key in front-ends, benchmark between runs
	// Consumer: SpawnSystem, ClockSystem | Payload: nil
	EventWorldReset
)

var typeNames = map[EventType]string{
	EventSpawnExplosionRequest: "SpawnExplosionRequest",
	EventSpawnBombRequest:      "SpawnBombRequest",
	EventPauseToggleRequest:    "PauseToggleRequest",
	EventDetonation:            "Detonation",
	EventWorldReset:            "WorldReset",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Frame the event was pushed in
}
