package event

import "github.com/lixenwraith/chainburst/vmath"

// SpawnPayload carries the world point of a spawn request
type SpawnPayload struct {
	Point vmath.Vec2
}

// DetonationPayload describes a follow-on explosion created by a breakable
type DetonationPayload struct {
	Point vmath.Vec2
	Chain uint32 // Depth of the new explosion
}
