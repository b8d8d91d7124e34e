package component

// Damage is the pending-damage slot of a breakable
// Zero value means no damage; Hit carries the incoming chain depth
type Damage struct {
	Hit   bool
	Chain uint32
}

// Damaged builds a pending hit from an explosion of the given chain depth
func Damaged(chain uint32) Damage {
	return Damage{Hit: true, Chain: chain}
}

// BreakableComponent is destroyed on overlap with an explosion
// Incoming is written by the chain detector and consumed by the breakable
// system within the same frame
type BreakableComponent struct {
	WillExplode bool
	Incoming    Damage
}
