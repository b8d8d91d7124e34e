package component

import "github.com/lixenwraith/chainburst/vmath"

// TransformComponent places an entity in world space
// Scale is the draw scale relative to the entity's base radius
type TransformComponent struct {
	Translation vmath.Vec2
	Scale       float32
}
