package system

import (
	"log/slog"
	"math"

	"github.com/lixenwraith/chainburst/component"
	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/vmath"
)

// SpawnExplosion creates an explosion entity at point with the given chain depth
// Starts at zero radius; spawned before the explosion system runs, it is aged
// by that frame's delta like any other live explosion
func SpawnExplosion(w *engine.World, point vmath.Vec2, chain uint32) core.Entity {
	cfg := w.Resource.Config
	e := w.CreateEntity()

	// Hue cycles once per second of game time
	_, frac := math.Modf(w.Resource.Time.Elapsed.Seconds())

	w.Component.Explosion.Set(e, component.ExplosionComponent{
		Remaining: cfg.ExplosionDuration,
		Duration:  cfg.ExplosionDuration,
		Chain:     chain,
		Hue:       360 * frac,
	})
	w.Component.Transform.Set(e, component.TransformComponent{
		Translation: point,
		Scale:       0,
	})

	slog.Debug("spawn", "entity", e, "kind", "explosion", "chain", chain, "x", point.X, "y", point.Y)
	return e
}

// SpawnBomb creates a breakable bomb entity at point
func SpawnBomb(w *engine.World, point vmath.Vec2, willExplode bool) core.Entity {
	e := w.CreateEntity()

	w.Component.Bomb.Set(e, component.BombComponent{})
	w.Component.Breakable.Set(e, component.BreakableComponent{WillExplode: willExplode})
	w.Component.Transform.Set(e, component.TransformComponent{
		Translation: point,
		Scale:       1,
	})

	slog.Debug("spawn", "entity", e, "kind", "bomb", "x", point.X, "y", point.Y)
	return e
}
