package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/vmath"
)

// ExplosionSystem ages explosions and despawns them when their timer runs out
// Live explosions follow a triangular radius: 0 → 1 at the midpoint → 0
type ExplosionSystem struct {
	world   *engine.World
	expired []core.Entity // Reused across frames

	statExpired *atomic.Int64
}

func NewExplosionSystem(world *engine.World) *ExplosionSystem {
	return &ExplosionSystem{
		world:       world,
		statExpired: world.Resource.Status.Ints.Get("explosion.expired"),
	}
}

func (s *ExplosionSystem) Init() {}

func (s *ExplosionSystem) Name() string {
	return "explosion"
}

func (s *ExplosionSystem) Priority() int {
	return constant.PriorityExplosion
}

func (s *ExplosionSystem) Update() {
	w := s.world
	dt := w.Resource.Time.Delta
	s.expired = s.expired[:0]

	for _, e := range w.Component.Explosion.All() {
		exp, ok := w.Component.Explosion.Get(e)
		if !ok {
			continue
		}

		exp.Remaining = max(exp.Remaining-dt, 0)
		if exp.Remaining == 0 {
			s.expired = append(s.expired, e)
			slog.Debug("despawn", "entity", e, "kind", "explosion", "chain", exp.Chain)
			continue
		}

		exp.Radius = vmath.TriangleWave(exp.Remaining, exp.Duration)
		w.Component.Explosion.Set(e, exp)

		if tr, ok := w.Component.Transform.Get(e); ok {
			tr.Scale = exp.Radius
			w.Component.Transform.Set(e, tr)
		}
	}

	if len(s.expired) > 0 {
		s.statExpired.Add(int64(w.DestroyEntities(s.expired)))
	}
}
