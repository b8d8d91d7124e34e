package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/event"
)

// BreakableSystem consumes damage marked by the chain detector
// A damaged breakable is despawned; if it will explode, a follow-on explosion
// one chain deeper takes its place
type BreakableSystem struct {
	world *engine.World

	statDestroyed *atomic.Int64
	statDetonated *atomic.Int64
}

func NewBreakableSystem(world *engine.World) *BreakableSystem {
	return &BreakableSystem{
		world:         world,
		statDestroyed: world.Resource.Status.Ints.Get("breakable.destroyed"),
		statDetonated: world.Resource.Status.Ints.Get("breakable.detonated"),
	}
}

func (s *BreakableSystem) Init() {}

func (s *BreakableSystem) Name() string {
	return "breakable"
}

func (s *BreakableSystem) Priority() int {
	return constant.PriorityBreakable
}

func (s *BreakableSystem) Update() {
	w := s.world

	for _, e := range w.Component.Breakable.All() {
		b, ok := w.Component.Breakable.Get(e)
		if !ok || !b.Incoming.Hit {
			continue
		}
		tr, _ := w.Component.Transform.Get(e)

		w.DestroyEntity(e)
		s.statDestroyed.Add(1)
		slog.Debug("despawn", "entity", e, "kind", "breakable", "incoming", b.Incoming.Chain)

		if !b.WillExplode {
			continue
		}

		chain := b.Incoming.Chain + 1
		SpawnExplosion(w, tr.Translation, chain)
		s.statDetonated.Add(1)
		w.PushEvent(event.EventDetonation, &event.DetonationPayload{
			Point: tr.Translation,
			Chain: chain,
		})
	}
}
