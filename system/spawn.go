package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/event"
)

// SpawnSystem turns pointer spawn requests into entities and handles world reset
type SpawnSystem struct {
	world *engine.World

	statExplosions *atomic.Int64
	statBombs      *atomic.Int64
}

func NewSpawnSystem(world *engine.World) *SpawnSystem {
	return &SpawnSystem{
		world:          world,
		statExplosions: world.Resource.Status.Ints.Get("spawn.explosions"),
		statBombs:      world.Resource.Status.Ints.Get("spawn.bombs"),
	}
}

func (s *SpawnSystem) Init() {}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return constant.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpawnExplosionRequest,
		event.EventSpawnBombRequest,
		event.EventWorldReset,
	}
}

func (s *SpawnSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventWorldReset:
		w.Clear()
		w.Resource.Chain.Max = 0
		w.InitSystems()
		slog.Debug("world reset", "frame", ev.Frame)

	case event.EventSpawnExplosionRequest:
		if p, ok := ev.Payload.(*event.SpawnPayload); ok {
			SpawnExplosion(w, p.Point, 0)
			s.statExplosions.Add(1)
		}

	case event.EventSpawnBombRequest:
		if p, ok := ev.Payload.(*event.SpawnPayload); ok {
			SpawnBomb(w, p.Point, w.Resource.Config.BombWillExplode)
			s.statBombs.Add(1)
		}
	}
}

// Update is a no-op, spawning is event-driven
func (s *SpawnSystem) Update() {}
