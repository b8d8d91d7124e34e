package system

import (
	"sync/atomic"

	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/engine"
)

// ChainCountSystem reduces the maximum chain depth over live explosions
// into the chain resource for display
type ChainCountSystem struct {
	world *engine.World

	statMax    *atomic.Int64
	statRecord *atomic.Int64 // Highest depth seen this session
}

func NewChainCountSystem(world *engine.World) *ChainCountSystem {
	return &ChainCountSystem{
		world:      world,
		statMax:    world.Resource.Status.Ints.Get("chain.max"),
		statRecord: world.Resource.Status.Ints.Get("chain.record"),
	}
}

func (s *ChainCountSystem) Init() {
	s.statMax.Store(0)
	s.statRecord.Store(0)
}

func (s *ChainCountSystem) Name() string {
	return "chain_count"
}

func (s *ChainCountSystem) Priority() int {
	return constant.PriorityChainCount
}

func (s *ChainCountSystem) Update() {
	w := s.world

	var best uint32
	for _, e := range w.Component.Explosion.All() {
		if exp, ok := w.Component.Explosion.Get(e); ok {
			best = max(best, exp.Chain)
		}
	}

	w.Resource.Chain.Max = best
	s.statMax.Store(int64(best))
	if int64(best) > s.statRecord.Load() {
		s.statRecord.Store(int64(best))
	}
}
