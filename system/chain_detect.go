package system

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/chainburst/component"
	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/vmath"
)

// explosionShape is a per-frame snapshot of one live explosion
type explosionShape struct {
	center vmath.Vec2
	radius float32 // Effective radius: progress × configured radius
	chain  uint32
}

// ChainDetectSystem marks breakables overlapped by a live explosion
// Each breakable scans explosions linearly, first overlap wins
type ChainDetectSystem struct {
	world *engine.World

	// Reusable buffers, rebuilt every frame
	shapes []explosionShape
	hits   []component.Damage

	parallelThreshold int

	statHits  *atomic.Int64
	statScans *atomic.Int64
}

func NewChainDetectSystem(world *engine.World) *ChainDetectSystem {
	s := &ChainDetectSystem{
		world:     world,
		statHits:  world.Resource.Status.Ints.Get("chain.hits"),
		statScans: world.Resource.Status.Ints.Get("chain.scans"),
	}
	s.Init()
	return s
}

func (s *ChainDetectSystem) Init() {
	s.shapes = make([]explosionShape, 0, 64)
	s.hits = make([]component.Damage, 0, 64)
	s.parallelThreshold = constant.DetectParallelThreshold
}

func (s *ChainDetectSystem) Name() string {
	return "chain_detect"
}

func (s *ChainDetectSystem) Priority() int {
	return constant.PriorityChainDetect
}

func (s *ChainDetectSystem) Update() {
	s.snapshotExplosions()
	if len(s.shapes) == 0 {
		return
	}

	breakables := s.world.Component.Breakable.All()
	if len(breakables) == 0 {
		return
	}

	s.hits = s.hits[:0]
	s.hits = append(s.hits, make([]component.Damage, len(breakables))...)

	cfg := s.world.Resource.Config
	if cfg.ParallelDetect && len(breakables) >= s.parallelThreshold {
		s.detectParallel(breakables, cfg.DetectWorkers)
	} else {
		for i, e := range breakables {
			s.hits[i] = s.firstHit(e)
		}
	}
	s.statScans.Add(int64(len(breakables) * len(s.shapes)))

	// Apply on the update goroutine so store writes stay ordered
	store := s.world.Component.Breakable
	for i, e := range breakables {
		if !s.hits[i].Hit {
			continue
		}
		b, ok := store.Get(e)
		if !ok {
			continue
		}
		b.Incoming = s.hits[i]
		store.Set(e, b)
		s.statHits.Add(1)
	}
}

func (s *ChainDetectSystem) snapshotExplosions() {
	s.shapes = s.shapes[:0]
	maxRadius := s.world.Resource.Config.ExplosionRadius

	for _, e := range s.world.Component.Explosion.All() {
		exp, ok := s.world.Component.Explosion.Get(e)
		if !ok {
			continue
		}
		tr, ok := s.world.Component.Transform.Get(e)
		if !ok {
			continue
		}
		s.shapes = append(s.shapes, explosionShape{
			center: tr.Translation,
			radius: exp.Radius * maxRadius,
			chain:  exp.Chain,
		})
	}
}

// firstHit returns the damage of the first explosion overlapping breakable e
func (s *ChainDetectSystem) firstHit(e core.Entity) component.Damage {
	tr, ok := s.world.Component.Transform.Get(e)
	if !ok {
		return component.Damage{}
	}
	bombRadius := s.world.Resource.Config.BombRadius

	for i := range s.shapes {
		p := &s.shapes[i]
		if vmath.CirclesOverlap(tr.Translation, p.radius, p.center, bombRadius) {
			return component.Damaged(p.chain)
		}
	}
	return component.Damage{}
}

// detectParallel splits breakables into contiguous chunks, one goroutine each
// Every chunk writes a disjoint range of s.hits so no merge step is needed
func (s *ChainDetectSystem) detectParallel(breakables []core.Entity, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(breakables) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(breakables); start += chunk {
		end := min(start+chunk, len(breakables))
		g.Go(func() error {
			for i := start; i < end; i++ {
				s.hits[i] = s.firstHit(breakables[i])
			}
			return nil
		})
	}
	_ = g.Wait() // Workers never fail
}
