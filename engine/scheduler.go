package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/chainburst/event"
)

// Scheduler drives the per-frame pipeline:
// clock tick → time resource → event dispatch → systems in priority order
type Scheduler struct {
	world  *World
	router *event.Router[*World]

	frame atomic.Int64

	// Cached metric pointers
	statFrames *atomic.Int64
	statEvents *atomic.Int64
	statPaused *atomic.Bool
}

// NewScheduler creates a scheduler bound to the world's event queue
func NewScheduler(world *World) *Scheduler {
	reg := world.Resource.Status
	return &Scheduler{
		world:      world,
		router:     event.NewRouter[*World](world.Resource.Event.Queue),
		statFrames: reg.Ints.Get("engine.frames"),
		statEvents: reg.Ints.Get("engine.events"),
		statPaused: reg.Bools.Get("clock.paused"),
	}
}

// AddSystem registers a system with the world and, if it handles events, with the router
// Must be called before the first Step
func (s *Scheduler) AddSystem(system System) {
	s.world.AddSystem(system)
	if h, ok := system.(event.Handler[*World]); ok {
		s.router.Register(h)
	}
}

// Frame returns the number of completed steps
func (s *Scheduler) Frame() int64 {
	return s.frame.Load()
}

// Step runs one frame to completion under the world lock
func (s *Scheduler) Step() {
	s.world.RunSafe(func() {
		frame := s.frame.Add(1)
		clock := s.world.Resource.Clock

		delta := clock.Tick()
		s.world.Resource.Time.Update(clock.Elapsed(), delta, clock.IsPaused(), frame)

		n := s.router.DispatchAll(s.world)
		s.world.UpdateLocked()

		s.statFrames.Store(frame)
		s.statEvents.Add(int64(n))
		s.statPaused.Store(clock.IsPaused())
	})
}

// Run steps the world every interval until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
		}
	}
}
