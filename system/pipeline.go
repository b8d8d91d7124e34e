package system

import "github.com/lixenwraith/chainburst/engine"

// Register adds the full chain-reaction pipeline to the scheduler
// Frame order: spawn/pause events → detect → react → grow → aggregate → audio
func Register(s *engine.Scheduler, w *engine.World) {
	s.AddSystem(NewClockSystem(w))
	s.AddSystem(NewSpawnSystem(w))
	s.AddSystem(NewChainDetectSystem(w))
	s.AddSystem(NewBreakableSystem(w))
	s.AddSystem(NewExplosionSystem(w))
	s.AddSystem(NewChainCountSystem(w))
	s.AddSystem(NewAudioSystem(w))
}
