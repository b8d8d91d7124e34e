package system

import (
	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/event"
)

// AudioSystem turns gameplay events into sound requests
type AudioSystem struct {
	world *engine.World
}

func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{world: world}
}

func (s *AudioSystem) Init() {}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return constant.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpawnExplosionRequest,
		event.EventDetonation,
	}
}

func (s *AudioSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventSpawnExplosionRequest:
		w.Resource.Audio.Play(core.SoundRequest{Type: core.SoundSpawn})

	case event.EventDetonation:
		if p, ok := ev.Payload.(*event.DetonationPayload); ok {
			w.Resource.Audio.Play(core.SoundRequest{Type: core.SoundDetonation, Chain: p.Chain})
		}
	}
}

func (s *AudioSystem) Update() {}
