package system

import (
	"log/slog"

	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/event"
)

// ClockSystem applies pause toggles and resets to the world clock
type ClockSystem struct {
	world *engine.World
}

func NewClockSystem(world *engine.World) *ClockSystem {
	return &ClockSystem{world: world}
}

func (s *ClockSystem) Init() {}

func (s *ClockSystem) Name() string {
	return "clock"
}

func (s *ClockSystem) Priority() int {
	return constant.PriorityClock
}

func (s *ClockSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPauseToggleRequest,
		event.EventWorldReset,
	}
}

func (s *ClockSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventPauseToggleRequest:
		if w.Resource.Clock.Toggle() {
			slog.Info("pause", "elapsed", w.Resource.Clock.Elapsed())
		} else {
			slog.Info("resume", "elapsed", w.Resource.Clock.Elapsed())
		}
		w.Resource.Audio.Play(core.SoundRequest{Type: core.SoundPause})

	case event.EventWorldReset:
		w.Resource.Clock.Reset()
	}
}

func (s *ClockSystem) Update() {}
