package input

import (
	"log/slog"

	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/event"
	"github.com/lixenwraith/chainburst/vmath"
)

// Machine turns raw pointer and key input into intents
// Terminal mice report the held button set on every event, so presses are
// derived by edge detection against the previous mask
type Machine struct {
	held ButtonMask
}

func NewMachine() *Machine {
	return &Machine{}
}

// Mouse processes a held-button snapshot at a world point
// Returns one intent per newly pressed button, Left → Middle → Right
func (m *Machine) Mouse(held ButtonMask, point vmath.Vec2) []Intent {
	pressed := held &^ m.held
	m.held = held
	if pressed == 0 {
		return nil
	}

	intents := make([]Intent, 0, 1)
	for _, b := range buttonOrder {
		if pressed&b != 0 {
			intents = append(intents, Intent{Type: IntentFor(b), Point: point})
		}
	}
	return intents
}

// Press handles a single just-pressed button from a front-end that tracks edges itself
func (m *Machine) Press(b Button, point vmath.Vec2) Intent {
	return Intent{Type: IntentFor(b), Point: point}
}

// Rune maps a key rune to a system intent
func (m *Machine) Rune(r rune) Intent {
	switch r {
	case 'r', 'R':
		return Intent{Type: IntentReset}
	case 'm', 'M':
		return Intent{Type: IntentToggleMute}
	case 'q', 'Q':
		return Intent{Type: IntentQuit}
	}
	return Intent{}
}

// Reset forgets held buttons, used when focus is lost
func (m *Machine) Reset() {
	m.held = 0
}

// Apply forwards an intent to the world as events
// Returns false when the intent asks the front-end to quit
func Apply(w *engine.World, in Intent) bool {
	if in.Type != IntentNone {
		slog.Debug("input", "intent", in.Type, "x", in.Point.X, "y", in.Point.Y)
	}

	switch in.Type {
	case IntentQuit:
		return false
	case IntentReset:
		w.PushEvent(event.EventWorldReset, nil)
	case IntentToggleMute:
		if p := w.Resource.Audio.Player; p != nil {
			slog.Info("audio", "muted", p.ToggleMute())
		}
	case IntentSpawnExplosion:
		w.PushEvent(event.EventSpawnExplosionRequest, &event.SpawnPayload{Point: in.Point})
	case IntentSpawnBomb:
		w.PushEvent(event.EventSpawnBombRequest, &event.SpawnPayload{Point: in.Point})
	case IntentPauseToggle:
		w.PushEvent(event.EventPauseToggleRequest, nil)
	}
	return true
}
