package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/event"
	"github.com/lixenwraith/chainburst/vmath"
)

func TestMachineEdgeDetection(t *testing.T) {
	m := NewMachine()
	p := vmath.V2(12, 34)

	intents := m.Mouse(ButtonLeft, p)
	require.Len(t, intents, 1)
	assert.Equal(t, IntentSpawnExplosion, intents[0].Type)
	assert.Equal(t, p, intents[0].Point)

	// Held, drag, release: no new presses
	assert.Empty(t, m.Mouse(ButtonLeft, vmath.V2(13, 34)))
	assert.Empty(t, m.Mouse(0, p))

	// Chord: middle and right together, left still down from before
	m.Mouse(ButtonLeft, p)
	intents = m.Mouse(ButtonLeft|ButtonMiddle|ButtonRight, p)
	require.Len(t, intents, 2)
	assert.Equal(t, IntentSpawnBomb, intents[0].Type)
	assert.Equal(t, IntentPauseToggle, intents[1].Type)

	m.Reset()
	assert.Len(t, m.Mouse(ButtonLeft, p), 1, "reset forgets held buttons")
}

func TestMachineKeys(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		r    rune
		want IntentType
	}{
		{'r', IntentReset},
		{'M', IntentToggleMute},
		{'q', IntentQuit},
		{'x', IntentNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Rune(tt.r).Type, "rune %q", tt.r)
	}
	assert.Equal(t, IntentSpawnBomb, m.Press(ButtonMiddle, vmath.Vec2{}).Type)
	assert.Equal(t, "pause_toggle", IntentPauseToggle.String())
}

func TestApplyPushesEvents(t *testing.T) {
	w := engine.NewWorld(nil, nil)

	assert.True(t, Apply(w, Intent{Type: IntentSpawnExplosion, Point: vmath.V2(1, 2)}))
	assert.True(t, Apply(w, Intent{Type: IntentSpawnBomb, Point: vmath.V2(3, 4)}))
	assert.True(t, Apply(w, Intent{Type: IntentPauseToggle}))
	assert.True(t, Apply(w, Intent{Type: IntentReset}))
	assert.True(t, Apply(w, Intent{Type: IntentToggleMute}), "mute without a player is a no-op")
	assert.False(t, Apply(w, Intent{Type: IntentQuit}))

	events := w.Resource.Event.Queue.Consume()
	require.Len(t, events, 4)
	assert.Equal(t, event.EventSpawnExplosionRequest, events[0].Type)
	assert.Equal(t, vmath.V2(1, 2), events[0].Payload.(*event.SpawnPayload).Point)
	assert.Equal(t, event.EventSpawnBombRequest, events[1].Type)
	assert.Equal(t, event.EventPauseToggleRequest, events[2].Type)
	assert.Equal(t, event.EventWorldReset, events[3].Type)
}
