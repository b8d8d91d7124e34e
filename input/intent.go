package input

import "github.com/lixenwraith/chainburst/vmath"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Escape, window close, Ctrl+C
	IntentReset      // r
	IntentToggleMute // m

	// Pointer intents, carry a world point
	IntentSpawnExplosion // Left click
	IntentSpawnBomb      // Middle click
	IntentPauseToggle    // Right click
)

var intentNames = [...]string{
	IntentNone:           "none",
	IntentQuit:           "quit",
	IntentReset:          "reset",
	IntentToggleMute:     "toggle_mute",
	IntentSpawnExplosion: "spawn_explosion",
	IntentSpawnBomb:      "spawn_bomb",
	IntentPauseToggle:    "pause_toggle",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a parsed user action
type Intent struct {
	Type  IntentType
	Point vmath.Vec2 // World coordinates, pointer intents only
}

// Button is a pointer button
type Button uint8

const (
	ButtonLeft Button = 1 << iota
	ButtonMiddle
	ButtonRight
)

// ButtonMask is a set of held buttons
type ButtonMask = Button

// buttonOrder fixes the intent order when several buttons go down at once
var buttonOrder = [...]Button{ButtonLeft, ButtonMiddle, ButtonRight}

// IntentFor maps a button to its pointer intent
func IntentFor(b Button) IntentType {
	switch b {
	case ButtonLeft:
		return IntentSpawnExplosion
	case ButtonMiddle:
		return IntentSpawnBomb
	case ButtonRight:
		return IntentPauseToggle
	}
	return IntentNone
}

// HelpLines is the control summary shown by every front-end
var HelpLines = []string{
	"Mouse L: Spawn Explosion",
	"Mouse M: Spawn Bomb",
	"Mouse R: Pause/Resume",
}
