package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/engine"
)

// TestNewAudioEngine verifies initial state
func TestNewAudioEngine(t *testing.T) {
	ae := NewAudioEngine(nil)

	if ae.IsRunning() {
		t.Error("Expected audio engine to not be running before Start()")
	}
	if ae.IsMuted() {
		t.Error("Expected default config to start unmuted")
	}

	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	if !NewAudioEngine(cfg).IsMuted() {
		t.Error("Expected disabled config to start muted")
	}
}

// TestPlayBeforeStart verifies requests are dropped while stopped
func TestPlayBeforeStart(t *testing.T) {
	ae := NewAudioEngine(nil)
	if ae.Play(core.SoundRequest{Type: core.SoundDetonation}) {
		t.Error("Expected Play to report false before Start()")
	}
	// Stop on a stopped engine is a no-op
	ae.Stop()
}

// TestToggleMute verifies the returned state
func TestToggleMute(t *testing.T) {
	ae := NewAudioEngine(nil)
	if !ae.ToggleMute() {
		t.Error("Expected first toggle to mute")
	}
	if ae.ToggleMute() {
		t.Error("Expected second toggle to unmute")
	}
	if ae.IsMuted() {
		t.Error("Expected unmuted after two toggles")
	}
}

// TestFrequency verifies the semitone climb and its cap
func TestFrequency(t *testing.T) {
	tests := []struct {
		name  string
		chain uint32
		want  float64
	}{
		{"depth 0", 0, constant.AudioBaseFrequency},
		{"octave", 12, constant.AudioBaseFrequency * 2},
		{"cap", 100, constant.AudioBaseFrequency * 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Frequency(core.SoundRequest{Type: core.SoundDetonation, Chain: tt.chain})
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v Hz, got %v", tt.want, got)
			}
		})
	}
}

// TestBlipLength verifies the blip is finite and of the configured duration
func TestBlipLength(t *testing.T) {
	sr := beep.SampleRate(constant.AudioSampleRate)
	s, err := Blip(sr, core.SoundRequest{Type: core.SoundDetonation, Chain: 3}, 0)
	if err != nil {
		t.Fatalf("Blip failed: %v", err)
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		for _, smp := range buf[:n] {
			if smp[0] > 1 || smp[0] < -1 {
				t.Fatalf("Expected sample within [-1,1], got %v", smp[0])
			}
		}
	}

	if want := sr.N(constant.AudioBlipDuration); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

// TestBlipUnknownType verifies invalid requests are rejected
func TestBlipUnknownType(t *testing.T) {
	sr := beep.SampleRate(constant.AudioSampleRate)
	if _, err := Blip(sr, core.SoundRequest{Type: core.SoundTypeCount}, 0); err == nil {
		t.Error("Expected error for unknown sound type")
	}
}

// TestAudioServiceContribute verifies the engine is published to the world
func TestAudioServiceContribute(t *testing.T) {
	s := NewService(nil)
	w := engine.NewWorld(nil, nil)

	s.Contribute(w)
	if w.Resource.Audio.Player != nil {
		t.Error("Expected no player before Init")
	}

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.Contribute(w)
	if w.Resource.Audio.Player != s.Engine() {
		t.Error("Expected world player to be the service engine")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Expected Stop before Start to succeed, got %v", err)
	}
}
