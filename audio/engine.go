package audio

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/chainburst/core"
)

// AudioEngine plays sound requests through the beep speaker
// A failed speaker init degrades to silent mode, the game keeps running
type AudioEngine struct {
	config     *AudioConfig
	sampleRate beep.SampleRate

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
}

// NewAudioEngine creates an audio engine, nil config uses defaults
func NewAudioEngine(cfg *AudioConfig) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	ae := &AudioEngine{
		config:     cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
	}
	ae.muted.Store(!cfg.Enabled)
	return ae
}

// Start initialises the speaker
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	if err := speaker.Init(ae.sampleRate, ae.sampleRate.N(ae.config.BufferDuration)); err != nil {
		slog.Warn("audio unavailable, running silent", "error", err)
		ae.silentMode.Store(true)
	}

	ae.running.Store(true)
	return nil
}

// Stop closes the speaker, idempotent
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	if !ae.silentMode.Load() {
		speaker.Close()
	}
}

// Play queues a blip, returns false when nothing was played
func (ae *AudioEngine) Play(req core.SoundRequest) bool {
	if !ae.running.Load() || ae.muted.Load() || ae.silentMode.Load() {
		return false
	}

	s, err := Blip(ae.sampleRate, req, ae.config.Volume)
	if err != nil {
		slog.Debug("audio blip", "error", err)
		return false
	}
	speaker.Play(s)
	return true
}

// ToggleMute flips mute and returns the new state
func (ae *AudioEngine) ToggleMute() bool {
	for {
		old := ae.muted.Load()
		if ae.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// IsSilent reports whether the speaker failed to initialise
func (ae *AudioEngine) IsSilent() bool {
	return ae.silentMode.Load()
}
