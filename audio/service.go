package audio

import (
	"github.com/lixenwraith/chainburst/engine"
)

// AudioService wraps AudioEngine as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	config      *AudioConfig
	audioEngine *AudioEngine
}

// NewService creates an audio service, nil config uses defaults
func NewService(cfg *AudioConfig) *AudioService {
	return &AudioService{config: cfg}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
func (s *AudioService) Init() error {
	s.audioEngine = NewAudioEngine(s.config)
	return nil
}

// Start implements Service
// A device failure leaves the engine in silent mode, not an error
func (s *AudioService) Start() error {
	return s.audioEngine.Start()
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.audioEngine != nil {
		s.audioEngine.Stop()
	}
	return nil
}

// Contribute implements service.ResourceContributor
func (s *AudioService) Contribute(w *engine.World) {
	if s.audioEngine != nil {
		w.Resource.Audio.Player = s.audioEngine
	}
}

// Engine returns the underlying engine, nil before Init
func (s *AudioService) Engine() *AudioEngine {
	return s.audioEngine
}
