package audio

import (
	"time"

	"github.com/lixenwraith/chainburst/constant"
)

// AudioConfig holds audio engine settings
type AudioConfig struct {
	Enabled        bool
	Volume         float64 // Exponent on base 2, 0 is unity gain, -1 halves
	SampleRate     int
	BufferDuration time.Duration
}

// DefaultAudioConfig returns audio enabled at unity gain
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:        true,
		Volume:         -1,
		SampleRate:     constant.AudioSampleRate,
		BufferDuration: constant.AudioBufferDuration,
	}
}
