package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/core"
)

// Frequency returns the blip pitch for a sound request
// Detonations climb one semitone per chain depth, capped at AudioMaxSemitones
func Frequency(req core.SoundRequest) float64 {
	switch req.Type {
	case core.SoundSpawn:
		return constant.AudioBaseFrequency / 2
	case core.SoundPause:
		return constant.AudioBaseFrequency * 3 / 4
	}
	semitones := min(req.Chain, constant.AudioMaxSemitones)
	return constant.AudioBaseFrequency * math.Pow(2, float64(semitones)/12)
}

// Blip synthesises a finite sine streamer for a sound request
func Blip(sr beep.SampleRate, req core.SoundRequest, volume float64) (beep.Streamer, error) {
	if req.Type < 0 || req.Type >= core.SoundTypeCount {
		return nil, fmt.Errorf("unknown sound type %d", req.Type)
	}

	sine, err := generators.SineTone(sr, Frequency(req))
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}

	return &effects.Volume{
		Streamer: beep.Take(sr.N(constant.AudioBlipDuration), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}
