package constant

import "time"

// Audio
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// AudioBlipDuration is the length of a single detonation blip
	AudioBlipDuration = 60 * time.Millisecond

	// AudioBaseFrequency is the pitch of a chain-depth 0 detonation, one semitone up per depth
	AudioBaseFrequency = 440.0

	// AudioMaxSemitones caps the pitch climb
	AudioMaxSemitones = 24
)
