package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency and pipe writer tick rate
	AudioBufferDuration = 50 * time.Millisecond

	// SpeakerBufferDuration is the device buffer handed to the speaker backend
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Envelope floor for exponential decays; exponential curves cannot reach zero
const DecayFloor = 0.001

// Default filter resonance for biquads without an explicit Q
const DefaultFilterQ = 1.0
