package core

import "strings"

// Waveform selects an oscillator shape; WaveNoise produces white noise
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
	WaveNoise
)

var waveNames = [...]string{"sine", "square", "sawtooth", "triangle", "noise"}

func (w Waveform) String() string {
	if w >= 0 && int(w) < len(waveNames) {
		return waveNames[w]
	}
	return "unknown"
}

// ParseWaveform accepts the oscillator type names plus "saw" as shorthand
func ParseWaveform(s string) (Waveform, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "saw" {
		return WaveSawtooth, true
	}
	for i, name := range waveNames {
		if name == s {
			return Waveform(i), true
		}
	}
	return 0, false
}

// FilterKind selects a biquad response
type FilterKind int

const (
	FilterLowpass FilterKind = iota
	FilterHighpass
	FilterBandpass
)

func (k FilterKind) String() string {
	switch k {
	case FilterLowpass:
		return "lowpass"
	case FilterHighpass:
		return "highpass"
	case FilterBandpass:
		return "bandpass"
	default:
		return "unknown"
	}
}
