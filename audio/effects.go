package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/beatsynth/core"
	"github.com/lixenwraith/beatsynth/parameter"
)

// waveSample evaluates one period-normalized oscillator shape, phase in [0, 1)
func waveSample(wave core.Waveform, phase float64) float64 {
	switch wave {
	case core.WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case core.WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case core.WaveSawtooth:
		return 2.0 * (phase - 0.5)
	case core.WaveTriangle:
		if phase < 0.25 {
			return 4 * phase
		}
		if phase < 0.75 {
			return 2 - 4*phase
		}
		return 4*phase - 4
	default:
		return 0
	}
}

// detuneRatio converts cents to a frequency multiplier
func detuneRatio(cents float64) float64 {
	if cents == 0 {
		return 1
	}
	return math.Pow(2, cents/1200)
}

// biquad is a direct form I second-order section (RBJ cookbook coefficients)
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     [2]float64
}

func newBiquad(f Filter, sampleRate float64) *biquad {
	q := f.Q
	if q <= 0 {
		q = parameter.DefaultFilterQ
	}
	cutoff := f.Cutoff
	nyquist := sampleRate * 0.49
	if cutoff > nyquist {
		cutoff = nyquist
	}
	if cutoff < 1 {
		cutoff = 1
	}

	w0 := 2 * math.Pi * cutoff / sampleRate
	cosW := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	var b0, b1, b2 float64
	switch f.Kind {
	case core.FilterHighpass:
		b0 = (1 + cosW) / 2
		b1 = -(1 + cosW)
		b2 = (1 + cosW) / 2
	case core.FilterBandpass:
		b0 = alpha
		b1 = 0
		b2 = -alpha
	default:
		b0 = (1 - cosW) / 2
		b1 = 1 - cosW
		b2 = (1 - cosW) / 2
	}
	a0 := 1 + alpha
	return &biquad{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: -2 * cosW / a0,
		a2: (1 - alpha) / a0,
	}
}

// process filters one sample on channel ch
func (b *biquad) process(ch int, x float64) float64 {
	y := b.b0*x + b.b1*b.x1[ch] + b.b2*b.x2[ch] - b.a1*b.y1[ch] - b.a2*b.y2[ch]
	b.x2[ch], b.x1[ch] = b.x1[ch], x
	b.y2[ch], b.y1[ch] = b.y1[ch], y
	return y
}

// filterStreamer runs a stereo stream through a biquad
type filterStreamer struct {
	streamer beep.Streamer
	filter   *biquad
}

func (f *filterStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] = f.filter.process(0, samples[i][0])
		samples[i][1] = f.filter.process(1, samples[i][1])
	}
	return n, ok
}

func (f *filterStreamer) Err() error { return f.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
