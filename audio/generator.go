package audio

import (
	"math"

	"github.com/lixenwraith/beatsynth/core"
)

// voice renders one Event sample by sample on the absolute device clock
type voice struct {
	ev     Event
	rate   float64
	pos    int64 // absolute sample index of the next sample
	end    int64
	phase  float64
	ratio  float64 // detune multiplier
	noise  *noiseReader
	filter *biquad
}

// newVoice prepares ev for rendering from absolute sample from onward
func newVoice(ev Event, sampleRate int, from int64) *voice {
	v := &voice{
		ev:    ev,
		rate:  float64(sampleRate),
		pos:   from,
		end:   secondsToSample(ev.Stop, sampleRate),
		ratio: detuneRatio(ev.Detune),
	}
	if ev.Wave == core.WaveNoise {
		v.noise = newNoiseReader()
	}
	if ev.Filter != nil {
		v.filter = newBiquad(*ev.Filter, v.rate)
	}
	return v
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.end {
			return i, i > 0
		}

		t := float64(v.pos) / v.rate
		var s float64
		if v.noise != nil {
			s = v.noise.next()
		} else {
			s = waveSample(v.ev.Wave, v.phase)
			v.phase += v.ev.Frequency.ValueAt(t) * v.ratio / v.rate
			v.phase -= math.Floor(v.phase) // Keep in [0, 1)
		}

		if v.filter != nil {
			s = v.filter.process(0, s)
		}
		s *= v.ev.Gain.ValueAt(t)

		samples[i][0] = s
		samples[i][1] = s
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// secondsToSample converts device seconds to the nearest sample index
func secondsToSample(t float64, sampleRate int) int64 {
	return int64(math.Round(t * float64(sampleRate)))
}
