package audio

import (
	"github.com/lixenwraith/beatsynth/core"
	"github.com/lixenwraith/beatsynth/parameter"
)

// Layer is one oscillator or noise burst of a percussion recipe.
// Times are relative to the hit's trigger.
type Layer struct {
	Wave      core.Waveform
	FreqStart float64
	FreqEnd   float64 // zero holds FreqStart
	SweepTime float64
	Filter    *Filter
	Level     float64 // fraction of the hit volume
	Offset    float64 // delay after the trigger
	Length    float64 // sounding time, zero means Decay
	Decay     float64 // time to reach parameter.DecayFloor
}

// Recipe is the full layer set of one percussion hit
type Recipe []Layer

// recipes is indexed by core.HitType
var recipes = [core.HitTypeCount]Recipe{
	core.HitKick: {
		{Wave: core.WaveSine, FreqStart: 150, FreqEnd: 30, SweepTime: 0.15, Level: 1, Decay: 0.3},
	},
	core.HitSnare: {
		{Wave: core.WaveTriangle, FreqStart: 200, FreqEnd: 80, SweepTime: 0.1, Level: 1, Decay: 0.12},
		{Wave: core.WaveNoise, Filter: &Filter{Kind: core.FilterHighpass, Cutoff: 3000}, Level: 0.6, Decay: 0.15},
	},
	core.HitHihat: {
		{Wave: core.WaveNoise, Filter: &Filter{Kind: core.FilterHighpass, Cutoff: 7000}, Level: 0.3, Decay: 0.05},
	},
	core.HitClap: {
		{Wave: core.WaveNoise, Filter: &Filter{Kind: core.FilterBandpass, Cutoff: 2000}, Level: 0.4, Length: 0.02, Decay: 0.08},
		{Wave: core.WaveNoise, Filter: &Filter{Kind: core.FilterBandpass, Cutoff: 2000}, Level: 0.4, Offset: 0.01, Length: 0.02, Decay: 0.08},
		{Wave: core.WaveNoise, Filter: &Filter{Kind: core.FilterBandpass, Cutoff: 2000}, Level: 0.4, Offset: 0.02, Length: 0.02, Decay: 0.08},
	},
	core.HitRim: {
		{Wave: core.WaveSquare, FreqStart: 800, Level: 0.3, Decay: 0.03},
	},
	core.HitCowbell: {
		{Wave: core.WaveSquare, FreqStart: 560, Level: 0.25, Decay: 0.1},
		{Wave: core.WaveSquare, FreqStart: 845, Level: 0.25, Decay: 0.1},
	},
	core.HitShaker: {
		{Wave: core.WaveNoise, Filter: &Filter{Kind: core.FilterBandpass, Cutoff: 9000, Q: 2}, Level: 0.15, Decay: 0.04},
	},
	core.HitConga: {
		{Wave: core.WaveSine, FreqStart: 300, FreqEnd: 150, SweepTime: 0.1, Level: 0.4, Decay: 0.15},
	},
	core.HitTom: {
		{Wave: core.WaveSine, FreqStart: 200, FreqEnd: 80, SweepTime: 0.2, Level: 1, Decay: 0.25},
	},
}

// RecipeFor returns the layers of hit h; nil for unknown hits
func RecipeFor(h core.HitType) Recipe {
	if !h.Valid() {
		return nil
	}
	return recipes[h]
}

// VoiceBank turns hits and bass notes into events.
// It is stateless apart from per-hit volume multipliers fixed at construction.
type VoiceBank struct {
	levels [core.HitTypeCount]float64
}

// NewVoiceBank creates a bank; a nil cfg keeps every hit at unity
func NewVoiceBank(cfg *Config) *VoiceBank {
	b := &VoiceBank{}
	for i := range b.levels {
		b.levels[i] = 1.0
		if cfg != nil {
			b.levels[i] = cfg.HitVolume(core.HitType(i))
		}
	}
	return b
}

// Render returns the events of one hit triggered at t with the given volume.
// step is carried on every event for tracing.
func (b *VoiceBank) Render(h core.HitType, t, volume float64, step int) []Event {
	recipe := RecipeFor(h)
	if recipe == nil {
		return nil
	}
	volume *= b.levels[h]

	events := make([]Event, 0, len(recipe))
	for _, l := range recipe {
		start := t + l.Offset
		length := l.Length
		if length == 0 {
			length = l.Decay
		}

		ev := Event{
			Voice:   h.String(),
			Step:    step,
			Trigger: t,
			Start:   start,
			Stop:    start + length,
			Wave:    l.Wave,
			Filter:  l.Filter,
			Gain:    decay(volume*l.Level, start, l.Decay),
		}
		if l.Wave != core.WaveNoise {
			if l.FreqEnd > 0 {
				ev.Frequency = Sweep(l.FreqStart, l.FreqEnd, start, l.SweepTime)
			} else {
				ev.Frequency = Const(l.FreqStart)
			}
		}
		events = append(events, ev)
	}
	return events
}

// Bass returns a sine bass note of freq Hz lasting dur seconds from t
func (b *VoiceBank) Bass(freq, t, dur float64, step int) Event {
	return Event{
		Voice:     "bass",
		Step:      step,
		Trigger:   t,
		Start:     t,
		Stop:      t + dur,
		Wave:      core.WaveSine,
		Frequency: Const(freq),
		Gain:      decay(parameter.BassVolume, t, dur),
	}
}

// decay sets peak at start and falls exponentially to the floor by start+length
func decay(peak, start, length float64) Automation {
	return Sweep(peak, parameter.DecayFloor, start, length)
}
