package audio

import (
	"io"
	"log"

	"github.com/lixenwraith/beatsynth/core"
	"github.com/lixenwraith/beatsynth/parameter"
)

// Phases are the absolute envelope breakpoints of one demo note
type Phases struct {
	Start      float64
	AttackEnd  float64
	DecayEnd   float64
	SustainEnd float64
	End        float64
}

// ClampEnvelope fits env into a slot starting at start.
// Attack, decay and release are each capped at 30% of the slot.
func ClampEnvelope(env Envelope, start, slot float64) Phases {
	limit := parameter.DemoEnvelopeShare * slot
	attack := min(max(env.Attack, 0), limit)
	decay := min(max(env.Decay, 0), limit)
	release := min(max(env.Release, 0), limit)

	return Phases{
		Start:      start,
		AttackEnd:  start + attack,
		DecayEnd:   start + attack + decay,
		SustainEnd: max(start+attack+decay, start+slot-release),
		End:        start + slot,
	}
}

// Gain returns the note's gain automation for the given peak and sustain level
func (ph Phases) Gain(peak, sustain float64) Automation {
	held := peak * sustain
	return Automation{
		{Time: ph.Start, Value: 0, Curve: CurveSet},
		{Time: ph.AttackEnd, Value: peak, Curve: CurveLinear},
		{Time: ph.DecayEnd, Value: held, Curve: CurveLinear},
		{Time: ph.SustainEnd, Value: held, Curve: CurveSet},
		{Time: ph.End, Value: 0, Curve: CurveLinear},
	}
}

// DemoLength returns the phrase length in seconds
func DemoLength(v InstrumentVoice) float64 {
	return float64(len(v.Phrase())) * parameter.DemoSlot
}

// DemoFilter returns the shared low-pass of v, nil when v has no cutoff
func DemoFilter(v InstrumentVoice) *Filter {
	if v.FilterCutoff <= 0 {
		return nil
	}
	return &Filter{Kind: core.FilterLowpass, Cutoff: v.FilterCutoff, Q: parameter.DefaultFilterQ}
}

// PlanDemo returns one event per sounding note of v's phrase starting at now.
// Note i starts at now + i*slot; rests keep their slot but emit nothing.
func PlanDemo(v InstrumentVoice, now float64, bus Bus) []Event {
	phrase := v.Phrase()
	events := make([]Event, 0, len(phrase))

	for i, mult := range phrase {
		if mult <= 0 {
			continue
		}
		start := now + float64(i)*parameter.DemoSlot
		ph := ClampEnvelope(v.Envelope, start, parameter.DemoSlot)

		events = append(events, Event{
			Voice:     v.Name,
			Step:      i,
			Trigger:   start,
			Start:     start,
			Stop:      start + parameter.DemoSlot + parameter.DemoTail,
			Wave:      v.Waveform,
			Frequency: Const(v.BaseFrequency * mult),
			Detune:    v.Detune,
			Gain:      ph.Gain(parameter.DemoPeak, v.Envelope.Sustain),
			Bus:       bus,
		})
	}
	return events
}

// DemoPlayer plays instrument phrases through a per-session bus on the shared context
type DemoPlayer struct {
	timer Timer
	log   *log.Logger
}

// NewDemoPlayer creates a demo player; nil timer and logger fall back to defaults
func NewDemoPlayer(timer Timer, logger *log.Logger) *DemoPlayer {
	if timer == nil {
		timer = SystemTimer{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &DemoPlayer{timer: timer, log: logger}
}

// Play schedules v's phrase on ctx and arms self-termination after the phrase plus margin
func (d *DemoPlayer) Play(ctx Context, v InstrumentVoice) *Session {
	now := ctx.CurrentTime() + parameter.DemoLead
	bus := ctx.OpenBus(DemoFilter(v), 1)
	events := PlanDemo(v, now, bus)

	sess := newSession(v.Name, d.log)
	sess.start = now
	sess.duration = DemoLength(v)
	sess.bus = bus

	for _, ev := range events {
		sess.own(ctx.Schedule(ev))
	}
	sess.arm(d.timer, parameter.Seconds(sess.duration)+parameter.DemoMargin)

	d.log.Printf("demo %q: %d notes, %.3fs", v.Name, len(events), sess.duration)
	return sess
}
