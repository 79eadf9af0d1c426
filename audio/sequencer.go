package audio

import (
	"io"
	"log"

	"github.com/lixenwraith/beatsynth/parameter"
)

// PlanRhythm expands p into the full event list of one session starting at t0.
// Every step of every bar is resolved up front; hits of one step share a trigger time.
func PlanRhythm(p *RhythmPattern, bank *VoiceBank, t0 float64) []Event {
	stepDur := p.StepDuration()
	var events []Event

	for bar := 0; bar < p.Bars; bar++ {
		for step := 0; step < parameter.StepsPerBar; step++ {
			global := bar*parameter.StepsPerBar + step
			t := t0 + float64(global)*stepDur

			for _, h := range p.Steps[step] {
				events = append(events, bank.Render(h.Type, t, h.Level(), global)...)
			}

			if n, ok := p.Bass[step]; ok {
				dur := n.Duration
				if dur <= 0 {
					dur = parameter.BassDurationSteps * stepDur
				}
				events = append(events, bank.Bass(n.Freq, t, dur, global))
			}
		}
	}
	return events
}

// Scheduler places rhythm sessions on a device context
type Scheduler struct {
	bank  *VoiceBank
	timer Timer
	log   *log.Logger
}

// NewScheduler creates a scheduler; nil timer and logger fall back to defaults
func NewScheduler(bank *VoiceBank, timer Timer, logger *log.Logger) *Scheduler {
	if bank == nil {
		bank = NewVoiceBank(nil)
	}
	if timer == nil {
		timer = SystemTimer{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Scheduler{bank: bank, timer: timer, log: logger}
}

// Play schedules p once on ctx, lead time after the current device time.
// The session completes after the lead plus bars * 16 steps.
func (s *Scheduler) Play(ctx Context, name string, p *RhythmPattern) *Session {
	t0 := ctx.CurrentTime() + parameter.RhythmLead
	events := PlanRhythm(p, s.bank, t0)

	sess := newSession(name, s.log)
	sess.start = t0
	sess.duration = p.Duration()

	for _, ev := range events {
		sess.own(ctx.Schedule(ev))
	}
	sess.arm(s.timer, parameter.Seconds(parameter.RhythmLead+sess.duration))

	s.log.Printf("pattern %q: %d events at %.0f bpm, %.3fs", name, len(events), p.BPM, sess.duration)
	return sess
}
