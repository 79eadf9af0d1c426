package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/beatsynth/core"
	"github.com/lixenwraith/beatsynth/parameter"
)

func eventsAt(events []Event, trigger float64) []Event {
	var out []Event
	for _, ev := range events {
		if approx(ev.Trigger, trigger) {
			out = append(out, ev)
		}
	}
	return out
}

func TestPlanRhythmTrap(t *testing.T) {
	p := NewLibrary().Lookup("Trap")
	bank := NewVoiceBank(nil)
	stepDur := 60.0 / 140 / 4

	events := PlanRhythm(p, bank, 0)

	// Per bar: 14 hihats, 2 kicks, 2 two-layer snares, 2 bass notes
	if len(events) != 2*22 {
		t.Fatalf("Expected 44 events, got %d", len(events))
	}

	if !approx(p.Duration(), 32*stepDur) {
		t.Errorf("Expected duration %f, got %f", 32*stepDur, p.Duration())
	}

	t.Run("step 0", func(t *testing.T) {
		at := eventsAt(events, 0)
		var kicks, bass int
		for _, ev := range at {
			switch ev.Voice {
			case "kick":
				kicks++
			case "bass":
				bass++
				if ev.Frequency.ValueAt(0) != 40 || !approx(ev.Stop, 0.6) {
					t.Errorf("Expected 40Hz bass for 0.6s, got %v until %f", ev.Frequency.ValueAt(0), ev.Stop)
				}
			}
		}
		if kicks != 1 || bass != 1 || len(at) != 2 {
			t.Errorf("Expected one kick and one bass note, got %d events", len(at))
		}
	})

	t.Run("step 4", func(t *testing.T) {
		at := eventsAt(events, 4*stepDur)
		voices := map[string]int{}
		for _, ev := range at {
			voices[ev.Voice]++
			if ev.Step != 4 {
				t.Errorf("Expected step 4, got %d", ev.Step)
			}
		}
		if voices["snare"] != 2 || voices["hihat"] != 1 || len(at) != 3 {
			t.Errorf("Expected snare layers and hihat together, got %v", voices)
		}
	})

	t.Run("second bar repeats", func(t *testing.T) {
		at := eventsAt(events, 16*stepDur)
		if len(at) != 2 {
			t.Fatalf("Expected kick and bass at bar 2, got %d events", len(at))
		}
		for _, ev := range at {
			if ev.Step != 16 {
				t.Errorf("Expected global step 16, got %d", ev.Step)
			}
		}
		if len(eventsAt(events, 26*stepDur)) != 2 {
			t.Error("Expected kick and bass at global step 26")
		}
	})
}

func TestPlanRhythmHitVolume(t *testing.T) {
	p := &RhythmPattern{BPM: 120, Bars: 1}
	p.Steps[0] = Step{{Type: core.HitRim}, {Type: core.HitRim, Volume: 1}}

	events := PlanRhythm(p, NewVoiceBank(nil), 1)
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if !approx(events[0].Gain.ValueAt(1), parameter.DefaultHitVolume*0.3) {
		t.Errorf("Expected default volume, got %f", events[0].Gain.ValueAt(1))
	}
	if !approx(events[1].Gain.ValueAt(1), 0.3) {
		t.Errorf("Expected full volume, got %f", events[1].Gain.ValueAt(1))
	}
}

func TestPlanRhythmDefaultBassLength(t *testing.T) {
	p := &RhythmPattern{BPM: 120, Bars: 1, Bass: map[int]BassNote{3: {Freq: 55}}}
	events := PlanRhythm(p, NewVoiceBank(nil), 0)

	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	stepDur := 60.0 / 120 / 4
	if !approx(events[0].Start, 3*stepDur) || !approx(events[0].Stop, 5*stepDur) {
		t.Errorf("Expected two-step bass from %f, got %f-%f", 3*stepDur, events[0].Start, events[0].Stop)
	}
}

func TestSchedulerPlay(t *testing.T) {
	fc := newFakeContext(2)
	timer := NewManualTimer()
	s := NewScheduler(NewVoiceBank(nil), timer, discardLogger())
	p := NewLibrary().Lookup("Trap")

	sess := s.Play(fc, "Trap", p)

	if !approx(sess.Start(), 2.05) {
		t.Errorf("Expected start 2.05, got %f", sess.Start())
	}
	if sess.Nodes() != 44 || len(fc.scheduled()) != 44 {
		t.Errorf("Expected 44 owned nodes, got %d", sess.Nodes())
	}
	for _, ev := range fc.scheduled() {
		if ev.Trigger < 2.05-1e-9 {
			t.Fatalf("Expected no event before the lead, got %f", ev.Trigger)
		}
	}

	total := parameter.Seconds(parameter.RhythmLead + p.Duration())
	timer.Advance(total - time.Millisecond)
	if !sess.IsPlaying() {
		t.Error("Expected session to run through the pattern")
	}
	timer.Advance(time.Millisecond)
	if sess.State() != SessionCompleted {
		t.Errorf("Expected completed, got %s", sess.State())
	}
	if fc.stoppedNodes() != 0 {
		t.Error("Expected completion to leave scheduled nodes alone")
	}
}

func TestSchedulerStop(t *testing.T) {
	fc := newFakeContext(0)
	timer := NewManualTimer()
	s := NewScheduler(nil, timer, nil)

	sess := s.Play(fc, "default", NewLibrary().Lookup("nope"))
	sess.Stop()

	if fc.stoppedNodes() != len(fc.scheduled()) {
		t.Errorf("Expected every node stopped, got %d of %d", fc.stoppedNodes(), len(fc.scheduled()))
	}
	if timer.Pending() != 0 {
		t.Error("Expected completion timer cancelled")
	}
	if fc.State() == StateClosed {
		t.Error("Expected the shared context to stay open")
	}
}
