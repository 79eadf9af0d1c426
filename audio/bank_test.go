package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/beatsynth/core"
	"github.com/lixenwraith/beatsynth/parameter"
)

func TestRecipeCoversEveryHit(t *testing.T) {
	for _, h := range core.HitTypes() {
		if len(RecipeFor(h)) == 0 {
			t.Errorf("Expected recipe for %s", h)
		}
	}
	if RecipeFor(core.HitTypeCount) != nil {
		t.Error("Expected nil recipe for invalid hit")
	}
}

// TestRenderHits checks layer count, peak gain, voice length and filters per hit at volume 0.5
func TestRenderHits(t *testing.T) {
	tests := []struct {
		hit    core.HitType
		layers int
		peak   float64 // first layer
		length float64 // first layer stop - start
		filter core.FilterKind
		noise  bool
	}{
		{core.HitKick, 1, 0.5, 0.3, 0, false},
		{core.HitSnare, 2, 0.5, 0.12, 0, false},
		{core.HitHihat, 1, 0.15, 0.05, core.FilterHighpass, true},
		{core.HitClap, 3, 0.2, 0.02, core.FilterBandpass, true},
		{core.HitRim, 1, 0.15, 0.03, 0, false},
		{core.HitCowbell, 2, 0.125, 0.1, 0, false},
		{core.HitShaker, 1, 0.075, 0.04, core.FilterBandpass, true},
		{core.HitConga, 1, 0.2, 0.15, 0, false},
		{core.HitTom, 1, 0.5, 0.25, 0, false},
	}

	bank := NewVoiceBank(nil)
	for _, tt := range tests {
		t.Run(tt.hit.String(), func(t *testing.T) {
			events := bank.Render(tt.hit, 10, 0.5, 3)
			if len(events) != tt.layers {
				t.Fatalf("Expected %d events, got %d", tt.layers, len(events))
			}
			ev := events[0]
			if ev.Trigger != 10 || ev.Start != 10 {
				t.Errorf("Expected trigger and start at 10, got %f/%f", ev.Trigger, ev.Start)
			}
			if ev.Step != 3 || ev.Voice != tt.hit.String() {
				t.Errorf("Expected step 3 voice %s, got %d %s", tt.hit, ev.Step, ev.Voice)
			}
			if got := ev.Gain.ValueAt(10); math.Abs(got-tt.peak) > 1e-9 {
				t.Errorf("Expected peak %f, got %f", tt.peak, got)
			}
			if got := ev.Stop - ev.Start; math.Abs(got-tt.length) > 1e-9 {
				t.Errorf("Expected length %f, got %f", tt.length, got)
			}
			if (ev.Wave == core.WaveNoise) != tt.noise {
				t.Errorf("Expected noise=%v, got wave %s", tt.noise, ev.Wave)
			}
			if tt.noise {
				if ev.Filter == nil || ev.Filter.Kind != tt.filter {
					t.Errorf("Expected %s filter, got %+v", tt.filter, ev.Filter)
				}
			}
		})
	}
}

func TestRenderKickSweep(t *testing.T) {
	ev := NewVoiceBank(nil).Render(core.HitKick, 1, 0.5, 0)[0]

	if got := ev.Frequency.ValueAt(1); got != 150 {
		t.Errorf("Expected 150Hz at trigger, got %f", got)
	}
	if got := ev.Frequency.ValueAt(1.15); !approx(got, 30) {
		t.Errorf("Expected 30Hz after sweep, got %f", got)
	}
	if got := ev.Gain.ValueAt(1.3); !approx(got, parameter.DecayFloor) {
		t.Errorf("Expected decay floor at stop, got %f", got)
	}
}

func TestRenderSnareNoiseLayer(t *testing.T) {
	events := NewVoiceBank(nil).Render(core.HitSnare, 0, 0.5, 0)
	noise := events[1]

	if noise.Wave != core.WaveNoise {
		t.Fatalf("Expected noise layer, got %s", noise.Wave)
	}
	if noise.Filter.Kind != core.FilterHighpass || noise.Filter.Cutoff != 3000 {
		t.Errorf("Expected highpass 3000, got %+v", noise.Filter)
	}
	if got := noise.Gain.ValueAt(0); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Expected noise peak 0.3, got %f", got)
	}
	if !approx(noise.Stop, 0.15) {
		t.Errorf("Expected noise stop 0.15, got %f", noise.Stop)
	}
}

// TestRenderClapStagger verifies three bursts 10ms apart sharing one trigger
func TestRenderClapStagger(t *testing.T) {
	events := NewVoiceBank(nil).Render(core.HitClap, 2, 0.5, 0)
	for i, ev := range events {
		wantStart := 2 + float64(i)*0.01
		if math.Abs(ev.Start-wantStart) > 1e-9 {
			t.Errorf("Burst %d: expected start %f, got %f", i, wantStart, ev.Start)
		}
		if ev.Trigger != 2 {
			t.Errorf("Burst %d: expected trigger 2, got %f", i, ev.Trigger)
		}
		if got := ev.Gain.ValueAt(ev.Start + 0.08); !approx(got, parameter.DecayFloor) {
			t.Errorf("Burst %d: expected floor after 80ms, got %f", i, got)
		}
	}
}

func TestRenderCowbellPair(t *testing.T) {
	events := NewVoiceBank(nil).Render(core.HitCowbell, 0, 0.5, 0)
	if events[0].Frequency.ValueAt(0) != 560 || events[1].Frequency.ValueAt(0) != 845 {
		t.Errorf("Expected 560Hz and 845Hz, got %f and %f",
			events[0].Frequency.ValueAt(0), events[1].Frequency.ValueAt(0))
	}
	for _, ev := range events {
		if ev.Wave != core.WaveSquare {
			t.Errorf("Expected square, got %s", ev.Wave)
		}
	}
}

func TestVoiceBankHitVolumes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HitVolumes[core.HitKick] = 0.5

	ev := NewVoiceBank(cfg).Render(core.HitKick, 0, 0.5, 0)[0]
	if got := ev.Gain.ValueAt(0); !approx(got, 0.25) {
		t.Errorf("Expected scaled peak 0.25, got %f", got)
	}
}

func TestBassNote(t *testing.T) {
	ev := NewVoiceBank(nil).Bass(55, 1, 0.4, 7)

	if ev.Wave != core.WaveSine {
		t.Errorf("Expected sine bass, got %s", ev.Wave)
	}
	if ev.Frequency.ValueAt(1.2) != 55 {
		t.Errorf("Expected 55Hz, got %f", ev.Frequency.ValueAt(1.2))
	}
	if ev.Gain.ValueAt(1) != parameter.BassVolume {
		t.Errorf("Expected %f at onset, got %f", parameter.BassVolume, ev.Gain.ValueAt(1))
	}
	if !approx(ev.Stop, 1.4) || ev.Step != 7 {
		t.Errorf("Expected stop 1.4 step 7, got %f %d", ev.Stop, ev.Step)
	}
}
