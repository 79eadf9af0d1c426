package audio

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/beatsynth/core"
)

func newTestEngine(t *testing.T, ctxs ...*fakeContext) (*Engine, *ManualTimer, *int) {
	t.Helper()
	factory, calls := countingFactory(ctxs...)
	timer := NewManualTimer()
	e := NewEngine(DefaultConfig(), WithContextFactory(factory), WithTimer(timer), WithLogger(discardLogger()))
	return e, timer, calls
}

func TestEngineLazyContext(t *testing.T) {
	e, _, calls := newTestEngine(t, newFakeContext(0))

	if e.Context() != nil || *calls != 0 {
		t.Fatal("Expected no device before the first play")
	}
	if e.GetTempo("Trap") != 140 || !e.HasPattern("Trap") {
		t.Error("Expected tempo queries without a device")
	}

	h := e.PlayPattern("Trap")
	if !h.IsPlaying() {
		t.Error("Expected pattern to play")
	}
	e.PlayInstrument("Violin")
	if *calls != 1 {
		t.Errorf("Expected one shared context, got %d factory calls", *calls)
	}
}

func TestEngineSharedContext(t *testing.T) {
	fc := newFakeContext(0)
	e, timer, _ := newTestEngine(t, fc)

	beat := e.PlayPattern("House")
	demo := e.PlayInstrument("flute")
	if !beat.IsPlaying() || !demo.IsPlaying() {
		t.Fatal("Expected both sessions to play together")
	}

	demo.Stop()
	if !beat.IsPlaying() {
		t.Error("Expected stopping a demo to leave the beat playing")
	}
	if fc.State() == StateClosed {
		t.Error("Expected the device to outlive a demo")
	}

	timer.Advance(10 * time.Second)
	if beat.IsPlaying() {
		t.Error("Expected the beat to complete")
	}
}

func TestEngineUnknownNames(t *testing.T) {
	fc := newFakeContext(0)
	e, _, _ := newTestEngine(t, fc)

	if e.GetTempo("Unknown") != 120 || e.HasPattern("Unknown") {
		t.Error("Expected default tempo for unknown pattern")
	}

	h := e.PlayPattern("Unknown")
	if !h.IsPlaying() {
		t.Error("Expected unknown pattern to play the default beat")
	}

	before := len(fc.scheduled())
	h = e.PlayInstrument("Theremin")
	if h.IsPlaying() || len(fc.scheduled()) != before {
		t.Error("Expected unknown instrument to schedule nothing")
	}
}

func TestEngineUnsupported(t *testing.T) {
	e := NewEngine(DefaultConfig(), WithContextFactory(func() (Context, error) {
		return nil, errors.New("no device")
	}))

	handles := []Handle{
		e.PlayPattern("Pop"),
		e.PlayInstrument("Piano"),
		e.PlayNote("C4", 0, core.WaveSine),
		e.PlayChord([]string{"C4", "E4"}, 0),
		e.PlaySequence([]string{"C4"}, 0),
	}
	for i, h := range handles {
		if h.IsPlaying() {
			t.Errorf("handle %d: expected finished handle without a device", i)
		}
		select {
		case <-h.Done():
		default:
			t.Errorf("handle %d: expected Done closed", i)
		}
		h.Stop()
	}
	if e.GetTempo("Pop") != 120 {
		t.Error("Expected tempo without a device")
	}
}

func TestEngineMute(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	factory, calls := countingFactory(newFakeContext(0))
	e := NewEngine(cfg, WithContextFactory(factory))

	if !e.IsMuted() {
		t.Fatal("Expected disabled config to start muted")
	}
	if e.PlayPattern("Pop").IsPlaying() || *calls != 0 {
		t.Error("Expected muted engine to leave the device closed")
	}

	if !e.ToggleMute() {
		t.Error("Expected ToggleMute to report enabled")
	}
	if !e.PlayPattern("Pop").IsPlaying() {
		t.Error("Expected playback after unmute")
	}
}

func TestEngineToggleMuteConcurrent(t *testing.T) {
	e := NewEngine(DefaultConfig(), WithContextFactory(func() (Context, error) {
		return newFakeContext(0), nil
	}))

	const toggles = 1000
	var wg sync.WaitGroup
	wg.Add(toggles)
	for i := 0; i < toggles; i++ {
		go func() {
			defer wg.Done()
			e.ToggleMute()
		}()
	}
	wg.Wait()

	// An even number of toggles returns to the starting state
	if e.IsMuted() {
		t.Error("Expected no lost toggles after an even number of concurrent toggles")
	}
}

func TestEngineCloseReopens(t *testing.T) {
	first, second := newFakeContext(0), newFakeContext(0)
	e, _, calls := newTestEngine(t, first, second)

	h := e.PlayPattern("Pop")
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if first.State() != StateClosed {
		t.Error("Expected Close to dispose the device")
	}
	h.Stop()

	e.PlayPattern("Pop")
	if *calls != 2 || e.Context() != Context(second) {
		t.Error("Expected a fresh device after Close")
	}
}

func TestEngineKeyboard(t *testing.T) {
	fc := newFakeContext(1)
	e, timer, _ := newTestEngine(t, fc)

	h := e.PlayNote("A4", 0, core.WaveSine)
	evs := fc.scheduled()
	if len(evs) != 1 || evs[0].Frequency.ValueAt(1) != 440 {
		t.Fatalf("Expected one A4 event, got %d", len(evs))
	}
	if !approx(evs[0].Stop, 1.45) {
		t.Errorf("Expected default note length, got stop %f", evs[0].Stop)
	}

	e.PlayChord([]string{"C4", "E4", "G4"}, 0)
	if got := len(fc.scheduled()); got != 4 {
		t.Errorf("Expected 3 chord events, got %d total", got)
	}

	e.PlaySequence([]string{"C4", "D4"}, 0)
	evs = fc.scheduled()
	if !approx(evs[5].Start-evs[4].Start, 0.2) {
		t.Errorf("Expected default 200ms interval, got %f", evs[5].Start-evs[4].Start)
	}

	if e.PlayNote("nope", 0, core.WaveSine).IsPlaying() {
		t.Error("Expected unparseable note to return a finished handle")
	}

	timer.Advance(2 * time.Second)
	if h.IsPlaying() {
		t.Error("Expected note to complete")
	}
}
