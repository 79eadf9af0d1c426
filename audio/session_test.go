package audio

import (
	"context"
	"testing"
	"time"
)

func newTestSession(timer Timer, d time.Duration) (*Session, *fakeNode, *fakeBus) {
	s := newSession("test", discardLogger())
	n := &fakeNode{}
	b := &fakeBus{}
	s.own(n)
	s.bus = b
	s.arm(timer, d)
	return s, n, b
}

func TestSessionCompletes(t *testing.T) {
	timer := NewManualTimer()
	s, n, b := newTestSession(timer, time.Second)

	if !s.IsPlaying() {
		t.Fatal("Expected new session to be playing")
	}

	timer.Advance(999 * time.Millisecond)
	if !s.IsPlaying() {
		t.Error("Expected session to play until its duration elapses")
	}

	timer.Advance(time.Millisecond)
	if s.IsPlaying() {
		t.Error("Expected session to finish after its duration")
	}
	if s.State() != SessionCompleted {
		t.Errorf("Expected completed, got %s", s.State())
	}
	if b.closeCount() != 1 {
		t.Errorf("Expected bus released once, got %d", b.closeCount())
	}
	if n.stopped {
		t.Error("Expected natural completion to leave nodes alone")
	}

	select {
	case <-s.Done():
	default:
		t.Error("Expected Done to be closed")
	}
}

func TestSessionStopIdempotent(t *testing.T) {
	timer := NewManualTimer()
	s, n, b := newTestSession(timer, time.Second)

	s.Stop()
	s.Stop()

	if s.IsPlaying() {
		t.Error("Expected stopped session not to be playing")
	}
	if s.State() != SessionStopped {
		t.Errorf("Expected stopped, got %s", s.State())
	}
	if !n.stopped {
		t.Error("Expected owned node to be stopped")
	}
	if b.closeCount() != 1 {
		t.Errorf("Expected bus released once, got %d", b.closeCount())
	}
	if timer.Pending() != 0 {
		t.Errorf("Expected timer cancelled, got %d pending", timer.Pending())
	}

	// A late timer fire cannot resurrect or re-complete the session
	timer.Advance(2 * time.Second)
	if s.State() != SessionStopped {
		t.Errorf("Expected state to stay stopped, got %s", s.State())
	}
}

func TestSessionStopAfterCompletion(t *testing.T) {
	timer := NewManualTimer()
	s, n, _ := newTestSession(timer, time.Second)

	timer.Advance(time.Second)
	s.Stop()

	if s.State() != SessionCompleted {
		t.Errorf("Expected completed to be terminal, got %s", s.State())
	}
	if n.stopped {
		t.Error("Expected Stop after completion to be a no-op")
	}
}

func TestSessionWait(t *testing.T) {
	timer := NewManualTimer()
	s, _, _ := newTestSession(timer, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := s.Wait(ctx); err != context.DeadlineExceeded {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}

	go s.Stop()
	if err := s.Wait(context.Background()); err != nil {
		t.Errorf("Expected nil after stop, got %v", err)
	}
}

func TestNoopHandle(t *testing.T) {
	h := NoopHandle()
	h.Stop()
	h.Stop()
	if h.IsPlaying() {
		t.Error("Expected no-op handle not to be playing")
	}
	select {
	case <-h.Done():
	default:
		t.Error("Expected no-op handle to be done")
	}
	if err := h.Wait(context.Background()); err != nil {
		t.Errorf("Expected nil wait, got %v", err)
	}
}

func TestManualTimerOrder(t *testing.T) {
	timer := NewManualTimer()
	var order []int
	timer.AfterFunc(2*time.Second, func() { order = append(order, 2) })
	stop := timer.AfterFunc(time.Second, func() { order = append(order, 1) })
	timer.AfterFunc(3*time.Second, func() { order = append(order, 3) })

	if !stop() {
		t.Error("Expected stop to cancel a pending callback")
	}
	if stop() {
		t.Error("Expected second stop to report nothing cancelled")
	}

	timer.Advance(5 * time.Second)
	if len(order) != 2 || order[0] != 2 || order[1] != 3 {
		t.Errorf("Expected [2 3], got %v", order)
	}
	if timer.Pending() != 0 {
		t.Errorf("Expected nothing pending, got %d", timer.Pending())
	}
}
