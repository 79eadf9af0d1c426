package service

import (
	"errors"
	"slices"
	"testing"
)

type recorder struct {
	calls []string
}

type stubService struct {
	name     string
	deps     []string
	rec      *recorder
	initErr  error
	startErr error
	args     []any
}

func (s *stubService) Name() string           { return s.name }
func (s *stubService) Dependencies() []string { return s.deps }

func (s *stubService) Init(args ...any) error {
	s.args = args
	s.rec.calls = append(s.rec.calls, "init:"+s.name)
	return s.initErr
}

func (s *stubService) Start() error {
	s.rec.calls = append(s.rec.calls, "start:"+s.name)
	return s.startErr
}

func (s *stubService) Stop() error {
	s.rec.calls = append(s.rec.calls, "stop:"+s.name)
	return nil
}

func TestHubDependencyOrder(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	h.Register(&stubService{name: "ui", deps: []string{"audio"}, rec: rec})
	h.Register(&stubService{name: "audio", rec: rec}, "arg", 3)
	h.Register(&stubService{name: "clock", rec: rec})

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	h.StopAll()

	want := []string{
		"init:audio", "init:clock", "init:ui",
		"start:audio", "start:clock", "start:ui",
		"stop:ui", "stop:clock", "stop:audio",
	}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("Expected %v, got %v", want, rec.calls)
	}

	audio := MustGet[*stubService](h, "audio")
	if len(audio.args) != 2 || audio.args[0] != "arg" {
		t.Errorf("Expected registered args passed to Init, got %v", audio.args)
	}
	if !slices.Equal(h.Names(), []string{"audio", "clock", "ui"}) {
		t.Errorf("Unexpected names %v", h.Names())
	}
}

func TestHubDuplicate(t *testing.T) {
	h := NewHub()
	h.Register(&stubService{name: "audio", rec: &recorder{}})
	if err := h.Register(&stubService{name: "audio", rec: &recorder{}}); err == nil {
		t.Error("Expected duplicate registration to fail")
	}
}

func TestHubMissingDependency(t *testing.T) {
	h := NewHub()
	h.Register(&stubService{name: "ui", deps: []string{"audio"}, rec: &recorder{}})
	if err := h.InitAll(); err == nil {
		t.Error("Expected missing dependency error")
	}
}

func TestHubCycle(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	h.Register(&stubService{name: "a", deps: []string{"b"}, rec: rec})
	h.Register(&stubService{name: "b", deps: []string{"a"}, rec: rec})
	if err := h.InitAll(); err == nil {
		t.Error("Expected cycle error")
	}
	if len(rec.calls) != 0 {
		t.Errorf("Expected no Init calls, got %v", rec.calls)
	}
}

func TestHubStartRollback(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	h.Register(&stubService{name: "a", rec: rec})
	h.Register(&stubService{name: "b", rec: rec, startErr: errors.New("boom")})

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if err := h.StartAll(); err == nil {
		t.Fatal("Expected start failure")
	}

	want := []string{"init:a", "init:b", "start:a", "start:b", "stop:a"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("Expected %v, got %v", want, rec.calls)
	}

	h.StopAll()
	if len(rec.calls) != len(want) {
		t.Error("Expected nothing left to stop after rollback")
	}
}

func TestHubInitRollback(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	h.Register(&stubService{name: "a", rec: rec})
	h.Register(&stubService{name: "b", rec: rec, initErr: errors.New("bad config")})

	if err := h.InitAll(); err == nil {
		t.Fatal("Expected init failure")
	}
	want := []string{"init:a", "init:b", "stop:a"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("Expected %v, got %v", want, rec.calls)
	}
}

func TestMustGetPanics(t *testing.T) {
	h := NewHub()
	h.Register(&stubService{name: "a", rec: &recorder{}})

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on type mismatch")
		}
	}()
	MustGet[*Hub](h, "a")
}
