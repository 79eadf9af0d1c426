package main

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/lixenwraith/beatsynth/audio"
)

func TestAwaitSessionDrainsAfterCompletion(t *testing.T) {
	drain := 30 * time.Millisecond
	start := time.Now()
	if err := awaitSession(context.Background(), audio.NoopHandle(), drain); err != nil {
		t.Fatalf("awaitSession: %v", err)
	}
	if elapsed := time.Since(start); elapsed < drain {
		t.Errorf("Expected to wait out the device buffer, returned after %v", elapsed)
	}
}

func TestAwaitSessionInterruptStops(t *testing.T) {
	eng := newTestEngine()
	h := eng.PlayPattern(audio.DefaultPatternName)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := awaitSession(ctx, h, time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if time.Since(start) >= time.Second {
		t.Error("Expected interrupt to skip the drain")
	}
	if h.IsPlaying() {
		t.Error("Expected interrupted session to be stopped")
	}
}

func TestAudioArgsMuteOverride(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		muteSet   bool
		mute      bool
		wantMuted bool
	}{
		{"env disabled, flag absent", false, false, false, true},
		{"env enabled, flag absent", true, false, false, false},
		{"env enabled, -mute", true, true, true, true},
		{"env disabled, -mute=false", false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := audio.DefaultConfig()
			cfg.Enabled = tt.enabled

			svc := audio.NewService()
			if err := svc.Init(audioArgs(cfg, log.New(io.Discard, "", 0), tt.muteSet, tt.mute)...); err != nil {
				t.Fatalf("Init: %v", err)
			}
			if got := svc.Engine().IsMuted(); got != tt.wantMuted {
				t.Errorf("IsMuted = %v, want %v", got, tt.wantMuted)
			}
		})
	}
}

func TestFlagSetUnvisited(t *testing.T) {
	if flagSet("mute") {
		t.Error("Expected -mute unset when not on the command line")
	}
}
