package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// speaker is process-global; one renderer owns it at a time
var speakerMu sync.Mutex

// speakerSink plays a renderer through the beep speaker
type speakerSink struct {
	mu     sync.Mutex
	closed bool
}

func newSpeakerSink(r *Renderer, buffer time.Duration) (*speakerSink, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	rate := beep.SampleRate(r.SampleRate())
	if err := speaker.Init(rate, rate.N(buffer)); err != nil {
		return nil, err
	}
	speaker.Play(r)
	return &speakerSink{}, nil
}

func (s *speakerSink) suspend() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrContextClosed
	}
	return speaker.Suspend()
}

func (s *speakerSink) resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrContextClosed
	}
	return speaker.Resume()
}

func (s *speakerSink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	speakerMu.Lock()
	defer speakerMu.Unlock()
	speaker.Clear()
	speaker.Close()
	return nil
}
