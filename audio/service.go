package audio

import (
	"log"
	"sync/atomic"
)

// Service wraps Engine as a service.Service
// Handles graceful degradation when no audio output is available
type Service struct {
	config   *Config
	logger   *log.Logger
	opts     []Option
	engine   *Engine
	disabled atomic.Bool
	stopped  atomic.Bool
}

// NewService creates a new audio service; opts are passed to the engine
func NewService(opts ...Option) *Service {
	return &Service{opts: opts}
}

// Name implements Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements Service
// Accepts in any order: *Config, *log.Logger, bool (true = muted)
// Without a *Config the environment is loaded
func (s *Service) Init(args ...any) error {
	muted := -1
	for _, a := range args {
		switch v := a.(type) {
		case *Config:
			s.config = v
		case *log.Logger:
			s.logger = v
		case bool:
			if v {
				muted = 1
			} else {
				muted = 0
			}
		}
	}

	if s.config == nil {
		s.config = LoadConfig()
	}
	if muted >= 0 {
		s.config.Enabled = muted == 0
	}

	opts := s.opts
	if s.logger != nil {
		opts = append([]Option{WithLogger(s.logger)}, opts...)
	}
	s.engine = NewEngine(s.config, opts...)
	return nil
}

// Start implements Service
// Opens the device up front; sets disabled on failure (no error returned)
func (s *Service) Start() error {
	if s.engine == nil {
		s.disabled.Store(true)
		return nil
	}
	if !s.config.Enabled {
		return nil
	}
	if _, err := s.engine.contexts.Acquire(); err != nil {
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements Service
func (s *Service) Stop() error {
	if s.engine == nil || !s.stopped.CompareAndSwap(false, true) {
		return nil
	}
	return s.engine.Close()
}

// IsDisabled returns true if audio output is unavailable
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Engine returns the underlying Engine (nil before Init).
// A disabled engine still answers tempo and catalog queries and returns finished handles.
func (s *Service) Engine() *Engine {
	return s.engine
}
