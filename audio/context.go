package audio

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// ContextFactory builds a new device context
type ContextFactory func() (Context, error)

// DeviceFactory returns a factory opening devices from cfg
func DeviceFactory(cfg *Config, logger *log.Logger) ContextFactory {
	return func() (Context, error) {
		d, err := OpenDevice(cfg, logger)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// ContextManager lazily builds one shared device context and rebuilds it after Dispose
type ContextManager struct {
	mu      sync.Mutex
	factory ContextFactory
	ctx     Context
	log     *log.Logger
}

// NewContextManager creates a manager around factory
func NewContextManager(factory ContextFactory, logger *log.Logger) *ContextManager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ContextManager{factory: factory, log: logger}
}

// Acquire returns the live context, building one if none exists or the last was closed.
// A suspended context is asked to resume without waiting; a failed resume is only logged.
func (m *ContextManager) Acquire() (Context, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctx == nil || m.ctx.State() == StateClosed {
		if m.factory == nil {
			return nil, ErrUnsupported
		}
		ctx, err := m.factory()
		if err != nil {
			m.log.Printf("audio context unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
		m.ctx = ctx
	}

	if ctx := m.ctx; ctx.State() == StateSuspended {
		go func() {
			if err := ctx.Resume(); err != nil {
				m.log.Printf("audio context resume failed: %v", err)
			}
		}()
	}

	return m.ctx, nil
}

// Current returns the live context without building one
func (m *ContextManager) Current() Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctx == nil || m.ctx.State() == StateClosed {
		return nil
	}
	return m.ctx
}

// Dispose closes the shared context; the next Acquire builds a fresh one
func (m *ContextManager) Dispose() error {
	m.mu.Lock()
	ctx := m.ctx
	m.ctx = nil
	m.mu.Unlock()

	if ctx == nil {
		return nil
	}
	return ctx.Close()
}
