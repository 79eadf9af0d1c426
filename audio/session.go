package audio

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Handle controls one playback session
type Handle interface {
	// Stop silences the session; safe to call repeatedly
	Stop()
	// IsPlaying reports whether the session is still scheduled
	IsPlaying() bool
	// Done is closed once the session stops or completes
	Done() <-chan struct{}
	// Wait blocks until Done or ctx ends
	Wait(ctx context.Context) error
}

// SessionState is the lifecycle position of a session
type SessionState int32

const (
	SessionScheduled SessionState = iota
	SessionStopped
	SessionCompleted
)

func (s SessionState) String() string {
	switch s {
	case SessionScheduled:
		return "scheduled"
	case SessionStopped:
		return "stopped"
	case SessionCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Session owns the nodes and bus of one scheduled job.
// It never touches the shared device context beyond its own nodes.
type Session struct {
	name  string
	state atomic.Int32

	mu     sync.Mutex
	nodes  []Node
	bus    Bus
	cancel func() bool

	start    float64 // device time of the first event
	duration float64 // nominal length in seconds

	done chan struct{}
	log  *log.Logger
}

func newSession(name string, logger *log.Logger) *Session {
	return &Session{
		name: name,
		done: make(chan struct{}),
		log:  logger,
	}
}

// arm starts the self-termination timer
func (s *Session) arm(timer Timer, d time.Duration) {
	stop := timer.AfterFunc(d, s.complete)
	s.mu.Lock()
	s.cancel = stop
	s.mu.Unlock()
}

func (s *Session) own(n Node) {
	s.mu.Lock()
	s.nodes = append(s.nodes, n)
	s.mu.Unlock()
}

// Name returns the pattern or instrument the session plays
func (s *Session) Name() string { return s.name }

// State returns the current lifecycle state
func (s *Session) State() SessionState { return SessionState(s.state.Load()) }

// Start returns the device time of the first event
func (s *Session) Start() float64 { return s.start }

// Duration returns the nominal session length in seconds
func (s *Session) Duration() float64 { return s.duration }

// Nodes returns the number of events the session placed
func (s *Session) Nodes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.nodes)
}

func (s *Session) IsPlaying() bool {
	return s.State() == SessionScheduled
}

func (s *Session) Done() <-chan struct{} { return s.done }

func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop cancels the timer, silences every owned node and releases the bus
func (s *Session) Stop() {
	if !s.state.CompareAndSwap(int32(SessionScheduled), int32(SessionStopped)) {
		return
	}

	s.mu.Lock()
	cancel, nodes, bus := s.cancel, s.nodes, s.bus
	s.nodes, s.bus = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	for _, n := range nodes {
		n.Stop()
	}
	if bus != nil {
		bus.Close()
	}

	s.log.Printf("session %q stopped", s.name)
	close(s.done)
}

// complete is the natural end; nodes have already run out on the device
func (s *Session) complete() {
	if !s.state.CompareAndSwap(int32(SessionScheduled), int32(SessionCompleted)) {
		return
	}

	s.mu.Lock()
	bus := s.bus
	s.nodes, s.bus = nil, nil
	s.mu.Unlock()

	if bus != nil {
		bus.Close()
	}

	s.log.Printf("session %q completed", s.name)
	close(s.done)
}

// noopHandle is returned when nothing could be scheduled
type noopHandle struct{}

var closedChan = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// NoopHandle returns a handle that is already finished
func NoopHandle() Handle { return noopHandle{} }

func (noopHandle) Stop() {}
func (noopHandle) IsPlaying() bool { return false }
func (noopHandle) Done() <-chan struct{} { return closedChan }
func (noopHandle) Wait(ctx context.Context) error { return nil }
