package audio

import (
	"io"
	"log"
	"math"
	"sync"
)

// fakeContext records scheduled events instead of rendering them
type fakeContext struct {
	mu        sync.Mutex
	now       float64
	rate      int
	state     State
	events    []Event
	nodes     []*fakeNode
	buses     []*fakeBus
	resumeErr error
	resumed   chan struct{}
	closes    int
}

func newFakeContext(now float64) *fakeContext {
	return &fakeContext{now: now, rate: 44100, resumed: make(chan struct{}, 8)}
}

func (f *fakeContext) CurrentTime() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeContext) SampleRate() int { return f.rate }

func (f *fakeContext) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeContext) Resume() error {
	f.mu.Lock()
	err := f.resumeErr
	if err == nil && f.state == StateSuspended {
		f.state = StateRunning
	}
	f.mu.Unlock()
	f.resumed <- struct{}{}
	return err
}

func (f *fakeContext) Schedule(ev Event) Node {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	n := &fakeNode{}
	f.nodes = append(f.nodes, n)
	return n
}

func (f *fakeContext) OpenBus(filter *Filter, gain float64) Bus {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := &fakeBus{filter: filter, gain: gain}
	f.buses = append(f.buses, b)
	return b
}

func (f *fakeContext) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateClosed
	f.closes++
	return nil
}

func (f *fakeContext) scheduled() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Event(nil), f.events...)
}

func (f *fakeContext) stoppedNodes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, node := range f.nodes {
		node.mu.Lock()
		if node.stopped {
			n++
		}
		node.mu.Unlock()
	}
	return n
}

type fakeNode struct {
	mu      sync.Mutex
	stopped bool
}

func (n *fakeNode) Stop() {
	n.mu.Lock()
	n.stopped = true
	n.mu.Unlock()
}

type fakeBus struct {
	mu     sync.Mutex
	filter *Filter
	gain   float64
	closed int
}

func (b *fakeBus) Close() {
	b.mu.Lock()
	b.closed++
	b.mu.Unlock()
}

func (b *fakeBus) closeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
