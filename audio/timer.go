package audio

import (
	"sort"
	"sync"
	"time"
)

// Timer schedules wall-clock callbacks; sessions use it for self-termination
type Timer interface {
	// AfterFunc runs f after d; the returned stop reports whether it cancelled f
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// SystemTimer is backed by time.AfterFunc
type SystemTimer struct{}

func (SystemTimer) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// ManualTimer fires callbacks only when advanced
type ManualTimer struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualEntry
}

type manualEntry struct {
	due  time.Duration
	seq  int
	f    func()
	done bool
}

// NewManualTimer creates a manual timer at offset zero
func NewManualTimer() *ManualTimer {
	return &ManualTimer{}
}

func (m *ManualTimer) AfterFunc(d time.Duration, f func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	e := &manualEntry{due: m.now + d, seq: m.seq, f: f}
	m.pending = append(m.pending, e)

	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if e.done {
			return false
		}
		e.done = true
		return true
	}
}

// Advance moves time forward and runs every callback now due, in due order
func (m *ManualTimer) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []*manualEntry
	kept := m.pending[:0]
	for _, e := range m.pending {
		switch {
		case e.done:
		case e.due <= m.now:
			e.done = true
			due = append(due, e)
		default:
			kept = append(kept, e)
		}
	}
	m.pending = kept
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, e := range due {
		e.f()
	}
}

// Pending returns the number of callbacks not yet run or cancelled
func (m *ManualTimer) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.pending {
		if !e.done {
			n++
		}
	}
	return n
}
