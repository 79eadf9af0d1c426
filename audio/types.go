package audio

import (
	"errors"

	"github.com/lixenwraith/beatsynth/core"
)

// BackendType identifies the audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
	ErrUnsupported    = errors.New("audio output unsupported")
	ErrContextClosed  = errors.New("audio context closed")
)

// State is the power state of a device context
type State int32

const (
	StateRunning State = iota
	StateSuspended
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Filter is a biquad stage; Q of zero means parameter.DefaultFilterQ
type Filter struct {
	Kind   core.FilterKind
	Cutoff float64
	Q      float64
}

// Event is one fully-resolved synthesis node on the device clock.
// Times are absolute seconds; Trigger is the scheduled hit time and Start may
// trail it for staggered layers.
type Event struct {
	Voice   string
	Step    int // global step index, -1 outside rhythm sessions
	Trigger float64
	Start   float64
	Stop    float64

	Wave      core.Waveform
	Frequency Automation // ignored for WaveNoise
	Detune    float64    // cents
	Filter    *Filter
	Gain      Automation

	Bus Bus // nil routes to the master output
}

// Node is a scheduled event that can be cut short
type Node interface {
	Stop()
}

// Bus is a filtered sub-mix owned by one session
type Bus interface {
	Close()
}

// Context is the connection to the audio rendering device.
// Implementations must be safe for concurrent use.
type Context interface {
	// CurrentTime returns the device clock in seconds
	CurrentTime() float64
	SampleRate() int
	State() State
	Resume() error
	// Schedule submits an event; events that already ended return an inert node
	Schedule(ev Event) Node
	// OpenBus creates a sub-mix routed through filter (nil for none) at the given gain
	OpenBus(filter *Filter, gain float64) Bus
	Close() error
}
