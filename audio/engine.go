package audio

import (
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/beatsynth/core"
	"github.com/lixenwraith/beatsynth/parameter"
)

// Engine is the public playback surface over one shared device context.
// Play operations never fail: anything that cannot be scheduled yields a finished handle.
type Engine struct {
	config *Config

	contexts    *ContextManager
	patterns    *Library
	instruments *Catalog
	bank        *VoiceBank

	scheduler *Scheduler
	demo      *DemoPlayer
	keys      *Keyboard

	muted atomic.Bool
	log   *log.Logger
}

// Option customizes an Engine
type Option func(*engineOptions)

type engineOptions struct {
	factory ContextFactory
	timer   Timer
	logger  *log.Logger
	library *Library
	catalog *Catalog
}

// WithContextFactory replaces the device factory
func WithContextFactory(f ContextFactory) Option {
	return func(o *engineOptions) { o.factory = f }
}

// WithTimer replaces the wall-clock timer used for session completion
func WithTimer(t Timer) Option {
	return func(o *engineOptions) { o.timer = t }
}

// WithLogger sets the engine logger; the default discards
func WithLogger(l *log.Logger) Option {
	return func(o *engineOptions) { o.logger = l }
}

// WithLibrary replaces the pattern library
func WithLibrary(l *Library) Option {
	return func(o *engineOptions) { o.library = l }
}

// WithCatalog replaces the instrument catalog
func WithCatalog(c *Catalog) Option {
	return func(o *engineOptions) { o.catalog = c }
}

// NewEngine creates an engine; the device opens lazily on first play
func NewEngine(cfg *Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	o := engineOptions{timer: SystemTimer{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}
	if o.factory == nil {
		o.factory = DeviceFactory(cfg, o.logger)
	}
	if o.library == nil {
		o.library = NewLibrary()
	}
	if o.catalog == nil {
		o.catalog = NewCatalog()
	}

	bank := NewVoiceBank(cfg)
	e := &Engine{
		config:      cfg,
		contexts:    NewContextManager(o.factory, o.logger),
		patterns:    o.library,
		instruments: o.catalog,
		bank:        bank,
		scheduler:   NewScheduler(bank, o.timer, o.logger),
		demo:        NewDemoPlayer(o.timer, o.logger),
		keys:        NewKeyboard(o.timer, o.logger),
		log:         o.logger,
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// acquire returns the shared context, nil when muted or unsupported
func (e *Engine) acquire() Context {
	if e.muted.Load() {
		return nil
	}
	ctx, err := e.contexts.Acquire()
	if err != nil {
		return nil
	}
	return ctx
}

// PlayPattern plays the named genre beat once; unknown names play the default pattern
func (e *Engine) PlayPattern(name string) Handle {
	ctx := e.acquire()
	if ctx == nil {
		return NoopHandle()
	}
	return e.scheduler.Play(ctx, name, e.patterns.Lookup(name))
}

// PlayInstrumentDemo plays v's phrase on the shared context
func (e *Engine) PlayInstrumentDemo(v InstrumentVoice) Handle {
	ctx := e.acquire()
	if ctx == nil {
		return NoopHandle()
	}
	return e.demo.Play(ctx, v)
}

// PlayInstrument looks up a catalog instrument and plays its demo
func (e *Engine) PlayInstrument(name string) Handle {
	v, ok := e.instruments.Lookup(name)
	if !ok {
		e.log.Printf("unknown instrument %q", name)
		return NoopHandle()
	}
	return e.PlayInstrumentDemo(v)
}

// GetTempo returns the BPM of the pattern name resolves to
func (e *Engine) GetTempo(name string) float64 {
	return e.patterns.Tempo(name)
}

// HasPattern reports whether name has its own pattern
func (e *Engine) HasPattern(name string) bool {
	return e.patterns.Has(name)
}

// PlayNote plays one note ("C4") for duration seconds
func (e *Engine) PlayNote(note string, duration float64, wave core.Waveform) Handle {
	if duration <= 0 {
		duration = parameter.NoteDuration
	}
	return e.playKeys(note, func(t float64) []Event {
		return PlanChord([]string{note}, t, duration, wave)
	})
}

// PlayChord plays notes together for duration seconds on a triangle wave
func (e *Engine) PlayChord(notes []string, duration float64) Handle {
	if duration <= 0 {
		duration = parameter.ChordDuration
	}
	return e.playKeys("chord", func(t float64) []Event {
		return PlanChord(notes, t, duration, core.WaveTriangle)
	})
}

// PlaySequence plays notes one after another, interval apart
func (e *Engine) PlaySequence(notes []string, interval time.Duration) Handle {
	if interval <= 0 {
		interval = parameter.SequenceInterval
	}
	return e.playKeys("sequence", func(t float64) []Event {
		return PlanSequence(notes, t, interval)
	})
}

func (e *Engine) playKeys(label string, plan func(t float64) []Event) Handle {
	ctx := e.acquire()
	if ctx == nil {
		return NoopHandle()
	}
	sess := e.keys.Play(ctx, label, plan(ctx.CurrentTime()))
	if sess == nil {
		return NoopHandle()
	}
	return sess
}

// Patterns returns the pattern library
func (e *Engine) Patterns() *Library { return e.patterns }

// Instruments returns the instrument catalog
func (e *Engine) Instruments() *Catalog { return e.instruments }

// Config returns the engine configuration
func (e *Engine) Config() *Config { return e.config }

// ToggleMute toggles mute state, returns true if now enabled
func (e *Engine) ToggleMute() bool {
	for {
		old := e.muted.Load()
		if e.muted.CompareAndSwap(old, !old) {
			return old
		}
	}
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// Context returns the live device context, nil when none is open
func (e *Engine) Context() Context {
	return e.contexts.Current()
}

// Close disposes the shared device context; a later play opens a new one
func (e *Engine) Close() error {
	return e.contexts.Dispose()
}
