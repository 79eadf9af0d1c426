package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/beatsynth/parameter"
)

// Renderer is the device-side half of a context: it owns the sample clock and
// mixes every scheduled voice into one output stream.
// A sink pulls from it through Stream; without a sink it renders offline.
type Renderer struct {
	mu     sync.Mutex
	rate   int
	master *beep.Mixer
	out    beep.Streamer
	pos    int64 // samples rendered since creation
	state  State
	sink   sink

	// Stats
	scheduled atomic.Uint64
	dropped   atomic.Uint64
}

// NewRenderer creates a running renderer at the given sample rate and master volume
func NewRenderer(sampleRate int, masterVolume float64) *Renderer {
	if sampleRate <= 0 {
		sampleRate = parameter.AudioSampleRate
	}
	master := &beep.Mixer{}
	return &Renderer{
		rate:   sampleRate,
		master: master,
		out:    newVolume(master, masterVolume),
	}
}

// Stream implements beep.Streamer; the clock only advances while running
func (r *Renderer) Stream(samples [][2]float64) (n int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case StateClosed:
		return 0, false
	case StateSuspended:
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}

	n, _ = r.out.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	r.pos += int64(len(samples))
	return len(samples), true
}

func (r *Renderer) Err() error { return nil }

// CurrentTime returns rendered seconds
func (r *Renderer) CurrentTime() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float64(r.pos) / float64(r.rate)
}

func (r *Renderer) SampleRate() int { return r.rate }

func (r *Renderer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Suspend freezes the clock and silences output
func (r *Renderer) Suspend() error {
	r.mu.Lock()
	if r.state == StateClosed {
		r.mu.Unlock()
		return ErrContextClosed
	}
	r.state = StateSuspended
	s := r.sink
	r.mu.Unlock()

	if s != nil {
		return s.suspend()
	}
	return nil
}

// Resume restarts a suspended renderer
func (r *Renderer) Resume() error {
	r.mu.Lock()
	if r.state == StateClosed {
		r.mu.Unlock()
		return ErrContextClosed
	}
	s := r.sink
	r.mu.Unlock()

	if s != nil {
		if err := s.resume(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	if r.state == StateSuspended {
		r.state = StateRunning
	}
	r.mu.Unlock()
	return nil
}

// Schedule places ev on the clock with sample accuracy
func (r *Renderer) Schedule(ev Event) Node {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateClosed {
		r.dropped.Add(1)
		return inertNode{}
	}

	target := r.master
	if ev.Bus != nil {
		b, ok := ev.Bus.(*bus)
		if !ok || b.r != r || b.ctrl.Streamer == nil {
			r.dropped.Add(1)
			return inertNode{}
		}
		target = b.mixer
	}

	start := secondsToSample(ev.Start, r.rate)
	stop := secondsToSample(ev.Stop, r.rate)
	from := start
	if from < r.pos {
		from = r.pos
	}
	if stop <= from {
		r.dropped.Add(1)
		return inertNode{}
	}

	var s beep.Streamer = newVoice(ev, r.rate, from)
	if offset := from - r.pos; offset > 0 {
		s = beep.Seq(beep.Silence(int(offset)), s)
	}
	ctrl := &beep.Ctrl{Streamer: s}
	target.Add(ctrl)
	r.scheduled.Add(1)
	return &node{r: r, ctrl: ctrl}
}

// OpenBus creates a sub-mix feeding the master through an optional filter
func (r *Renderer) OpenBus(filter *Filter, gain float64) Bus {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := &beep.Mixer{}
	var s beep.Streamer = m
	if filter != nil {
		s = &filterStreamer{streamer: m, filter: newBiquad(*filter, float64(r.rate))}
	}
	b := &bus{r: r, mixer: m, ctrl: &beep.Ctrl{Streamer: newVolume(s, gain)}}
	if r.state == StateClosed {
		b.ctrl.Streamer = nil
		return b
	}
	r.master.Add(b.ctrl)
	return b
}

// Close stops rendering and detaches the sink; idempotent
func (r *Renderer) Close() error {
	if s := r.shutdown(); s != nil {
		return s.close()
	}
	return nil
}

// fail closes the renderer after its sink broke.
// The sink is released on its own goroutine since fail runs on the sink's monitor.
func (r *Renderer) fail() {
	if s := r.shutdown(); s != nil {
		go s.close()
	}
}

// shutdown marks the renderer closed and returns the detached sink, nil if already closed
func (r *Renderer) shutdown() sink {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateClosed {
		return nil
	}
	r.state = StateClosed
	r.master.Clear()
	s := r.sink
	r.sink = nil
	return s
}

// Active returns the number of voices and buses still mixed into the master
func (r *Renderer) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.master.Len()
}

// GetStats returns scheduled and dropped event counts
func (r *Renderer) GetStats() (scheduled, dropped uint64) {
	return r.scheduled.Load(), r.dropped.Load()
}

func (r *Renderer) attach(s sink) {
	r.mu.Lock()
	if r.state == StateClosed {
		r.mu.Unlock()
		go s.close()
		return
	}
	r.sink = s
	r.mu.Unlock()
}

// node cancels one scheduled voice
type node struct {
	r    *Renderer
	ctrl *beep.Ctrl
}

func (n *node) Stop() {
	n.r.mu.Lock()
	n.ctrl.Streamer = nil
	n.r.mu.Unlock()
}

// inertNode stands in for events that were never placed
type inertNode struct{}

func (inertNode) Stop() {}

type bus struct {
	r     *Renderer
	mixer *beep.Mixer
	ctrl  *beep.Ctrl
}

func (b *bus) Close() {
	b.r.mu.Lock()
	b.ctrl.Streamer = nil
	b.mixer.Clear()
	b.r.mu.Unlock()
}

// --- Pipe writer ---

// pipeWriter pulls the renderer on a fixed tick and writes s16le stereo frames
type pipeWriter struct {
	output   io.Writer
	source   beep.Streamer
	rate     int
	stopChan chan struct{}
	stopped  atomic.Bool
	errChan  chan error
	done     chan struct{}
}

func newPipeWriter(out io.Writer, source beep.Streamer, sampleRate int) *pipeWriter {
	return &pipeWriter{
		output:   out,
		source:   source,
		rate:     sampleRate,
		stopChan: make(chan struct{}),
		errChan:  make(chan error, 1),
		done:     make(chan struct{}),
	}
}

// Start begins the writer loop
func (w *pipeWriter) Start() {
	go w.loop()
}

// Stop signals the loop to halt and waits for it
func (w *pipeWriter) Stop() {
	if w.stopped.CompareAndSwap(false, true) {
		close(w.stopChan)
	}
	<-w.done
}

// Errors returns channel for pipe errors
func (w *pipeWriter) Errors() <-chan error {
	return w.errChan
}

func (w *pipeWriter) loop() {
	defer close(w.done)

	ticker := time.NewTicker(parameter.AudioBufferDuration)
	defer ticker.Stop()

	samplesPerTick := int(int64(w.rate) * int64(parameter.AudioBufferDuration) / int64(time.Second))
	mixBuf := make([][2]float64, samplesPerTick)
	outBytes := make([]byte, samplesPerTick*parameter.AudioBytesPerFrame)

	for {
		select {
		case <-w.stopChan:
			return

		case <-ticker.C:
			n, _ := w.source.Stream(mixBuf)
			for i := n; i < len(mixBuf); i++ {
				mixBuf[i] = [2]float64{}
			}
			floatToBytes(mixBuf, outBytes)

			if _, err := w.output.Write(outBytes); err != nil {
				select {
				case w.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

// floatToBytes converts float64 stereo to interleaved int16 LE bytes
// Applies soft limiting before hard clip
func floatToBytes(in [][2]float64, out []byte) {
	for i, frame := range in {
		for ch, v := range frame {
			// Soft limiter
			if v > 0.8 {
				v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
			} else if v < -0.8 {
				v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
			}

			// Hard clip
			if v > 1.0 {
				v = 1.0
			} else if v < -1.0 {
				v = -1.0
			}

			binary.LittleEndian.PutUint16(out[i*4+ch*2:], uint16(int16(v*32767)))
		}
	}
}
