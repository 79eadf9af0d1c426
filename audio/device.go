package audio

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
)

// sink moves rendered audio from a Renderer to an output
type sink interface {
	suspend() error
	resume() error
	close() error
}

// Device is a Renderer attached to a live output
type Device struct {
	*Renderer
	output Output
	name   string
}

// Output returns the selected output kind
func (d *Device) Output() Output { return d.output }

// Name returns a human-readable backend name
func (d *Device) Name() string { return d.name }

// OpenDevice opens the output named by cfg.Output.
// Auto tries speaker, then oto, then a CLI pipe player.
func OpenDevice(cfg *Config, logger *log.Logger) (*Device, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	r := NewRenderer(cfg.SampleRate, cfg.MasterVolume)

	open := func(o Output) (sink, string, error) {
		switch o {
		case OutputSpeaker:
			s, err := newSpeakerSink(r, cfg.BufferDuration())
			return s, "speaker", err
		case OutputOto:
			s, err := newOtoSink(r)
			return s, "oto", err
		case OutputPipe:
			return newPipeSink(r, logger)
		case OutputNull:
			return newNullSink(r), "null", nil
		default:
			return nil, "", fmt.Errorf("%w: unknown output %q", ErrUnsupported, o)
		}
	}

	order := []Output{cfg.Output}
	if cfg.Output == OutputAuto {
		order = []Output{OutputSpeaker, OutputOto, OutputPipe}
	}

	var lastErr error
	for _, o := range order {
		s, name, err := open(o)
		if err != nil {
			logger.Printf("output %s unavailable: %v", o, err)
			lastErr = err
			continue
		}
		r.attach(s)
		logger.Printf("output %s (%s) at %d Hz", o, name, r.SampleRate())
		return &Device{Renderer: r, output: o, name: name}, nil
	}

	r.Close()
	if lastErr == nil {
		lastErr = ErrNoAudioBackend
	}
	return nil, fmt.Errorf("%w: %v", ErrNoAudioBackend, lastErr)
}

// --- Pipe sink ---

// pipeSink feeds a CLI audio player or OSS device through a pipeWriter
type pipeSink struct {
	backend  *BackendConfig
	renderer *Renderer
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	ossFile  *os.File
	writer   *pipeWriter
	log      *log.Logger

	running atomic.Bool
	wg      sync.WaitGroup
}

func newPipeSink(r *Renderer, logger *log.Logger) (sink, string, error) {
	backend, err := DetectBackend(r.SampleRate())
	if err != nil {
		return nil, "", err
	}

	ps := &pipeSink{backend: backend, log: logger}

	var out io.Writer
	if backend.Type == BackendOSS {
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			return nil, "", err
		}
		ps.ossFile = f
		out = f
	} else {
		cmd := exec.Command(backend.Path, backend.Args...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return nil, "", err
		}
		if err := cmd.Start(); err != nil {
			stdin.Close()
			return nil, "", err
		}
		ps.cmd = cmd
		ps.stdin = stdin
		out = stdin

		ps.wg.Add(1)
		go ps.monitorProcess()
	}

	ps.start(r, out)
	return ps, backend.Name, nil
}

// start begins streaming r into out
func (ps *pipeSink) start(r *Renderer, out io.Writer) {
	ps.renderer = r
	ps.writer = newPipeWriter(out, r, r.SampleRate())
	ps.writer.Start()
	ps.running.Store(true)

	ps.wg.Add(1)
	go ps.monitorWriter()
}

// monitorProcess watches for subprocess exit
func (ps *pipeSink) monitorProcess() {
	defer ps.wg.Done()

	if err := ps.cmd.Wait(); err != nil && ps.running.Load() {
		ps.log.Printf("%s exited: %v", ps.backend.Name, err)
	}
}

// monitorWriter watches for pipe errors
func (ps *pipeSink) monitorWriter() {
	defer ps.wg.Done()

	select {
	case err := <-ps.writer.Errors():
		ps.log.Printf("%s: %v", ps.backend.Name, err)
		// Player is gone; close the renderer so the next Acquire opens a new device
		ps.renderer.fail()
	case <-ps.writer.done:
	}
}

// CLI players cannot pause; the renderer already emits silence while suspended
func (ps *pipeSink) suspend() error { return nil }

func (ps *pipeSink) resume() error {
	if !ps.running.Load() {
		return ErrPipeClosed
	}
	return nil
}

func (ps *pipeSink) close() error {
	if !ps.running.CompareAndSwap(true, false) {
		return nil
	}

	ps.writer.Stop()

	if ps.stdin != nil {
		ps.stdin.Close()
	}
	if ps.ossFile != nil {
		ps.ossFile.Close()
	}
	if ps.cmd != nil && ps.cmd.Process != nil {
		ps.cmd.Process.Kill()
	}

	ps.wg.Wait()
	return nil
}

// --- Null sink ---

// nullSink drives the clock in real time and discards the samples
type nullSink struct {
	writer *pipeWriter
	closed atomic.Bool
}

func newNullSink(r *Renderer) *nullSink {
	ns := &nullSink{writer: newPipeWriter(io.Discard, r, r.SampleRate())}
	ns.writer.Start()
	return ns
}

func (ns *nullSink) suspend() error { return nil }
func (ns *nullSink) resume() error  { return nil }

func (ns *nullSink) close() error {
	if ns.closed.CompareAndSwap(false, true) {
		ns.writer.Stop()
	}
	return nil
}
