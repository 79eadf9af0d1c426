package audio

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/hajimehoshi/oto/v2"

	"github.com/lixenwraith/beatsynth/parameter"
)

// oto allows one context per process; it is created on first use and kept
var (
	otoOnce  sync.Once
	otoCtx   *oto.Context
	otoReady chan struct{}
	otoRate  int
	otoErr   error
)

func otoContext(sampleRate int) (*oto.Context, error) {
	otoOnce.Do(func() {
		otoCtx, otoReady, otoErr = oto.NewContext(sampleRate, parameter.AudioChannels, oto.FormatFloat32LE)
		otoRate = sampleRate
	})
	if otoErr != nil {
		return nil, otoErr
	}
	if otoRate != sampleRate {
		return nil, fmt.Errorf("%w: oto already running at %d Hz", ErrUnsupported, otoRate)
	}
	<-otoReady
	return otoCtx, nil
}

// otoSink streams a renderer through an oto player
type otoSink struct {
	ctx    *oto.Context
	player oto.Player
	once   sync.Once
}

func newOtoSink(r *Renderer) (*otoSink, error) {
	ctx, err := otoContext(r.SampleRate())
	if err != nil {
		return nil, err
	}
	p := ctx.NewPlayer(&streamReader{source: r})
	p.Play()
	return &otoSink{ctx: ctx, player: p}, nil
}

func (s *otoSink) suspend() error { return s.ctx.Suspend() }
func (s *otoSink) resume() error  { return s.ctx.Resume() }

func (s *otoSink) close() error {
	var err error
	s.once.Do(func() {
		err = s.player.Close()
	})
	return err
}

// streamReader encodes a streamer as interleaved float32 LE stereo
type streamReader struct {
	source interface {
		Stream([][2]float64) (int, bool)
	}
	buf [][2]float64
}

func (sr *streamReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	if cap(sr.buf) < frames {
		sr.buf = make([][2]float64, frames)
	}
	buf := sr.buf[:frames]

	n, ok := sr.source.Stream(buf)
	if !ok && n == 0 {
		return 0, io.EOF
	}
	for i := 0; i < n; i++ {
		putFloat32(p[i*8:], buf[i][0])
		putFloat32(p[i*8+4:], buf[i][1])
	}
	return n * 8, nil
}

func putFloat32(b []byte, v float64) {
	bits := math.Float32bits(float32(v))
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
