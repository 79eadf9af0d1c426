package audio

import (
	"math/rand"
	"sync"
)

// noiseTableSize is one and a half seconds of noise at 44.1kHz, longer than any noise voice
const noiseTableSize = 1 << 16

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// noiseCache stores a white noise table shared by every noise voice.
// Voices read it from a random offset so simultaneous hits decorrelate.
type noiseCache struct {
	mu    sync.RWMutex
	table floatBuffer
	ready bool
}

var sharedNoise = &noiseCache{}

// get returns the table, generating it on first use
func (c *noiseCache) get() floatBuffer {
	c.mu.RLock()
	if c.ready {
		buf := c.table
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready {
		return c.table
	}

	buf := make(floatBuffer, noiseTableSize)
	for i := range buf {
		buf[i] = rand.Float64()*2 - 1
	}
	c.table = buf
	c.ready = true
	return buf
}

// noiseReader walks the shared table from a random start
type noiseReader struct {
	table floatBuffer
	pos   int
}

func newNoiseReader() *noiseReader {
	table := sharedNoise.get()
	return &noiseReader{table: table, pos: rand.Intn(len(table))}
}

func (r *noiseReader) next() float64 {
	v := r.table[r.pos]
	r.pos++
	if r.pos >= len(r.table) {
		r.pos = 0
	}
	return v
}
