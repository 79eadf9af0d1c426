package audio

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/lixenwraith/beatsynth/core"
	"github.com/lixenwraith/beatsynth/parameter"
)

// Hit is one percussion trigger within a step; zero Volume means parameter.DefaultHitVolume
type Hit struct {
	Type   core.HitType
	Volume float64
}

// Level returns the effective trigger volume
func (h Hit) Level() float64 {
	if h.Volume <= 0 {
		return parameter.DefaultHitVolume
	}
	return h.Volume
}

// Step holds simultaneous hits; nil is silence
type Step []Hit

// BassNote is one bass trigger; zero Duration means parameter.BassDurationSteps steps
type BassNote struct {
	Freq     float64
	Duration float64 // seconds
}

// RhythmPattern is a one-bar grid of 16 steps repeated for Bars bars.
// Bass notes are keyed by step index within the bar and repeat every bar.
type RhythmPattern struct {
	BPM   float64
	Bars  int
	Steps [parameter.StepsPerBar]Step
	Bass  map[int]BassNote
}

// StepDuration returns one sixteenth note in seconds
func (p *RhythmPattern) StepDuration() float64 {
	return parameter.StepDuration(p.BPM)
}

// Duration returns the full session length in seconds
func (p *RhythmPattern) Duration() float64 {
	return parameter.SessionDuration(p.BPM, p.Bars)
}

// Validate reports patterns the scheduler cannot play
func (p *RhythmPattern) Validate() error {
	if p.BPM <= 0 {
		return fmt.Errorf("invalid bpm %v", p.BPM)
	}
	if p.Bars <= 0 {
		return fmt.Errorf("invalid bar count %d", p.Bars)
	}
	for step, n := range p.Bass {
		if step < 0 || step >= parameter.StepsPerBar {
			return fmt.Errorf("bass step %d out of range", step)
		}
		if n.Freq <= 0 || n.Duration < 0 {
			return fmt.Errorf("invalid bass note at step %d", step)
		}
	}
	return nil
}

// DefaultPatternName labels the fallback pattern in logs and listings
const DefaultPatternName = "default"

// Library maps genre names to rhythm patterns with a fallback for unknown names
type Library struct {
	mu       sync.RWMutex
	patterns map[string]*RhythmPattern
	fallback *RhythmPattern
}

// NewLibrary returns a library holding every built-in genre pattern
func NewLibrary() *Library {
	l := &Library{
		patterns: make(map[string]*RhythmPattern, len(genrePatterns)),
		fallback: defaultPattern,
	}
	for name, p := range genrePatterns {
		l.patterns[name] = p
	}
	return l
}

// Register adds or replaces a named pattern
func (l *Library) Register(name string, p *RhythmPattern) error {
	if p == nil {
		return fmt.Errorf("nil pattern for %q", name)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("pattern %q: %w", name, err)
	}
	l.mu.Lock()
	l.patterns[name] = p
	l.mu.Unlock()
	return nil
}

// Lookup returns the pattern registered under name, or the default pattern.
// Names are matched exactly.
func (l *Library) Lookup(name string) *RhythmPattern {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if p, ok := l.patterns[name]; ok {
		return p
	}
	return l.fallback
}

// Has reports whether name has its own pattern
func (l *Library) Has(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.patterns[name]
	return ok
}

// Tempo returns the BPM of the pattern name resolves to
func (l *Library) Tempo(name string) float64 {
	return l.Lookup(name).BPM
}

// Names returns registered pattern names in sorted order
func (l *Library) Names() []string {
	l.mu.RLock()
	names := make([]string, 0, len(l.patterns))
	for name := range l.patterns {
		names = append(names, name)
	}
	l.mu.RUnlock()
	sort.Strings(names)
	return names
}

// --- Grid notation ---

// ParseGrid reads a 16-step grid of whitespace-separated cells.
// A cell is "." for silence or hits joined by "+", each optionally "name:volume".
func ParseGrid(s string) ([parameter.StepsPerBar]Step, error) {
	var steps [parameter.StepsPerBar]Step
	cells := strings.Fields(s)
	if len(cells) != parameter.StepsPerBar {
		return steps, fmt.Errorf("grid has %d steps, want %d", len(cells), parameter.StepsPerBar)
	}

	for i, cell := range cells {
		if cell == "." {
			continue
		}
		for _, tok := range strings.Split(cell, "+") {
			name, vol, hasVol := strings.Cut(tok, ":")
			h, ok := core.ParseHitType(name)
			if !ok {
				return steps, fmt.Errorf("step %d: unknown hit %q", i, name)
			}
			hit := Hit{Type: h}
			if hasVol {
				v, err := strconv.ParseFloat(vol, 64)
				if err != nil || v < 0 {
					return steps, fmt.Errorf("step %d: invalid volume %q", i, vol)
				}
				hit.Volume = v
			}
			steps[i] = append(steps[i], hit)
		}
	}
	return steps, nil
}

// ParseBass reads space-separated "step:freq" or "step:freq:seconds" notes
func ParseBass(s string) (map[int]BassNote, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}

	notes := make(map[int]BassNote, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid bass note %q", f)
		}
		step, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid bass step %q", parts[0])
		}
		freq, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bass frequency %q", parts[1])
		}
		n := BassNote{Freq: freq}
		if len(parts) == 3 {
			if n.Duration, err = strconv.ParseFloat(parts[2], 64); err != nil {
				return nil, fmt.Errorf("invalid bass duration %q", parts[2])
			}
		}
		// First note on a step wins
		if _, dup := notes[step]; !dup {
			notes[step] = n
		}
	}
	return notes, nil
}

// rhythm builds a static pattern and panics on malformed notation
func rhythm(bpm float64, grid, bass string) *RhythmPattern {
	steps, err := ParseGrid(grid)
	if err != nil {
		panic(err)
	}
	notes, err := ParseBass(bass)
	if err != nil {
		panic(err)
	}
	p := &RhythmPattern{BPM: bpm, Bars: 2, Steps: steps, Bass: notes}
	if err := p.Validate(); err != nil {
		panic(err)
	}
	return p
}
