package audio

import (
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/beatsynth/core"
	"github.com/lixenwraith/beatsynth/parameter"
)

// NoteNames are the twelve pitch classes starting at C
var NoteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteFrequencies contains equal-tempered frequencies for MIDI notes 0-127, A4 (69) = 440Hz
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Pow(2, (float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return NoteFrequencies[midi]
}

// ParseNote converts scientific pitch notation ("C4", "F#3", "Bb5") to a MIDI number
func ParseNote(name string) (int, error) {
	s := strings.TrimSpace(name)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid note %q", name)
	}

	pc := strings.IndexByte("C D EF G A B", strings.ToUpper(s[:1])[0])
	if pc < 0 || s[0] == ' ' {
		return 0, fmt.Errorf("invalid note %q", name)
	}
	rest := s[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		pc++
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		pc--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note %q", name)
	}
	midi := (octave+1)*12 + pc
	if midi < 0 || midi >= 128 {
		return 0, fmt.Errorf("note %q out of range", name)
	}
	return midi, nil
}

// NoteName returns the sharp spelling of a MIDI note
func NoteName(midi int) string {
	return NoteNames[((midi%12)+12)%12] + strconv.Itoa(midi/12-1)
}

// --- Scales and chords ---

// Scales maps scale names to semitone intervals from the root
var Scales = map[string][]int{
	"Major":            {0, 2, 4, 5, 7, 9, 11},
	"Natural Minor":    {0, 2, 3, 5, 7, 8, 10},
	"Harmonic Minor":   {0, 2, 3, 5, 7, 8, 11},
	"Melodic Minor":    {0, 2, 3, 5, 7, 9, 11},
	"Dorian":           {0, 2, 3, 5, 7, 9, 10},
	"Mixolydian":       {0, 2, 4, 5, 7, 9, 10},
	"Phrygian":         {0, 1, 3, 5, 7, 8, 10},
	"Lydian":           {0, 2, 4, 6, 7, 9, 11},
	"Pentatonic Major": {0, 2, 4, 7, 9},
	"Pentatonic Minor": {0, 3, 5, 7, 10},
	"Blues":            {0, 3, 5, 6, 7, 10},
	"Whole Tone":       {0, 2, 4, 6, 8, 10},
	"Chromatic":        {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// chordDegrees maps roman numerals to semitone offsets from the key root
var chordDegrees = map[string][]int{
	"I": {0, 4, 7}, "ii": {2, 5, 9}, "iii": {4, 7, 11}, "IV": {5, 9, 12},
	"V": {7, 11, 14}, "vi": {9, 12, 16}, "vii°": {11, 14, 17},
	"i": {0, 3, 7}, "III": {3, 7, 10}, "VI": {8, 12, 15}, "VII": {10, 14, 17},
}

func pitchClass(root string) int {
	for i, n := range NoteNames {
		if strings.EqualFold(n, root) {
			return i
		}
	}
	return -1
}

func spell(root int, octave int, intervals []int) []string {
	notes := make([]string, len(intervals))
	for i, iv := range intervals {
		notes[i] = NoteName((octave+1)*12 + root + iv)
	}
	return notes
}

// ScaleNotes returns the notes of a scale from root at octave; nil for unknown input
func ScaleNotes(root, scale string, octave int) []string {
	intervals, ok := Scales[scale]
	pc := pitchClass(root)
	if !ok || pc < 0 {
		return nil
	}
	return spell(pc, octave, intervals)
}

// ChordNotes returns the triad for a roman numeral in the key of root; nil for unknown input
func ChordNotes(root, numeral string, octave int) []string {
	intervals, ok := chordDegrees[numeral]
	pc := pitchClass(root)
	if !ok || pc < 0 {
		return nil
	}
	return spell(pc, octave, intervals)
}

// --- Keyboard ---

// NoteEvent builds a filtered keyboard note of duration seconds at t
func NoteEvent(label string, freq, t, duration float64, wave core.Waveform) Event {
	return Event{
		Voice:     label,
		Step:      -1,
		Trigger:   t,
		Start:     t,
		Stop:      t + duration + parameter.NoteTail,
		Wave:      wave,
		Frequency: Const(freq),
		Filter:    &Filter{Kind: core.FilterLowpass, Cutoff: parameter.NoteFilterCutoff},
		Gain: Automation{
			{Time: t, Value: 0, Curve: CurveSet},
			{Time: t + parameter.NoteAttack, Value: parameter.NotePeak, Curve: CurveLinear},
			{Time: t + duration, Value: parameter.NoteFloor, Curve: CurveExponential},
		},
	}
}

// Keyboard plays single notes, chords and front-loaded sequences
type Keyboard struct {
	timer Timer
	log   *log.Logger
}

// NewKeyboard creates a keyboard; nil timer and logger fall back to defaults
func NewKeyboard(timer Timer, logger *log.Logger) *Keyboard {
	if timer == nil {
		timer = SystemTimer{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Keyboard{timer: timer, log: logger}
}

// PlanSequence places notes interval apart from t, each sounding 80% of the interval.
// Unknown notes keep their slot silent.
func PlanSequence(notes []string, t float64, interval time.Duration) []Event {
	gap := interval.Seconds()
	events := make([]Event, 0, len(notes))
	for i, n := range notes {
		midi, err := ParseNote(n)
		if err != nil {
			continue
		}
		ev := NoteEvent(n, NoteFreq(midi), t+float64(i)*gap, gap*0.8, core.WaveTriangle)
		ev.Step = i
		events = append(events, ev)
	}
	return events
}

// PlanChord places every note at t for duration seconds
func PlanChord(notes []string, t, duration float64, wave core.Waveform) []Event {
	events := make([]Event, 0, len(notes))
	for _, n := range notes {
		midi, err := ParseNote(n)
		if err != nil {
			continue
		}
		events = append(events, NoteEvent(n, NoteFreq(midi), t, duration, wave))
	}
	return events
}

// Play schedules events as one session; nil when nothing is playable
func (k *Keyboard) Play(ctx Context, label string, events []Event) *Session {
	if len(events) == 0 {
		return nil
	}

	sess := newSession(label, k.log)
	sess.start = events[0].Start
	end := sess.start
	for _, ev := range events {
		sess.own(ctx.Schedule(ev))
		end = max(end, ev.Stop)
	}
	sess.duration = end - sess.start

	delay := end - ctx.CurrentTime()
	sess.arm(k.timer, parameter.Seconds(max(delay, 0)))
	return sess
}
