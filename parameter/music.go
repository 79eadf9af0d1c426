package parameter

import "time"

// Tempo and Grid
const (
	StepsPerBeat = 4                          // 16th notes
	BeatsPerBar  = 4                          // 4/4 time
	StepsPerBar  = StepsPerBeat * BeatsPerBar // 16 steps
)

// Rhythm scheduling
const (
	// RhythmLead is added to the device clock before the first step
	RhythmLead = 0.05

	// DefaultHitVolume applies to steps that do not carry a volume
	DefaultHitVolume = 0.5

	// BassVolume is the peak gain of a bass note
	BassVolume = 0.3

	// BassDurationSteps is the default bass note length in steps
	BassDurationSteps = 2
)

// Melodic demo
const (
	// DemoSlot is the fixed duration of one demo note in seconds
	DemoSlot = 0.35

	// DemoLead is added to the device clock before the first demo note
	DemoLead = 0.1

	// DemoPeak is the envelope peak of a demo note
	DemoPeak = 0.3

	// DemoEnvelopeShare caps each of attack, decay and release at this fraction of a slot
	DemoEnvelopeShare = 0.3

	// DemoTail keeps oscillators alive past the slot so the release can finish
	DemoTail = 0.1

	// DemoMargin is added to the demo length before the session self-terminates
	DemoMargin = 500 * time.Millisecond
)

// Keyboard notes
const (
	NoteDuration     = 0.4
	ChordDuration    = 0.8
	SequenceInterval = 200 * time.Millisecond
	NotePeak         = 0.3
	NoteAttack       = 0.02
	NoteFloor        = 0.01
	NoteTail         = 0.05
	NoteFilterCutoff = 2000.0
)

// StepDuration returns one sixteenth note in seconds
func StepDuration(bpm float64) float64 {
	return 60 / bpm / StepsPerBeat
}

// SessionDuration returns the length of a pattern played for the given bars
func SessionDuration(bpm float64, bars int) float64 {
	return float64(bars*StepsPerBar) * StepDuration(bpm)
}

// Seconds converts a clock offset in seconds to a time.Duration
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
