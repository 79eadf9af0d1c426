package audio

import (
	"sort"
	"strings"

	"github.com/lixenwraith/beatsynth/core"
)

// Category groups instruments for browsing
type Category string

const (
	CategoryStrings    Category = "Strings"
	CategoryKeys       Category = "Keys & Mallets"
	CategoryBrass      Category = "Brass"
	CategoryWoodwinds  Category = "Woodwinds"
	CategoryPercussion Category = "Percussion"
	CategoryBass       Category = "Bass"
	CategoryElectronic Category = "Electronic"
	CategoryWorld      Category = "World / Folk"
)

// Categories returns every category in display order
func Categories() []Category {
	return []Category{
		CategoryStrings, CategoryKeys, CategoryBrass, CategoryWoodwinds,
		CategoryPercussion, CategoryBass, CategoryElectronic, CategoryWorld,
	}
}

// Envelope is an ADSR description in seconds; Sustain is a level fraction
type Envelope struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// InstrumentVoice describes a synthesized instrument and its demo phrase.
// A note multiplier of zero is a rest.
type InstrumentVoice struct {
	Name          string
	Category      Category
	Waveform      core.Waveform
	BaseFrequency float64
	Envelope      Envelope
	FilterCutoff  float64 // zero disables the shared low-pass
	Detune        float64 // cents
	Notes         []float64
}

// Phrase returns the demo multipliers; an empty list plays the base note once
func (v *InstrumentVoice) Phrase() []float64 {
	if len(v.Notes) == 0 {
		return []float64{1}
	}
	return v.Notes
}

// Catalog is the read-only instrument table
type Catalog struct {
	voices []InstrumentVoice
	index  map[string]int
}

// NewCatalog returns the built-in instrument catalog
func NewCatalog() *Catalog {
	c := &Catalog{
		voices: instruments,
		index:  make(map[string]int, len(instruments)),
	}
	for i, v := range instruments {
		c.index[strings.ToLower(v.Name)] = i
	}
	return c
}

// Lookup finds an instrument by name, ignoring case
func (c *Catalog) Lookup(name string) (InstrumentVoice, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return InstrumentVoice{}, false
	}
	return c.voices[i], true
}

// Names returns instrument names sorted alphabetically
func (c *Catalog) Names() []string {
	names := make([]string, len(c.voices))
	for i, v := range c.voices {
		names[i] = v.Name
	}
	sort.Strings(names)
	return names
}

// InCategory returns the instruments of one category in catalog order
func (c *Catalog) InCategory(cat Category) []InstrumentVoice {
	var out []InstrumentVoice
	for _, v := range c.voices {
		if v.Category == cat {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of instruments
func (c *Catalog) Len() int { return len(c.voices) }

var instruments = []InstrumentVoice{
	{Name: "Acoustic Guitar", Category: CategoryStrings, Waveform: core.WaveTriangle, BaseFrequency: 220,
		Envelope: Envelope{Attack: 0.01, Decay: 0.3, Sustain: 0.2, Release: 0.5},
		Notes: []float64{1, 1.25, 1.5, 1.33, 1, 0.75}},
	{Name: "Electric Guitar", Category: CategoryStrings, Waveform: core.WaveSawtooth, BaseFrequency: 330,
		Envelope: Envelope{Attack: 0.01, Decay: 0.2, Sustain: 0.6, Release: 0.4},
		FilterCutoff: 2000,
		Notes: []float64{1, 1.25, 1.5, 2, 1.5, 1}},
	{Name: "Violin", Category: CategoryStrings, Waveform: core.WaveSawtooth, BaseFrequency: 440,
		Envelope: Envelope{Attack: 0.1, Decay: 0.1, Sustain: 0.8, Release: 0.3},
		FilterCutoff: 3000, Detune: 5,
		Notes: []float64{1, 1.125, 1.25, 1.5, 1.25, 1}},
	{Name: "Cello", Category: CategoryStrings, Waveform: core.WaveSawtooth, BaseFrequency: 130,
		Envelope: Envelope{Attack: 0.15, Decay: 0.1, Sustain: 0.7, Release: 0.5},
		FilterCutoff: 1500, Detune: 3,
		Notes: []float64{1, 1.25, 1.5, 1.33, 1.125, 1}},
	{Name: "Harp", Category: CategoryStrings, Waveform: core.WaveSine, BaseFrequency: 523,
		Envelope: Envelope{Attack: 0.01, Decay: 0.5, Sustain: 0.1, Release: 0.8},
		Notes: []float64{1, 0.75, 0.6, 0.5, 0.6, 0.75, 1, 1.25}},
	{Name: "Piano", Category: CategoryKeys, Waveform: core.WaveTriangle, BaseFrequency: 262,
		Envelope: Envelope{Attack: 0.01, Decay: 0.4, Sustain: 0.3, Release: 0.6},
		Notes: []float64{1, 1.25, 1.5, 2, 1.5, 1.25, 1}},
	{Name: "Rhodes / Electric Piano", Category: CategoryKeys, Waveform: core.WaveSine, BaseFrequency: 330,
		Envelope: Envelope{Attack: 0.01, Decay: 0.5, Sustain: 0.4, Release: 0.6},
		Detune: 2,
		Notes: []float64{1, 1.2, 1.4, 1.33, 1.125, 1}},
	{Name: "Marimba", Category: CategoryKeys, Waveform: core.WaveSine, BaseFrequency: 294,
		Envelope: Envelope{Attack: 0.005, Decay: 0.3, Sustain: 0.05, Release: 0.4},
		Notes: []float64{1, 1.33, 1.5, 1.33, 1, 0.75, 1}},
	{Name: "Kalimba (Thumb Piano)", Category: CategoryKeys, Waveform: core.WaveSine, BaseFrequency: 587,
		Envelope: Envelope{Attack: 0.005, Decay: 0.4, Sustain: 0.1, Release: 0.6},
		Notes: []float64{1, 0.84, 1, 1.19, 1, 0.84, 0.67}},
	{Name: "Trumpet", Category: CategoryBrass, Waveform: core.WaveSawtooth, BaseFrequency: 466,
		Envelope: Envelope{Attack: 0.05, Decay: 0.1, Sustain: 0.7, Release: 0.2},
		FilterCutoff: 2500,
		Notes: []float64{1, 1, 1.25, 1.5, 1.25, 1}},
	{Name: "Trombone", Category: CategoryBrass, Waveform: core.WaveSawtooth, BaseFrequency: 233,
		Envelope: Envelope{Attack: 0.06, Decay: 0.1, Sustain: 0.6, Release: 0.3},
		FilterCutoff: 1800,
		Notes: []float64{1, 1.125, 1.25, 1.5, 1.25, 1}},
	{Name: "French Horn", Category: CategoryBrass, Waveform: core.WaveSawtooth, BaseFrequency: 311,
		Envelope: Envelope{Attack: 0.12, Decay: 0.1, Sustain: 0.7, Release: 0.4},
		FilterCutoff: 1200, Detune: 2,
		Notes: []float64{1, 1.25, 1.5, 1.33, 1.125, 1}},
	{Name: "Flute", Category: CategoryWoodwinds, Waveform: core.WaveSine, BaseFrequency: 698,
		Envelope: Envelope{Attack: 0.08, Decay: 0.05, Sustain: 0.6, Release: 0.3},
		Notes: []float64{1, 1.125, 1.25, 1.125, 1, 0.89, 1}},
	{Name: "Saxophone", Category: CategoryWoodwinds, Waveform: core.WaveSawtooth, BaseFrequency: 370,
		Envelope: Envelope{Attack: 0.05, Decay: 0.1, Sustain: 0.7, Release: 0.3},
		FilterCutoff: 2200, Detune: 4,
		Notes: []float64{1, 1.125, 1.25, 1.33, 1.25, 1.125, 1}},
	{Name: "Clarinet", Category: CategoryWoodwinds, Waveform: core.WaveSquare, BaseFrequency: 294,
		Envelope: Envelope{Attack: 0.04, Decay: 0.1, Sustain: 0.6, Release: 0.3},
		FilterCutoff: 1800,
		Notes: []float64{1, 1.19, 1.33, 1.5, 1.33, 1.19, 1}},
	{Name: "Drum Kit", Category: CategoryPercussion, Waveform: core.WaveTriangle, BaseFrequency: 100,
		Envelope: Envelope{Attack: 0.005, Decay: 0.15, Sustain: 0.0, Release: 0.1},
		Notes: []float64{1, 2, 1, 2, 1, 3, 1, 2}},
	{Name: "Djembe", Category: CategoryPercussion, Waveform: core.WaveTriangle, BaseFrequency: 80,
		Envelope: Envelope{Attack: 0.005, Decay: 0.25, Sustain: 0.02, Release: 0.2},
		Notes: []float64{1, 2.5, 2.5, 1, 1, 2.5, 1, 3}},
	{Name: "Congas", Category: CategoryPercussion, Waveform: core.WaveTriangle, BaseFrequency: 150,
		Envelope: Envelope{Attack: 0.005, Decay: 0.2, Sustain: 0.05, Release: 0.3},
		Notes: []float64{1, 1.5, 1, 1.5, 1.33, 1, 1.5, 1}},
	{Name: "Tabla", Category: CategoryPercussion, Waveform: core.WaveSine, BaseFrequency: 200,
		Envelope: Envelope{Attack: 0.005, Decay: 0.15, Sustain: 0.02, Release: 0.15},
		Detune: 10,
		Notes: []float64{1, 1.5, 1.25, 1.5, 1, 2, 1.25, 1}},
	{Name: "Steel Pan", Category: CategoryPercussion, Waveform: core.WaveSine, BaseFrequency: 523,
		Envelope: Envelope{Attack: 0.005, Decay: 0.3, Sustain: 0.15, Release: 0.5},
		Detune: 8,
		Notes: []float64{1, 1.25, 1, 0.75, 1, 1.25, 1.5, 1}},
	{Name: "Electric Bass", Category: CategoryBass, Waveform: core.WaveSawtooth, BaseFrequency: 82,
		Envelope: Envelope{Attack: 0.01, Decay: 0.2, Sustain: 0.5, Release: 0.3},
		FilterCutoff: 800,
		Notes: []float64{1, 1, 1.33, 1.5, 1.33, 1, 0.75, 1}},
	{Name: "Upright / Double Bass", Category: CategoryBass, Waveform: core.WaveTriangle, BaseFrequency: 73,
		Envelope: Envelope{Attack: 0.02, Decay: 0.3, Sustain: 0.3, Release: 0.5},
		Notes: []float64{1, 1.33, 1.5, 1.33, 1, 0.89, 0.75, 1}},
	{Name: "808 Bass", Category: CategoryBass, Waveform: core.WaveSine, BaseFrequency: 55,
		Envelope: Envelope{Attack: 0.01, Decay: 0.1, Sustain: 0.8, Release: 0.6},
		Notes: []float64{1, 1, 1.33, 1, 0.89, 1, 1.33, 1}},
	{Name: "Synthesizer (Lead)", Category: CategoryElectronic, Waveform: core.WaveSawtooth, BaseFrequency: 440,
		Envelope: Envelope{Attack: 0.02, Decay: 0.1, Sustain: 0.6, Release: 0.3},
		FilterCutoff: 3000, Detune: 7,
		Notes: []float64{1, 1.25, 1.5, 1.25, 1.33, 1.5, 1.25, 1}},
	{Name: "Synth Pad", Category: CategoryElectronic, Waveform: core.WaveSine, BaseFrequency: 220,
		Envelope: Envelope{Attack: 0.5, Decay: 0.2, Sustain: 0.8, Release: 1.0},
		Detune: 5,
		Notes: []float64{1, 1.25, 1.5, 1.25}},
	{Name: "Kora", Category: CategoryWorld, Waveform: core.WaveTriangle, BaseFrequency: 523,
		Envelope: Envelope{Attack: 0.005, Decay: 0.3, Sustain: 0.1, Release: 0.5},
		Notes: []float64{1, 0.84, 0.67, 0.75, 0.84, 1, 1.19, 1}},
	{Name: "Sitar", Category: CategoryWorld, Waveform: core.WaveSawtooth, BaseFrequency: 330,
		Envelope: Envelope{Attack: 0.01, Decay: 0.4, Sustain: 0.2, Release: 0.5},
		FilterCutoff: 4000, Detune: 15,
		Notes: []float64{1, 1.06, 1.125, 1.33, 1.5, 1.33, 1.125, 1}},
	{Name: "Balafon", Category: CategoryWorld, Waveform: core.WaveSquare, BaseFrequency: 392,
		Envelope: Envelope{Attack: 0.005, Decay: 0.2, Sustain: 0.05, Release: 0.3},
		FilterCutoff: 2500,
		Notes: []float64{1, 1.25, 1.5, 1.25, 1, 0.84, 1, 1.25}},
	{Name: "Berimbau", Category: CategoryWorld, Waveform: core.WaveTriangle, BaseFrequency: 196,
		Envelope: Envelope{Attack: 0.005, Decay: 0.2, Sustain: 0.15, Release: 0.3},
		Notes: []float64{1, 1.33, 1, 1.33, 1, 1, 1.33, 1}},
	{Name: "Oud", Category: CategoryWorld, Waveform: core.WaveTriangle, BaseFrequency: 196,
		Envelope: Envelope{Attack: 0.01, Decay: 0.3, Sustain: 0.3, Release: 0.4},
		Detune: 3,
		Notes: []float64{1, 1.06, 1.125, 1.33, 1.5, 1.33, 1.125, 1}},
	{Name: "Didgeridoo", Category: CategoryWorld, Waveform: core.WaveSawtooth, BaseFrequency: 65,
		Envelope: Envelope{Attack: 0.2, Decay: 0.1, Sustain: 0.9, Release: 0.5},
		FilterCutoff: 400,
		Notes: []float64{1, 1, 1.02, 1, 0.98, 1, 1.02, 1}},
	{Name: "Erhu", Category: CategoryWorld, Waveform: core.WaveSawtooth, BaseFrequency: 440,
		Envelope: Envelope{Attack: 0.08, Decay: 0.1, Sustain: 0.7, Release: 0.3},
		FilterCutoff: 2000, Detune: 6,
		Notes: []float64{1, 1.06, 1.125, 1.25, 1.125, 1.06, 1}},
	{Name: "Accordion", Category: CategoryWorld, Waveform: core.WaveSquare, BaseFrequency: 330,
		Envelope: Envelope{Attack: 0.08, Decay: 0.05, Sustain: 0.8, Release: 0.2},
		FilterCutoff: 1500, Detune: 4,
		Notes: []float64{1, 1.125, 1.25, 1.33, 1.25, 1.125, 1}},
	{Name: "Banjo", Category: CategoryStrings, Waveform: core.WaveTriangle, BaseFrequency: 392,
		Envelope: Envelope{Attack: 0.005, Decay: 0.15, Sustain: 0.1, Release: 0.3},
		Notes: []float64{1, 1.25, 1.5, 1.25, 1, 1.5, 1.25, 1}},
	{Name: "Mandolin", Category: CategoryStrings, Waveform: core.WaveTriangle, BaseFrequency: 440,
		Envelope: Envelope{Attack: 0.005, Decay: 0.12, Sustain: 0.15, Release: 0.25},
		Detune: 3,
		Notes: []float64{1, 1.125, 1.25, 1.5, 1.25, 1.125, 1}},
	{Name: "Pedal Steel Guitar", Category: CategoryStrings, Waveform: core.WaveSine, BaseFrequency: 330,
		Envelope: Envelope{Attack: 0.05, Decay: 0.1, Sustain: 0.7, Release: 0.6},
		Notes: []float64{1, 1.06, 1.125, 1.25, 1.125, 1}},
	{Name: "Ukulele", Category: CategoryStrings, Waveform: core.WaveSine, BaseFrequency: 440,
		Envelope: Envelope{Attack: 0.01, Decay: 0.2, Sustain: 0.15, Release: 0.3},
		Notes: []float64{1, 1.25, 1.5, 1.33, 1, 1.25}},
	{Name: "Organ (Hammond)", Category: CategoryKeys, Waveform: core.WaveSquare, BaseFrequency: 262,
		Envelope: Envelope{Attack: 0.02, Decay: 0.05, Sustain: 0.85, Release: 0.15},
		FilterCutoff: 2500, Detune: 6,
		Notes: []float64{1, 1.25, 1.5, 1, 1.25, 1.5, 1.33, 1}},
	{Name: "Vibraphone", Category: CategoryKeys, Waveform: core.WaveSine, BaseFrequency: 440,
		Envelope: Envelope{Attack: 0.01, Decay: 0.8, Sustain: 0.3, Release: 1.0},
		Detune: 2,
		Notes: []float64{1, 1.25, 1.5, 1.33, 1, 0.75}},
	{Name: "Celesta", Category: CategoryKeys, Waveform: core.WaveSine, BaseFrequency: 523,
		Envelope: Envelope{Attack: 0.005, Decay: 0.4, Sustain: 0.1, Release: 0.6},
		Notes: []float64{1, 1.25, 1.5, 1.75, 2, 1.5, 1}},
	{Name: "Tuba", Category: CategoryBrass, Waveform: core.WaveSawtooth, BaseFrequency: 65,
		Envelope: Envelope{Attack: 0.06, Decay: 0.1, Sustain: 0.7, Release: 0.3},
		FilterCutoff: 400,
		Notes: []float64{1, 1.33, 1, 0.75, 1, 1.33, 1}},
	{Name: "Oboe", Category: CategoryWoodwinds, Waveform: core.WaveSawtooth, BaseFrequency: 440,
		Envelope: Envelope{Attack: 0.04, Decay: 0.08, Sustain: 0.7, Release: 0.2},
		FilterCutoff: 1800,
		Notes: []float64{1, 1.125, 1.25, 1.33, 1.25, 1.125, 1}},
	{Name: "Harmonica", Category: CategoryWoodwinds, Waveform: core.WaveSquare, BaseFrequency: 392,
		Envelope: Envelope{Attack: 0.03, Decay: 0.05, Sustain: 0.8, Release: 0.15},
		FilterCutoff: 2000,
		Notes: []float64{1, 1.125, 1, 0.89, 1, 1.125, 1.25, 1}},
	{Name: "Bagpipes", Category: CategoryWoodwinds, Waveform: core.WaveSawtooth, BaseFrequency: 370,
		Envelope: Envelope{Attack: 0.1, Decay: 0.05, Sustain: 0.9, Release: 0.1},
		FilterCutoff: 1200, Detune: 5,
		Notes: []float64{1, 1.125, 1.25, 1.33, 1.25, 1, 1}},
	{Name: "Cajón", Category: CategoryPercussion, Waveform: core.WaveTriangle, BaseFrequency: 80,
		Envelope: Envelope{Attack: 0.005, Decay: 0.15, Sustain: 0.05, Release: 0.1},
		Notes: []float64{1, 2, 1, 2.5, 1, 1, 2, 1}},
	{Name: "Tambourine", Category: CategoryPercussion, Waveform: core.WaveSquare, BaseFrequency: 800,
		Envelope: Envelope{Attack: 0.001, Decay: 0.08, Sustain: 0.02, Release: 0.1},
		FilterCutoff: 3000,
		Notes: []float64{1, 0, 1, 0, 1, 1, 0, 1}},
	{Name: "Talking Drum", Category: CategoryPercussion, Waveform: core.WaveTriangle, BaseFrequency: 200,
		Envelope: Envelope{Attack: 0.01, Decay: 0.2, Sustain: 0.3, Release: 0.15},
		Notes: []float64{1, 1.5, 0.75, 1.25, 1, 1.75, 1.25, 1}},
	{Name: "Synth Bass", Category: CategoryBass, Waveform: core.WaveSawtooth, BaseFrequency: 55,
		Envelope: Envelope{Attack: 0.01, Decay: 0.15, Sustain: 0.6, Release: 0.2},
		FilterCutoff: 300, Detune: 8,
		Notes: []float64{1, 1, 1.33, 1, 1.5, 1, 1.33, 1}},
	{Name: "Fretless Bass", Category: CategoryBass, Waveform: core.WaveSine, BaseFrequency: 82,
		Envelope: Envelope{Attack: 0.03, Decay: 0.1, Sustain: 0.7, Release: 0.4},
		Notes: []float64{1, 1.125, 1.25, 1.33, 1.5, 1.33, 1.25, 1}},
	{Name: "Arpeggiator / Synth Arp", Category: CategoryElectronic, Waveform: core.WaveSawtooth, BaseFrequency: 262,
		Envelope: Envelope{Attack: 0.005, Decay: 0.1, Sustain: 0.3, Release: 0.15},
		FilterCutoff: 3000,
		Notes: []float64{1, 1.25, 1.5, 2, 1.5, 1.25, 1, 0.75}},
	{Name: "Vocoder", Category: CategoryElectronic, Waveform: core.WaveSawtooth, BaseFrequency: 220,
		Envelope: Envelope{Attack: 0.02, Decay: 0.05, Sustain: 0.8, Release: 0.1},
		FilterCutoff: 1500, Detune: 10,
		Notes: []float64{1, 1, 1.25, 1.25, 1.5, 1.5, 1.33, 1}},
	{Name: "Mbira", Category: CategoryWorld, Waveform: core.WaveTriangle, BaseFrequency: 523,
		Envelope: Envelope{Attack: 0.005, Decay: 0.3, Sustain: 0.15, Release: 0.4},
		Detune: 3,
		Notes: []float64{1, 0.75, 1.25, 1, 0.89, 1.125, 0.75, 1}},
	{Name: "Guzheng", Category: CategoryWorld, Waveform: core.WaveTriangle, BaseFrequency: 392,
		Envelope: Envelope{Attack: 0.01, Decay: 0.4, Sustain: 0.2, Release: 0.6},
		Notes: []float64{1, 1.125, 1.25, 1.5, 1.75, 2, 1.5, 1}},
	{Name: "Bouzouki", Category: CategoryWorld, Waveform: core.WaveTriangle, BaseFrequency: 370,
		Envelope: Envelope{Attack: 0.005, Decay: 0.15, Sustain: 0.2, Release: 0.3},
		Detune: 2,
		Notes: []float64{1, 1.25, 1.5, 1.25, 1, 0.89, 1, 1.25}},
	{Name: "Hang Drum / Handpan", Category: CategoryWorld, Waveform: core.WaveSine, BaseFrequency: 294,
		Envelope: Envelope{Attack: 0.01, Decay: 0.6, Sustain: 0.25, Release: 0.8},
		Notes: []float64{1, 1.2, 1.33, 1.5, 1.33, 1.2, 1, 0.89}},
	{Name: "Shamisen", Category: CategoryWorld, Waveform: core.WaveSawtooth, BaseFrequency: 330,
		Envelope: Envelope{Attack: 0.005, Decay: 0.15, Sustain: 0.15, Release: 0.2},
		FilterCutoff: 2500,
		Notes: []float64{1, 1.33, 1, 1.5, 1.33, 1, 0.75, 1}},
	{Name: "Pan Flute", Category: CategoryWorld, Waveform: core.WaveSine, BaseFrequency: 523,
		Envelope: Envelope{Attack: 0.06, Decay: 0.05, Sustain: 0.7, Release: 0.3},
		Notes: []float64{1, 1.125, 1.25, 1.33, 1.25, 1, 0.89, 1}},
}
