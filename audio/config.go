package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/beatsynth/core"
	"github.com/lixenwraith/beatsynth/parameter"
)

// Output selects how the device context reaches the speakers
type Output string

const (
	OutputAuto    Output = "auto"
	OutputSpeaker Output = "speaker"
	OutputOto     Output = "oto"
	OutputPipe    Output = "pipe"
	OutputNull    Output = "null"
)

// ParseOutput returns the output for a name; unknown names fall back to auto
func ParseOutput(s string) Output {
	switch o := Output(strings.ToLower(strings.TrimSpace(s))); o {
	case OutputSpeaker, OutputOto, OutputPipe, OutputNull:
		return o
	default:
		return OutputAuto
	}
}

// Environment variable names
const (
	EnvEnabled      = "BEATSYNTH_AUDIO_ENABLED"
	EnvMasterVolume = "BEATSYNTH_MASTER_VOLUME"
	EnvHitVolumes   = "BEATSYNTH_HIT_VOLUMES"
	EnvSampleRate   = "BEATSYNTH_SAMPLE_RATE"
	EnvBackend      = "BEATSYNTH_BACKEND"
	EnvBufferMS     = "BEATSYNTH_BUFFER_MS"
)

// Config holds engine configuration
type Config struct {
	Enabled      bool
	MasterVolume float64                  // 0.0-1.0
	HitVolumes   map[core.HitType]float64 // per-hit multiplier on top of the recipe gain
	SampleRate   int
	Output       Output
	BufferMS     int // device buffer for the speaker backend
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	vols := make(map[core.HitType]float64, core.HitTypeCount)
	for _, h := range core.HitTypes() {
		vols[h] = 1.0
	}
	return &Config{
		Enabled:      true,
		MasterVolume: 1.0,
		HitVolumes:   vols,
		SampleRate:   parameter.AudioSampleRate,
		Output:       OutputAuto,
		BufferMS:     int(parameter.SpeakerBufferDuration / time.Millisecond),
	}
}

// LoadConfig loads configuration from environment variables over the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	// Hit volumes from JSON, keyed by hit name
	if hitVols := os.Getenv(EnvHitVolumes); hitVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(hitVols), &volumes); err == nil {
			for name, v := range volumes {
				if h, ok := core.ParseHitType(name); ok && v >= 0 {
					cfg.HitVolumes[h] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if backend := os.Getenv(EnvBackend); backend != "" {
		cfg.Output = ParseOutput(backend)
	}

	if buf := os.Getenv(EnvBufferMS); buf != "" {
		if val, err := strconv.Atoi(buf); err == nil && val > 0 {
			cfg.BufferMS = val
		}
	}

	return cfg
}

// SaveConfig exports cfg to the process environment in the form LoadConfig reads
func SaveConfig(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	vols := make(map[string]float64, len(cfg.HitVolumes))
	for h, v := range cfg.HitVolumes {
		vols[h.String()] = v
	}
	data, err := json.Marshal(vols)
	if err != nil {
		return err
	}

	env := [][2]string{
		{EnvEnabled, strconv.FormatBool(cfg.Enabled)},
		{EnvMasterVolume, strconv.Itoa(int(cfg.MasterVolume*100 + 0.5))},
		{EnvHitVolumes, string(data)},
		{EnvSampleRate, strconv.Itoa(cfg.SampleRate)},
		{EnvBackend, string(cfg.Output)},
		{EnvBufferMS, strconv.Itoa(cfg.BufferMS)},
	}
	for _, kv := range env {
		if err := os.Setenv(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return nil
}

// HitVolume returns the multiplier for h, 1.0 when unset
func (c *Config) HitVolume(h core.HitType) float64 {
	if v, ok := c.HitVolumes[h]; ok {
		return v
	}
	return 1.0
}

// BufferDuration returns the speaker buffer as a duration
func (c *Config) BufferDuration() time.Duration {
	if c.BufferMS <= 0 {
		return parameter.SpeakerBufferDuration
	}
	return time.Duration(c.BufferMS) * time.Millisecond
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
