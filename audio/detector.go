package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
)

// pipeCandidates lists CLI players that accept raw s16le stereo on stdin
// Priority: pacat > pw-cat > aplay > play (sox) > ffplay
func pipeCandidates(sampleRate int) []BackendConfig {
	rate := strconv.Itoa(sampleRate)
	return []BackendConfig{
		{
			Type: BackendPulse,
			Name: "pacat",
			Args: []string{"--raw", "--format=s16le", "--rate=" + rate, "--channels=2", "--latency-msec=50", "--playback"},
		},
		{
			Type: BackendPipeWire,
			Name: "pw-cat",
			Args: []string{"--playback", "--format=s16", "--rate=" + rate, "--channels=2", "--latency=50ms", "-"},
		},
		{
			Type: BackendALSA,
			Name: "aplay",
			Args: []string{"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q"},
		},
		{
			Type: BackendSoX,
			Name: "play",
			Args: []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q"},
		},
		{
			Type: BackendFFplay,
			Name: "ffplay",
			Args: []string{
				"-nodisp", "-autoexit", "-f", "s16le", "-ac", "2", "-ar", rate,
				"-probesize", "32", "-analyzeduration", "0", "-i", "pipe:0", "-loglevel", "quiet",
			},
		},
	}
}

// DetectBackend searches PATH for a CLI player able to take the renderer's output
func DetectBackend(sampleRate int) (*BackendConfig, error) {
	for _, c := range pipeCandidates(sampleRate) {
		if path, err := exec.LookPath(c.Name); err == nil {
			c.Path = path
			return &c, nil
		}
	}

	// FreeBSD OSS (direct device write, no exec needed)
	if runtime.GOOS == "freebsd" {
		if _, err := os.Stat("/dev/dsp"); err == nil {
			return &BackendConfig{Type: BackendOSS, Name: "oss", Path: "/dev/dsp"}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
