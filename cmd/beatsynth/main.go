package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/lixenwraith/beatsynth/audio"
	"github.com/lixenwraith/beatsynth/core"
	"github.com/lixenwraith/beatsynth/service"
)

const (
	logDir      = "logs"
	logFileName = "beatsynth.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	patternFlag    = flag.String("pattern", "", "Play a genre beat once (see -list)")
	instrumentFlag = flag.String("instrument", "", "Play an instrument demo phrase")
	noteFlag       = flag.String("note", "", "Play a single note, e.g. A4")
	chordFlag      = flag.String("chord", "", "Play a chord: roman numeral in -key (IV) or notes (C4,E4,G4)")
	sequenceFlag   = flag.String("sequence", "", "Play notes one after another (C4,E4,G4)")
	scaleFlag      = flag.String("scale", "", "Play a scale in -key, e.g. Major, Dorian")
	keyFlag        = flag.String("key", "C", "Root for -scale and roman numeral chords")
	octaveFlag     = flag.Int("octave", 4, "Octave for -scale and roman numeral chords")
	waveFlag       = flag.String("wave", "triangle", "Waveform for -note: sine, square, sawtooth, triangle")
	durationFlag   = flag.Duration("duration", 0, "Note or chord length (default per kind)")
	intervalFlag   = flag.Duration("interval", 0, "Gap between sequence notes (default 200ms)")
	listFlag       = flag.Bool("list", false, "List patterns and instruments")
	tuiFlag        = flag.Bool("tui", false, "Browse and play patterns and instruments interactively")
	backendFlag    = flag.String("backend", "", "Audio output: auto, speaker, oto, pipe, null")
	volumeFlag     = flag.Int("volume", -1, "Master volume 0-100")
	muteFlag       = flag.Bool("mute", false, "Start muted")
	verboseFlag    = flag.Bool("v", false, "Log to stderr")
	debugFlag      = flag.Bool("debug", false, "Log to "+filepath.Join(logDir, logFileName))
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	} else if *verboseFlag && !*tuiFlag {
		log.SetOutput(os.Stderr)
	}
	log.SetPrefix("beatsynth: ")

	cfg := audio.LoadConfig()
	if *backendFlag != "" {
		cfg.Output = audio.ParseOutput(*backendFlag)
	}
	if *volumeFlag >= 0 {
		cfg.MasterVolume = min(float64(*volumeFlag), 100) / 100
	}

	svc := audio.NewService()
	hub := service.NewHub()
	if err := hub.Register(svc, audioArgs(cfg, log.Default(), flagSet("mute"), *muteFlag)...); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register audio: %v\n", err)
		return 1
	}
	if err := hub.InitAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}
	defer hub.StopAll()

	if svc.IsDisabled() {
		fmt.Fprintln(os.Stderr, "Audio unavailable (continuing without sound)")
	}
	eng := svc.Engine()

	switch {
	case *listFlag:
		printCatalog(os.Stdout, eng)
		return 0
	case *tuiFlag:
		if err := runBrowser(eng); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
			return 1
		}
		return 0
	}

	h := selectHandle(eng)
	if h == nil {
		flag.Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	awaitSession(ctx, h, cfg.BufferDuration())
	return 0
}

// awaitSession blocks until h finishes, then lets the device drain its buffer before returning.
// An interrupt stops the session at once.
func awaitSession(ctx context.Context, h audio.Handle, drain time.Duration) error {
	if err := h.Wait(ctx); err != nil {
		h.Stop()
		return err
	}

	select {
	case <-time.After(drain):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// audioArgs builds the audio service init args; -mute overrides the environment only when given
func audioArgs(cfg *audio.Config, logger *log.Logger, muteSet, mute bool) []any {
	args := []any{cfg, logger}
	if muteSet {
		args = append(args, mute)
	}
	return args
}

// flagSet reports whether the named flag was passed on the command line
func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// selectHandle starts the playback requested on the command line; nil when nothing was asked for
func selectHandle(eng *audio.Engine) audio.Handle {
	switch {
	case *patternFlag != "":
		if !eng.HasPattern(*patternFlag) {
			log.Printf("unknown pattern %q, playing %s", *patternFlag, audio.DefaultPatternName)
		}
		return eng.PlayPattern(*patternFlag)
	case *instrumentFlag != "":
		return eng.PlayInstrument(*instrumentFlag)
	case *noteFlag != "":
		wave, ok := core.ParseWaveform(*waveFlag)
		if !ok || wave == core.WaveNoise {
			log.Printf("unsupported note waveform %q, using triangle", *waveFlag)
			wave = core.WaveTriangle
		}
		return eng.PlayNote(*noteFlag, durationFlag.Seconds(), wave)
	case *chordFlag != "":
		notes := audio.ChordNotes(*keyFlag, *chordFlag, *octaveFlag)
		if notes == nil {
			notes = splitNotes(*chordFlag)
		}
		return eng.PlayChord(notes, durationFlag.Seconds())
	case *sequenceFlag != "":
		return eng.PlaySequence(splitNotes(*sequenceFlag), *intervalFlag)
	case *scaleFlag != "":
		notes := audio.ScaleNotes(*keyFlag, *scaleFlag, *octaveFlag)
		if notes == nil {
			log.Printf("unknown scale %q in %s", *scaleFlag, *keyFlag)
			return audio.NoopHandle()
		}
		return eng.PlaySequence(notes, *intervalFlag)
	}
	return nil
}

func splitNotes(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}

func printCatalog(w io.Writer, eng *audio.Engine) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tBPM")
	for _, name := range eng.Patterns().Names() {
		fmt.Fprintf(tw, "%s\t%.0f\n", name, eng.GetTempo(name))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "INSTRUMENT\tCATEGORY\tWAVE")
	for _, cat := range audio.Categories() {
		for _, v := range eng.Instruments().InCategory(cat) {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, cat, v.Waveform)
		}
	}
	tw.Flush()
}

// setupLogging routes the standard logger to a rotating file when debug is set, otherwise discards it
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("beatsynth-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
