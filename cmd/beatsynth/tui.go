package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatsynth/audio"
	"github.com/lixenwraith/beatsynth/core"
)

const redrawInterval = 100 * time.Millisecond

var (
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleTab      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTabOn    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	styleItem     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleCursor   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	stylePlaying  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWarn     = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHelpText = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// canvas is the part of tcell.Screen the browser draws on
type canvas interface {
	Clear()
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

type tab int

const (
	tabPatterns tab = iota
	tabInstruments
)

// browser lists patterns and instruments; one session plays at a time
type browser struct {
	eng     *audio.Engine
	tab     tab
	items   [2][]string
	cursor  [2]int
	scroll  [2]int
	current audio.Handle
	label   string
	width   int
	height  int
}

func newBrowser(eng *audio.Engine) *browser {
	b := &browser{eng: eng}
	b.items[tabPatterns] = eng.Patterns().Names()
	for _, cat := range audio.Categories() {
		for _, v := range eng.Instruments().InCategory(cat) {
			b.items[tabInstruments] = append(b.items[tabInstruments], v.Name)
		}
	}
	return b
}

func (b *browser) selected() string {
	items := b.items[b.tab]
	if len(items) == 0 {
		return ""
	}
	return items[b.cursor[b.tab]]
}

func (b *browser) move(delta int) {
	n := len(b.items[b.tab])
	if n == 0 {
		return
	}
	b.cursor[b.tab] = (b.cursor[b.tab] + delta + n) % n
}

// play stops the previous session and starts the selected item
func (b *browser) play() {
	b.stop()
	name := b.selected()
	if name == "" {
		return
	}
	if b.tab == tabPatterns {
		b.current = b.eng.PlayPattern(name)
	} else {
		b.current = b.eng.PlayInstrument(name)
	}
	b.label = name
}

func (b *browser) stop() {
	if b.current != nil {
		b.current.Stop()
		b.current = nil
	}
}

func (b *browser) playing() bool {
	return b.current != nil && b.current.IsPlaying()
}

// handleKey applies one key press; false means quit
func (b *browser) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		b.move(-1)
	case tcell.KeyDown:
		b.move(1)
	case tcell.KeyTab, tcell.KeyLeft, tcell.KeyRight:
		b.tab = 1 - b.tab
	case tcell.KeyEnter:
		b.play()
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'k':
			b.move(-1)
		case 'j':
			b.move(1)
		case ' ':
			b.stop()
		case 'm':
			if !b.eng.ToggleMute() {
				b.stop()
			}
		}
	}
	return true
}

func drawText(s canvas, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (b *browser) draw(s canvas) {
	s.Clear()
	b.width, b.height = s.Size()

	drawText(s, 1, 0, styleTitle, "beatsynth")

	x := 1
	for i, name := range []string{" Patterns ", " Instruments "} {
		style := styleTab
		if tab(i) == b.tab {
			style = styleTabOn
		}
		x = drawText(s, x, 2, style, name) + 1
	}

	rows := max(b.height-7, 1)
	cur := b.cursor[b.tab]
	top := &b.scroll[b.tab]
	if cur < *top {
		*top = cur
	}
	if cur >= *top+rows {
		*top = cur - rows + 1
	}

	items := b.items[b.tab]
	for row := 0; row < rows && *top+row < len(items); row++ {
		i := *top + row
		style := styleItem
		if i == cur {
			style = styleCursor
		}
		drawText(s, 2, 4+row, style, b.describe(items[i]))
	}

	b.drawStatus(s, b.height-2)
	drawText(s, 1, b.height-1, styleHelpText, "↑↓/jk move  tab switch  enter play  space stop  m mute  q quit")
	s.Show()
}

func (b *browser) describe(name string) string {
	if b.tab == tabPatterns {
		return fmt.Sprintf("%-32s %3.0f bpm", name, b.eng.GetTempo(name))
	}
	v, _ := b.eng.Instruments().Lookup(name)
	return fmt.Sprintf("%-32s %-16s %s", name, v.Category, v.Waveform)
}

func (b *browser) drawStatus(s canvas, y int) {
	switch {
	case b.eng.IsMuted():
		drawText(s, 1, y, styleWarn, "muted")
	case b.playing():
		drawText(s, 1, y, stylePlaying, "▶ "+b.label)
	default:
		drawText(s, 1, y, styleHelpText, "idle")
	}
}

func runBrowser(eng *audio.Engine) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	b := newBrowser(eng)
	defer b.stop()

	eventChan := make(chan tcell.Event, 16)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	b.draw(screen)
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !b.handleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			b.draw(screen)
		case <-ticker.C:
			b.draw(screen)
		}
	}
}
