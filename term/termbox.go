package term

import (
	"sync"

	"github.com/battlesnakeio/snek/input"
	"github.com/battlesnakeio/snek/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
)

type termboxCanvas struct{}

func (termboxCanvas) clear() {
	if err := termbox.Clear(defaultColor, bgColor); err != nil {
		log.WithError(err).Warn("unable to clear terminal")
	}
}

func (termboxCanvas) setCell(x, y int, ch rune, kind cellKind) {
	fg, bg := termboxColors(kind)
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxCanvas) flush() error {
	return termbox.Flush()
}

func termboxColors(kind cellKind) (termbox.Attribute, termbox.Attribute) {
	switch kind {
	case kindSnake:
		return termbox.ColorGreen, termbox.ColorGreen
	case kindFood:
		return termbox.ColorWhite, termbox.ColorWhite
	case kindShade:
		return defaultColor, termbox.ColorBlack
	case kindDied:
		return termbox.ColorRed | termbox.AttrBold, termbox.ColorBlack
	case kindFinalScore:
		return termbox.ColorWhite, termbox.ColorBlack
	}
	return defaultColor, bgColor
}

// termboxIntent maps a termbox key event to an intent.
func termboxIntent(ev termbox.Event) input.Intent {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return input.IntentUp
	case termbox.KeyArrowDown:
		return input.IntentDown
	case termbox.KeyArrowLeft:
		return input.IntentLeft
	case termbox.KeyArrowRight:
		return input.IntentRight
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return input.IntentQuit
	}
	if ev.Ch != 0 {
		return input.FromRune(ev.Ch)
	}
	return input.IntentNone
}

type termboxSurface struct {
	*board
	intents <-chan input.Intent
	done    chan struct{}
	once    sync.Once
}

func openTermbox(bounds rules.Bounds) (Surface, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialise termbox")
	}
	termbox.SetInputMode(termbox.InputEsc)

	w, h := termbox.Size()
	warnIfSmall(bounds, w, h)

	s := &termboxSurface{
		board: newBoard(termboxCanvas{}, bounds),
		done:  make(chan struct{}),
	}
	s.intents = pump(s.done, pollTermbox)
	return s, nil
}

func pollTermbox() (input.Intent, bool) {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			return termboxIntent(ev), true
		case termbox.EventInterrupt:
			return input.IntentNone, false
		case termbox.EventError:
			log.WithError(ev.Err).Warn("termbox event error")
			return input.IntentNone, false
		}
	}
}

func (s *termboxSurface) Intents() <-chan input.Intent {
	return s.intents
}

func (s *termboxSurface) Close() error {
	s.once.Do(func() {
		close(s.done)
		termbox.Interrupt()
		termbox.Close()
	})
	return nil
}
