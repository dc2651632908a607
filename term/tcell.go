package term

import (
	"sync"

	"github.com/battlesnakeio/snek/input"
	"github.com/battlesnakeio/snek/rules"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

type tcellCanvas struct {
	screen tcell.Screen
}

func (c tcellCanvas) clear() {
	c.screen.Clear()
}

func (c tcellCanvas) setCell(x, y int, ch rune, kind cellKind) {
	c.screen.SetContent(x, y, ch, nil, tcellStyle(kind))
}

func (c tcellCanvas) flush() error {
	c.screen.Show()
	return nil
}

func tcellStyle(kind cellKind) tcell.Style {
	switch kind {
	case kindSnake:
		return tcell.StyleDefault.Background(tcell.ColorGreen)
	case kindFood:
		return tcell.StyleDefault.Background(tcell.ColorWhite)
	case kindShade:
		return tcell.StyleDefault.Background(tcell.ColorBlack)
	case kindDied:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
	case kindFinalScore:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	}
	return tcell.StyleDefault
}

// tcellIntent maps a tcell key event to an intent.
func tcellIntent(ev *tcell.EventKey) input.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.IntentUp
	case tcell.KeyDown:
		return input.IntentDown
	case tcell.KeyLeft:
		return input.IntentLeft
	case tcell.KeyRight:
		return input.IntentRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.IntentQuit
	case tcell.KeyRune:
		return input.FromRune(ev.Rune())
	}
	return input.IntentNone
}

type tcellSurface struct {
	*board
	screen  tcell.Screen
	intents <-chan input.Intent
	done    chan struct{}
	once    sync.Once
}

func openTcell(bounds rules.Bounds) (Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "unable to create tcell screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialise tcell screen")
	}
	return newTcellSurface(screen, bounds), nil
}

func newTcellSurface(screen tcell.Screen, bounds rules.Bounds) *tcellSurface {
	w, h := screen.Size()
	warnIfSmall(bounds, w, h)

	s := &tcellSurface{
		board:  newBoard(tcellCanvas{screen: screen}, bounds),
		screen: screen,
		done:   make(chan struct{}),
	}
	s.intents = pump(s.done, s.poll)
	return s
}

func (s *tcellSurface) poll() (input.Intent, bool) {
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return input.IntentNone, false
		case *tcell.EventKey:
			return tcellIntent(ev), true
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func (s *tcellSurface) Intents() <-chan input.Intent {
	return s.intents
}

func (s *tcellSurface) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
	return nil
}
