package term

import (
	"sync"
	"testing"
	"time"

	"github.com/battlesnakeio/snek/game"
	"github.com/battlesnakeio/snek/input"
	"github.com/battlesnakeio/snek/rules"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

// mockScreen is a minimal tcell.Screen that records content and feeds
// queued events to PollEvent.
type mockScreen struct {
	tcell.Screen

	mu      sync.Mutex
	content map[[2]int]rune
	styles  map[[2]int]tcell.Style
	shows   int
	events  chan tcell.Event
	closed  bool
}

func newMockScreen() *mockScreen {
	return &mockScreen{
		content: map[[2]int]rune{},
		styles:  map[[2]int]tcell.Style{},
		events:  make(chan tcell.Event, 8),
	}
}

func (m *mockScreen) Size() (int, int) { return 120, 40 }
func (m *mockScreen) Sync()            {}

func (m *mockScreen) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = map[[2]int]rune{}
	m.styles = map[[2]int]tcell.Style{}
}

func (m *mockScreen) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shows++
}

func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content[[2]int{x, y}] = mainc
	m.styles[[2]int{x, y}] = style
}

func (m *mockScreen) PollEvent() tcell.Event {
	ev, ok := <-m.events
	if !ok {
		return nil
	}
	return ev
}

func (m *mockScreen) Fini() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.events)
	}
}

func TestTcellIntent(t *testing.T) {
	tests := []struct {
		Event    *tcell.EventKey
		Expected input.Intent
	}{
		{Event: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Expected: input.IntentUp},
		{Event: tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Expected: input.IntentDown},
		{Event: tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Expected: input.IntentLeft},
		{Event: tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Expected: input.IntentRight},
		{Event: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Expected: input.IntentQuit},
		{Event: tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), Expected: input.IntentDown},
		{Event: tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Expected: input.IntentNone},
	}
	for _, test := range tests {
		require.Equal(t, test.Expected, tcellIntent(test.Event))
	}
}

func TestTcellSurfaceDraws(t *testing.T) {
	screen := newMockScreen()
	s := newTcellSurface(screen, smallBounds)
	defer s.Close()

	err := game.Draw(s, game.Frame{
		Snake: []rules.Cell{{X: 10, Y: 0}},
		Food:  rules.Cell{X: 0, Y: 0},
	})
	require.NoError(t, err)

	left, top := s.inner()
	screen.mu.Lock()
	defer screen.mu.Unlock()
	require.Equal(t, tcellStyle(kindFood), screen.styles[[2]int{left, top}])
	require.Equal(t, tcellStyle(kindSnake), screen.styles[[2]int{left + 2, top}])
	require.Equal(t, '┌', screen.content[[2]int{left - 1, top - 1}])
	require.Equal(t, 1, screen.shows)
}

func TestTcellSurfaceIntents(t *testing.T) {
	screen := newMockScreen()
	s := newTcellSurface(screen, smallBounds)

	screen.events <- tcell.NewEventResize(80, 24)
	screen.events <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)

	select {
	case i := <-s.Intents():
		require.Equal(t, input.IntentLeft, i)
	case <-time.After(time.Second):
		require.Fail(t, "no intent received")
	}

	require.NoError(t, s.Close())
	select {
	case _, ok := <-s.Intents():
		require.False(t, ok, "intents should close with the screen")
	case <-time.After(time.Second):
		require.Fail(t, "intents not closed")
	}
}
