package term

import (
	"strings"
	"testing"

	"github.com/battlesnakeio/snek/game"
	"github.com/battlesnakeio/snek/rules"
	"github.com/stretchr/testify/require"
)

type fakeCell struct {
	ch   rune
	kind cellKind
}

type fakeCanvas struct {
	cells   map[[2]int]fakeCell
	clears  int
	flushes int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: map[[2]int]fakeCell{}}
}

func (f *fakeCanvas) clear() {
	f.clears++
	f.cells = map[[2]int]fakeCell{}
}

func (f *fakeCanvas) setCell(x, y int, ch rune, kind cellKind) {
	f.cells[[2]int{x, y}] = fakeCell{ch: ch, kind: kind}
}

func (f *fakeCanvas) flush() error {
	f.flushes++
	return nil
}

func (f *fakeCanvas) line(y, from, to int) string {
	var sb strings.Builder
	for x := from; x < to; x++ {
		c, ok := f.cells[[2]int{x, y}]
		if !ok {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.ch)
	}
	return sb.String()
}

var smallBounds = rules.Bounds{Width: 100, Height: 50, CellSize: 10}

func TestBoardDrawCell(t *testing.T) {
	c := newFakeCanvas()
	b := newBoard(c, smallBounds)
	b.Clear()
	b.DrawCell(rules.Cell{X: 0, Y: 0}, game.StyleSnake)
	b.DrawCell(rules.Cell{X: 30, Y: 20}, game.StyleFood)
	require.NoError(t, b.Flush())

	left, top := b.inner()
	require.Equal(t, kindSnake, c.cells[[2]int{left, top}].kind)
	require.Equal(t, kindSnake, c.cells[[2]int{left + 1, top}].kind)
	require.Equal(t, kindFood, c.cells[[2]int{left + 6, top + 2}].kind)
	require.Equal(t, kindFood, c.cells[[2]int{left + 7, top + 2}].kind)
	require.Equal(t, 1, c.flushes)
}

func TestBoardSkipsCellsOffBoard(t *testing.T) {
	c := newFakeCanvas()
	b := newBoard(c, smallBounds)
	b.Clear()
	before := len(c.cells)
	b.DrawCell(rules.Cell{X: 100, Y: 0}, game.StyleSnake)
	b.DrawCell(rules.Cell{X: -10, Y: 0}, game.StyleSnake)
	b.DrawCell(rules.Cell{X: 0, Y: 50}, game.StyleSnake)
	require.Equal(t, before, len(c.cells))
}

func TestBoardBorder(t *testing.T) {
	c := newFakeCanvas()
	b := newBoard(c, smallBounds)
	b.Clear()

	left, top := b.inner()
	require.Equal(t, '┌', c.cells[[2]int{left - 1, top - 1}].ch)
	require.Equal(t, '┐', c.cells[[2]int{left + 20, top - 1}].ch)
	require.Equal(t, '└', c.cells[[2]int{left - 1, top + 5}].ch)
	require.Equal(t, '┘', c.cells[[2]int{left + 20, top + 5}].ch)
	require.Equal(t, '│', c.cells[[2]int{left - 1, top + 2}].ch)
	require.Equal(t, '─', c.cells[[2]int{left + 3, top + 5}].ch)
}

func TestBoardScore(t *testing.T) {
	c := newFakeCanvas()
	b := newBoard(c, smallBounds)
	b.Clear()
	require.Contains(t, c.line(0, 0, 30), "snek - Score 0")

	b.SetScore(12)
	require.Contains(t, c.line(0, 0, 30), "snek - Score 12")

	b.Clear()
	require.Contains(t, c.line(0, 0, 30), "snek - Score 12", "score survives a clear")
}

func TestBoardGameOver(t *testing.T) {
	c := newFakeCanvas()
	b := newBoard(c, rules.Bounds{Width: 400, Height: 300, CellSize: 10})
	b.Clear()
	b.DrawCell(rules.Cell{X: 100, Y: 50}, game.StyleSnake)
	b.GameOver(3, rules.CollisionWall)

	_, top := b.inner()
	var text []string
	for y := top; y <= top+31; y++ {
		text = append(text, c.line(y, 0, 90))
	}
	all := strings.Join(text, "\n")
	require.Contains(t, all, "YOU DIED")
	require.Contains(t, all, "Final Score: 3")
	require.Contains(t, all, "Press any key to exit...")
	require.Equal(t, kindShade, c.cells[[2]int{4, 7}].kind, "board should be shaded")
	require.Equal(t, 1, c.flushes)
}

func TestBoardGameOverBoardFull(t *testing.T) {
	c := newFakeCanvas()
	b := newBoard(c, rules.Bounds{Width: 400, Height: 300, CellSize: 10})
	b.GameOver(1197, rules.CollisionBoardFull)

	_, top := b.inner()
	require.Contains(t, c.line(top+30/4, 0, 90), "BOARD FULL")
}

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(rules.Bounds{Width: 400, Height: 300, CellSize: 10})
	require.Equal(t, 83, w)
	require.Equal(t, 34, h)
}
