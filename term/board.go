// Package term draws games in a terminal and turns key presses into input
// intents. Two backends are available, termbox and tcell; both share the
// board layout defined here.
package term

import (
	"fmt"

	"github.com/battlesnakeio/snek/game"
	"github.com/battlesnakeio/snek/input"
	"github.com/battlesnakeio/snek/rules"
	"github.com/mattn/go-runewidth"
)

// Backend names accepted by Open.
const (
	BackendTermbox = "termbox"
	BackendTcell   = "tcell"
)

// Surface is a terminal a game is played on.
type Surface interface {
	game.Renderer
	game.ScoreSink
	game.GameOverSink

	// Intents delivers one intent per key press. Keys that mean nothing to
	// the game arrive as input.IntentNone.
	Intents() <-chan input.Intent
	Close() error
}

type cellKind uint8

const (
	kindText cellKind = iota
	kindBorder
	kindSnake
	kindFood
	kindShade
	kindDied
	kindFinalScore
)

// canvas is the part of a terminal library the board needs.
type canvas interface {
	clear()
	setCell(x, y int, ch rune, kind cellKind)
	flush() error
}

// cellWidth is how many terminal columns one board cell takes, which keeps
// cells roughly square.
const cellWidth = 2

const (
	boardLeft = 2
	boardTop  = 1
)

// board lays a game out on a canvas: a title line, a box drawn border and
// the cells inside it.
type board struct {
	c      canvas
	bounds rules.Bounds
	score  int
}

func newBoard(c canvas, bounds rules.Bounds) *board {
	return &board{c: c, bounds: bounds}
}

func (b *board) columns() int { return int(b.bounds.Columns()) * cellWidth }
func (b *board) rows() int    { return int(b.bounds.Rows()) }

// inner returns the terminal position of the top left of the board area.
func (b *board) inner() (int, int) {
	return boardLeft, boardTop + 1
}

// Clear wipes the terminal and redraws the border and title.
func (b *board) Clear() {
	b.c.clear()
	b.drawBorder()
	b.drawTitle()
}

// DrawCell fills one board cell. Cells outside the board are not drawn.
func (b *board) DrawCell(cell rules.Cell, s game.Style) {
	if !b.bounds.Contains(cell) {
		return
	}
	kind := kindSnake
	if s == game.StyleFood {
		kind = kindFood
	}
	left, top := b.inner()
	x := left + int(cell.X/b.bounds.CellSize)*cellWidth
	y := top + int(cell.Y/b.bounds.CellSize)
	for i := 0; i < cellWidth; i++ {
		b.c.setCell(x+i, y, ' ', kind)
	}
}

// Flush shows everything drawn since the last Clear.
func (b *board) Flush() error {
	return b.c.flush()
}

// SetScore updates the score in the title line.
func (b *board) SetScore(n int) {
	b.score = n
	b.drawTitle()
}

// GameOver shades the board and prints the final score over it.
func (b *board) GameOver(score int, cause rules.CollisionCause) {
	b.score = score
	left, top := b.inner()
	fill(b.c, left, top, b.columns(), b.rows(), ' ', kindShade)

	headline := "YOU DIED"
	if cause == rules.CollisionBoardFull {
		headline = "BOARD FULL"
	}
	b.printCentered(top+b.rows()/4, kindDied, headline)
	b.printCentered(top+b.rows()*4/5, kindFinalScore, fmt.Sprintf("Final Score: %d", score))
	b.print(left, top+b.rows()+1, kindText, "Press any key to exit...")
	b.drawTitle()
	_ = b.c.flush()
}

func (b *board) drawTitle() {
	left := boardLeft - 1
	fill(b.c, left, 0, b.columns()+2, 1, ' ', kindText)
	b.print(left, 0, kindText, fmt.Sprintf("snek - Score %d", b.score))
}

func (b *board) drawBorder() {
	left, top := b.inner()
	right := left + b.columns()
	bottom := top + b.rows()

	for y := top; y < bottom; y++ {
		b.c.setCell(left-1, y, '│', kindBorder)
		b.c.setCell(right, y, '│', kindBorder)
	}
	b.c.setCell(left-1, top-1, '┌', kindBorder)
	b.c.setCell(left-1, bottom, '└', kindBorder)
	b.c.setCell(right, top-1, '┐', kindBorder)
	b.c.setCell(right, bottom, '┘', kindBorder)

	fill(b.c, left, top-1, b.columns(), 1, '─', kindBorder)
	fill(b.c, left, bottom, b.columns(), 1, '─', kindBorder)
}

func (b *board) printCentered(y int, kind cellKind, msg string) {
	left, _ := b.inner()
	x := left + (b.columns()-runewidth.StringWidth(msg))/2
	if x < left {
		x = left
	}
	b.print(x, y, kind, msg)
}

func (b *board) print(x, y int, kind cellKind, msg string) {
	for _, c := range msg {
		b.c.setCell(x, y, c, kind)
		x += runewidth.RuneWidth(c)
	}
}

func fill(c canvas, x, y, w, h int, ch rune, kind cellKind) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			c.setCell(x+lx, y+ly, ch, kind)
		}
	}
}
