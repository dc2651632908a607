// Package game runs a snake game. The Loop owns the game state, applies
// player input between ticks, and drives the collaborators that draw the
// board and report the score.
package game

import "github.com/battlesnakeio/snek/rules"

// Style says what a drawn cell represents.
type Style uint8

const (
	// StyleSnake is a snake segment
	StyleSnake Style = iota + 1
	// StyleFood is the food
	StyleFood
)

// Renderer is the surface a frame is drawn on.
type Renderer interface {
	Clear()
	DrawCell(c rules.Cell, s Style)
	Flush() error
}

// ScoreSink is told the new score every time the snake eats.
type ScoreSink interface {
	SetScore(n int)
}

// GameOverSink is told the final score once, when the game ends.
type GameOverSink interface {
	GameOver(score int, cause rules.CollisionCause)
}

// FrameObserver receives a snapshot after every tick.
type FrameObserver interface {
	Publish(f Frame)
}

// ObserverFunc adapts a function to a FrameObserver.
type ObserverFunc func(Frame)

// Publish calls f(frame).
func (f ObserverFunc) Publish(frame Frame) { f(frame) }

// Frame is a snapshot of a game after a tick. It does not share memory with
// the loop's state.
type Frame struct {
	GameID string               `json:"gameId"`
	Turn   int64                `json:"turn"`
	Bounds rules.Bounds         `json:"bounds"`
	Snake  []rules.Cell         `json:"snake"`
	Food   rules.Cell           `json:"food"`
	Score  int                  `json:"score"`
	Status rules.Status         `json:"status"`
	Cause  rules.CollisionCause `json:"cause,omitempty"`
}

// Over reports whether this is the last frame of the game.
func (f Frame) Over() bool {
	return f.Status == rules.StatusGameOver
}

// FrameOf snapshots state.
func FrameOf(state rules.GameState) Frame {
	return Frame{
		GameID: state.ID,
		Turn:   state.Turn,
		Bounds: state.Bounds,
		Snake:  append([]rules.Cell(nil), state.Snake.Body...),
		Food:   state.Food,
		Score:  state.Score,
		Status: state.Status,
		Cause:  state.Cause,
	}
}

// Draw renders f on r the same way the loop draws a tick: food first, then
// the snake.
func Draw(r Renderer, f Frame) error {
	r.Clear()
	r.DrawCell(f.Food, StyleFood)
	for _, c := range f.Snake {
		r.DrawCell(c, StyleSnake)
	}
	return r.Flush()
}
