package rules

import (
	uuid "github.com/satori/go.uuid"
)

// Status is where a game is in its lifecycle.
type Status string

const (
	// StatusRunning represents a game that is still ticking
	StatusRunning Status = "running"
	// StatusGameOver represents a game that has ended, it never runs again
	StatusGameOver Status = "game-over"
)

// StartingBody is the snake every game starts with, head first, heading
// right.
var StartingBody = []Cell{
	{X: 100, Y: 50},
	{X: 90, Y: 50},
	{X: 80, Y: 50},
}

// GameState is everything a game needs between two ticks.
type GameState struct {
	ID       string         `json:"id"`
	Bounds   Bounds         `json:"bounds"`
	Snake    Snake          `json:"snake"`
	Velocity Velocity       `json:"velocity"`
	Food     Cell           `json:"food"`
	Score    int            `json:"score"`
	Turn     int64          `json:"turn"`
	Status   Status         `json:"status"`
	Cause    CollisionCause `json:"cause,omitempty"`
}

// NewGame creates the initial state of a game on bounds.
func NewGame(bounds Bounds, placer FoodPlacer) (GameState, error) {
	if err := bounds.Validate(); err != nil {
		return GameState{}, err
	}

	snake, err := NewSnake(startingBody(bounds)...)
	if err != nil {
		return GameState{}, err
	}

	food, err := placer.Place(snake.Body, bounds)
	if err != nil {
		return GameState{}, err
	}

	return GameState{
		ID:       uuid.NewV4().String(),
		Bounds:   bounds,
		Snake:    snake,
		Velocity: Velocity{DX: bounds.CellSize, DY: 0},
		Food:     food,
		Status:   StatusRunning,
	}, nil
}

// startingBody uses StartingBody when it fits the board. Otherwise the snake
// is laid out heading right from the left edge of the middle row.
func startingBody(bounds Bounds) []Cell {
	fits := true
	for _, c := range StartingBody {
		if !bounds.Contains(c) || !bounds.Aligned(c) {
			fits = false
			break
		}
	}
	if fits {
		return StartingBody
	}

	y := (bounds.Rows() / 2) * bounds.CellSize
	body := make([]Cell, 0, len(StartingBody))
	for i := len(StartingBody) - 1; i >= 0; i-- {
		body = append(body, Cell{X: int32(i) * bounds.CellSize, Y: y})
	}
	return body
}
