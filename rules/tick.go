package rules

import (
	log "github.com/sirupsen/logrus"
)

// TickResult reports what a tick did besides moving the snake.
type TickResult struct {
	Ate  bool
	Food Cell
}

// GameTick moves the snake one cell along v and returns the next state.
// The head is always prepended; the tail is dropped unless the head lands on
// the food, in which case the score goes up and new food is placed. Collisions
// are not checked here, the loop does that before the next tick.
//
// If the snake ate but no free cell is left for food, the returned state has
// the grown snake and the old food, and the error is ErrNoFreeCell.
func GameTick(state GameState, v Velocity, placer FoodPlacer) (GameState, TickResult, error) {
	next := state
	next.Turn = state.Turn + 1
	next.Velocity = v

	head := Advance(state.Snake.Head(), v)
	next.Snake = Grow(state.Snake, head)

	if !head.Equal(state.Food) {
		next.Snake = Shrink(next.Snake)
		return next, TickResult{}, nil
	}

	next.Score = state.Score + 1
	result := TickResult{Ate: true, Food: state.Food}
	log.WithFields(log.Fields{
		"GameID": state.ID,
		"Turn":   next.Turn,
		"Food":   state.Food,
		"Score":  next.Score,
	}).Info("snake ate")

	food, err := placer.Place(next.Snake.Body, state.Bounds)
	if err != nil {
		return next, result, err
	}
	next.Food = food
	return next, result, nil
}
