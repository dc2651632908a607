// Package input maps device input to game intents. Nothing outside this
// package and the terminal backends knows about key codes.
package input

import "github.com/battlesnakeio/snek/rules"

// Intent is a semantic action requested by the player.
type Intent uint8

const (
	IntentNone Intent = iota

	// Steering
	IntentUp    // Up arrow, w
	IntentDown  // Down arrow, s
	IntentLeft  // Left arrow, a
	IntentRight // Right arrow, d

	// System
	IntentQuit // Esc, Ctrl+C, q
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentQuit:
		return "quit"
	}
	return "none"
}

// Direction returns the steering direction for a movement intent.
func (i Intent) Direction() (rules.Direction, bool) {
	switch i {
	case IntentUp:
		return rules.DirectionUp, true
	case IntentDown:
		return rules.DirectionDown, true
	case IntentLeft:
		return rules.DirectionLeft, true
	case IntentRight:
		return rules.DirectionRight, true
	}
	return 0, false
}
