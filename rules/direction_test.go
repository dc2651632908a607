package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionVelocity(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  Velocity
	}{
		{Direction: DirectionUp, Expected: Velocity{DX: 0, DY: -10}},
		{Direction: DirectionDown, Expected: Velocity{DX: 0, DY: 10}},
		{Direction: DirectionLeft, Expected: Velocity{DX: -10, DY: 0}},
		{Direction: DirectionRight, Expected: Velocity{DX: 10, DY: 0}},
	}
	for _, test := range tests {
		v, ok := test.Direction.Velocity(10)
		require.True(t, ok)
		require.Equal(t, test.Expected, v, "Direction: %s", test.Direction)
	}

	_, ok := Direction(0).Velocity(10)
	require.False(t, ok)
	_, ok = Direction(42).Velocity(10)
	require.False(t, ok)
}

func TestDirectionControllerRejectsReversal(t *testing.T) {
	tests := []struct {
		Heading  Direction
		Reversal Direction
	}{
		{Heading: DirectionUp, Reversal: DirectionDown},
		{Heading: DirectionDown, Reversal: DirectionUp},
		{Heading: DirectionLeft, Reversal: DirectionRight},
		{Heading: DirectionRight, Reversal: DirectionLeft},
	}
	for _, test := range tests {
		initial, _ := test.Heading.Velocity(10)
		dc := NewDirectionController(initial, 10)
		require.False(t, dc.OnInput(test.Reversal), "heading %s", test.Heading)
		require.Equal(t, initial, dc.Velocity())
		require.False(t, dc.Locked(), "a rejected input should not lock")
	}
}

func TestDirectionControllerOneChangePerTick(t *testing.T) {
	dc := NewDirectionController(Velocity{DX: 10}, 10)

	require.True(t, dc.OnInput(DirectionUp))
	require.False(t, dc.OnInput(DirectionLeft))
	require.Equal(t, Velocity{DY: -10}, dc.Velocity())
	require.True(t, dc.Locked())

	dc.Unlock()
	require.False(t, dc.Locked())
	require.True(t, dc.OnInput(DirectionLeft))
	require.Equal(t, Velocity{DX: -10}, dc.Velocity())
}

func TestDirectionControllerIgnoresUnknown(t *testing.T) {
	dc := NewDirectionController(Velocity{DX: 10}, 10)
	require.False(t, dc.OnInput(Direction(0)))
	require.False(t, dc.Locked())
	require.Equal(t, Velocity{DX: 10}, dc.Velocity())

	require.True(t, dc.OnInput(DirectionDown))
}

func TestDirectionControllerSameDirectionLocks(t *testing.T) {
	dc := NewDirectionController(Velocity{DX: 10}, 10)
	require.True(t, dc.OnInput(DirectionRight))
	require.False(t, dc.OnInput(DirectionUp))
	require.Equal(t, Velocity{DX: 10}, dc.Velocity())
}
