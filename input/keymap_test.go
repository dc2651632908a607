package input

import (
	"testing"

	"github.com/battlesnakeio/snek/rules"
	"github.com/stretchr/testify/require"
)

func TestFromKeyCode(t *testing.T) {
	tests := []struct {
		Code     int
		Expected Intent
	}{
		{Code: 37, Expected: IntentLeft},
		{Code: 38, Expected: IntentUp},
		{Code: 39, Expected: IntentRight},
		{Code: 40, Expected: IntentDown},
		{Code: 65, Expected: IntentLeft},
		{Code: 87, Expected: IntentUp},
		{Code: 68, Expected: IntentRight},
		{Code: 83, Expected: IntentDown},
		{Code: 13, Expected: IntentNone},
		{Code: -1, Expected: IntentNone},
	}
	for _, test := range tests {
		require.Equal(t, test.Expected, FromKeyCode(test.Code), "code %d", test.Code)
	}
}

func TestFromRune(t *testing.T) {
	require.Equal(t, IntentUp, FromRune('w'))
	require.Equal(t, IntentUp, FromRune('W'))
	require.Equal(t, IntentLeft, FromRune('a'))
	require.Equal(t, IntentDown, FromRune('s'))
	require.Equal(t, IntentRight, FromRune('D'))
	require.Equal(t, IntentQuit, FromRune('q'))
	require.Equal(t, IntentNone, FromRune('x'))
}

func TestIntentDirection(t *testing.T) {
	d, ok := IntentLeft.Direction()
	require.True(t, ok)
	require.Equal(t, rules.DirectionLeft, d)

	_, ok = IntentQuit.Direction()
	require.False(t, ok)
	_, ok = IntentNone.Direction()
	require.False(t, ok)
}
