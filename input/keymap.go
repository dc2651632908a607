package input

import "unicode"

// Browser style key codes, as sent by keydown events.
const (
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
	KeyCodeW     = 87
	KeyCodeA     = 65
	KeyCodeS     = 83
	KeyCodeD     = 68
)

var keyCodes = map[int]Intent{
	KeyCodeLeft:  IntentLeft,
	KeyCodeUp:    IntentUp,
	KeyCodeRight: IntentRight,
	KeyCodeDown:  IntentDown,
	KeyCodeA:     IntentLeft,
	KeyCodeW:     IntentUp,
	KeyCodeD:     IntentRight,
	KeyCodeS:     IntentDown,
}

var runes = map[rune]Intent{
	'w': IntentUp,
	'a': IntentLeft,
	's': IntentDown,
	'd': IntentRight,
	'q': IntentQuit,
}

// FromKeyCode maps a key code to an intent. Unknown codes map to IntentNone.
func FromKeyCode(code int) Intent {
	return keyCodes[code]
}

// FromRune maps a typed character to an intent, ignoring case. Unknown
// characters map to IntentNone.
func FromRune(r rune) Intent {
	return runes[unicode.ToLower(r)]
}
