// Package input defines the key events the typing core consumes. Frontends
// translate their device events into KeyEvent slices, one slice per frame,
// in arrival order.
package input

import "unicode"

// KeyEvent is a single key transition. Char is 0 for keys that do not
// produce a character (arrows, function keys, modifiers).
type KeyEvent struct {
	Pressed bool
	Char    rune
}

// Press returns a press event for a character key.
func Press(r rune) KeyEvent {
	return KeyEvent{Pressed: true, Char: r}
}

// Release returns a release event for a character key.
func Release(r rune) KeyEvent {
	return KeyEvent{Pressed: false, Char: r}
}

// Typed reports whether the event is a press carrying a printable character,
// the only kind of event the matcher acts on.
func (k KeyEvent) Typed() bool {
	return k.Pressed && k.Char != 0 && unicode.IsPrint(k.Char)
}

// Word returns the press events for typing s, one per rune.
func Word(s string) []KeyEvent {
	keys := make([]KeyEvent, 0, len(s))
	for _, r := range s {
		keys = append(keys, Press(r))
	}
	return keys
}
