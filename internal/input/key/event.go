package key

import (
	"fmt"
	"unicode"
)

// Event is a single physical keystroke as reported by the terminal.
//
// Exactly one of Rune and Key is set: Rune for character input, Key for
// named keys (Enter, arrows, function keys and so on).
type Event struct {
	// Rune is the character typed, or 0 for named keys.
	Rune rune

	// Key is the named key, or KeyNone for character input.
	Key Key

	// Ctrl, Alt and Shift report the held modifiers.
	Ctrl  bool
	Alt   bool
	Shift bool

	// Release is set for key-up events.
	Release bool
}

// RuneEvent creates a character keystroke without modifiers.
func RuneEvent(r rune) Event {
	return Event{Rune: r}
}

// NamedEvent creates a named keystroke without modifiers.
func NamedEvent(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true if this is a character keystroke.
func (e Event) IsRune() bool {
	return e.Rune != 0
}

// IsPrintable returns true if this is a printable character keystroke.
func (e Event) IsPrintable() bool {
	return e.IsRune() && !e.Ctrl && !e.Alt && unicode.IsPrint(e.Rune)
}

// Is reports whether the event is the given named key with no Ctrl or Alt.
func (e Event) Is(k Key) bool {
	return !e.IsRune() && e.Key == k && !e.Ctrl && !e.Alt
}

// String returns a debugging representation of the event.
func (e Event) String() string {
	mods := ""
	if e.Ctrl {
		mods += "C-"
	}
	if e.Alt {
		mods += "A-"
	}
	if e.Shift {
		mods += "S-"
	}
	if e.IsRune() {
		return fmt.Sprintf("%s%q", mods, e.Rune)
	}
	return mods + e.Key.String()
}

// Decode translates a physical keystroke into the combination elements it
// contributes to the input buffer. It returns false when the keystroke has
// no key model representation (release events, digits, punctuation).
//
// Modifiers are emitted in the order Ctrl, Alt, Shift. An upper-case
// letter typed without Ctrl implies Shift; under Ctrl the terminal
// reports the letter case unreliably, so only the Shift flag counts.
func Decode(e Event) (Combination, bool) {
	if e.Release {
		return nil, false
	}

	var base Key
	shift := e.Shift

	switch {
	case e.IsRune():
		switch {
		case e.Rune == ' ':
			base = KeySpace
		default:
			k, ok := LetterKey(e.Rune)
			if !ok {
				return nil, false
			}
			base = k
			if unicode.IsUpper(e.Rune) && !e.Ctrl {
				shift = true
			}
		}

	case e.Key != KeyNone && !e.Key.IsModifier():
		base = e.Key

	default:
		return nil, false
	}

	out := make(Combination, 0, 4)
	if e.Ctrl {
		out = append(out, HoldCtrl)
	}
	if e.Alt {
		out = append(out, HoldAlt)
	}
	if shift {
		out = append(out, HoldShift)
	}
	return append(out, base), true
}
