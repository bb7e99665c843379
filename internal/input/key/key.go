package key

import (
	"fmt"
	"strings"
)

// Key is one element of a key combination.
// Letters, named keys and held modifiers share a single enumeration so a
// chord such as Ctrl+a is the two-element sequence [HoldCtrl, KeyA].
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Special keys
	KeyEnter
	KeyEsc
	KeySpace
	KeyBackspace
	KeyTab
	KeyInsert
	KeyDel
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Held modifiers. They always precede the key they modify.
	HoldCtrl
	HoldAlt
	HoldShift
)

// names holds the canonical bracket name of every non-letter key.
var names = map[Key]string{
	KeyEnter:     "Enter",
	KeyEsc:       "Esc",
	KeySpace:     "Space",
	KeyBackspace: "BS",
	KeyTab:       "Tab",
	KeyInsert:    "Insert",
	KeyDel:       "Del",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
	HoldCtrl:     "C",
	HoldAlt:      "A",
	HoldShift:    "S",
}

// tokens maps every name accepted inside a bracket group to its key.
// Aliases (CR, Return, M) resolve to the same key as their canonical name.
var tokens = func() map[string]Key {
	m := make(map[string]Key, len(names)+32)
	for k, name := range names {
		m[name] = k
	}
	for r := 'a'; r <= 'z'; r++ {
		m[string(r)] = KeyA + Key(r-'a')
	}
	m["CR"] = KeyEnter
	m["Return"] = KeyEnter
	m["M"] = HoldAlt
	return m
}()

// String returns the canonical name for the key.
// Letters are returned in lower case.
func (k Key) String() string {
	if k.IsLetter() {
		return string(k.Letter())
	}
	if name, ok := names[k]; ok {
		return name
	}
	if k == KeyNone {
		return "None"
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsLetter reports whether k is one of KeyA..KeyZ.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsModifier reports whether k is a held modifier marker.
func (k Key) IsModifier() bool {
	return k == HoldCtrl || k == HoldAlt || k == HoldShift
}

// Letter returns the lower-case rune of a letter key, or 0.
func (k Key) Letter() rune {
	if !k.IsLetter() {
		return 0
	}
	return 'a' + rune(k-KeyA)
}

// LetterKey returns the key for a letter rune of either case.
func LetterKey(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	}
	return KeyNone, false
}

// FromName returns the key for a bracket token such as "Esc", "C" or "f".
// Token names are case-sensitive.
func FromName(name string) (Key, bool) {
	k, ok := tokens[strings.TrimSpace(name)]
	return k, ok
}

// modifierRank orders modifiers canonically: Ctrl, Alt, Shift.
func modifierRank(k Key) int {
	switch k {
	case HoldCtrl:
		return 0
	case HoldAlt:
		return 1
	case HoldShift:
		return 2
	}
	return -1
}
