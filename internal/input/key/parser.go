package key

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Parse errors
var (
	ErrEmptyBinding = errors.New("empty key binding")
	ErrSyntax       = errors.New("invalid key binding syntax")
	ErrUnknownKey   = errors.New("unknown key")
)

// Parse parses binding text into a key combination.
//
// Supported forms:
//   - Bare letters: "gg", "zz"; upper case implies Shift ("G" is <S-g>)
//   - Bracket groups: "<Esc>", "<C-b>", "<C-Tab>", "<S-A-F5>"
//   - Concatenations of both: "<C-a>g", "<Space>x", "g<Esc>"
//
// Inside a bracket, tokens are separated by '-'; all but the last token
// must be modifiers (C, A, M, S) and the last must be a key. Modifiers are
// emitted in the canonical Ctrl, Alt, Shift order.
func Parse(s string) (Combination, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyBinding
	}

	var (
		out     Combination
		inGroup bool
		start   int
	)

	for i, r := range s {
		switch {
		case r == '<':
			if inGroup {
				return nil, fmt.Errorf("%w: nested '<' at offset %d in %q", ErrSyntax, i, s)
			}
			inGroup = true
			start = i + 1

		case r == '>':
			if !inGroup {
				return nil, fmt.Errorf("%w: stray '>' at offset %d in %q", ErrSyntax, i, s)
			}
			group, err := parseGroup(s[start:i])
			if err != nil {
				return nil, fmt.Errorf("%q: %w", s, err)
			}
			out = append(out, group...)
			inGroup = false

		case r == '-':
			if !inGroup {
				return nil, fmt.Errorf("%w: '-' outside brackets at offset %d in %q", ErrSyntax, i, s)
			}

		case inGroup:
			// Collected by parseGroup when the bracket closes.

		default:
			k, ok := LetterKey(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q in %q", ErrUnknownKey, r, s)
			}
			if r >= 'A' && r <= 'Z' {
				out = append(out, HoldShift)
			}
			out = append(out, k)
		}
	}

	if inGroup {
		return nil, fmt.Errorf("%w: unclosed '<' in %q", ErrSyntax, s)
	}

	return out, nil
}

// parseGroup parses the inside of a bracket group.
func parseGroup(inner string) (Combination, error) {
	parts := strings.Split(inner, "-")

	var mods Combination
	for _, p := range parts[:len(parts)-1] {
		k, err := lookupToken(p)
		if err != nil {
			return nil, err
		}
		if !k.IsModifier() {
			return nil, fmt.Errorf("%w: %q must be the last token of <%s>", ErrSyntax, p, inner)
		}
		if !containsKey(mods, k) {
			mods = append(mods, k)
		}
	}

	last := parts[len(parts)-1]
	k, err := lookupToken(last)
	if err != nil {
		return nil, err
	}
	if k.IsModifier() {
		return nil, fmt.Errorf("%w: <%s> has no key after its modifiers", ErrSyntax, inner)
	}

	sort.SliceStable(mods, func(i, j int) bool {
		return modifierRank(mods[i]) < modifierRank(mods[j])
	})

	return append(mods, k), nil
}

func lookupToken(tok string) (Key, error) {
	if tok == "" {
		return KeyNone, fmt.Errorf("%w: empty token", ErrSyntax)
	}
	k, ok := FromName(tok)
	if !ok {
		return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, tok)
	}
	return k, nil
}

func containsKey(c Combination, k Key) bool {
	for _, e := range c {
		if e == k {
			return true
		}
	}
	return false
}

// MustParse parses binding text and panics on error.
// Use only for known-valid bindings in initialization code.
func MustParse(s string) Combination {
	c, err := Parse(s)
	if err != nil {
		panic("invalid key binding: " + s + ": " + err.Error())
	}
	return c
}

// Normalize parses and re-formats binding text to its canonical form.
func Normalize(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(c), nil
}
