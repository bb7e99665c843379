package key

import "strings"

// Combination is an ordered sequence of keys bound to, or typed toward,
// an action. Modifiers appear as HoldCtrl, HoldAlt and HoldShift elements
// immediately before the key they modify.
type Combination []Key

// Len returns the number of elements in the combination.
func (c Combination) Len() int {
	return len(c)
}

// IsEmpty returns true if the combination has no elements.
func (c Combination) IsEmpty() bool {
	return len(c) == 0
}

// Equal reports whether two combinations are element-wise equal.
func (c Combination) Equal(other Combination) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is a leading subsequence of c.
func (c Combination) HasPrefix(prefix Combination) bool {
	if len(prefix) > len(c) {
		return false
	}
	return prefix.Equal(c[:len(prefix)])
}

// Clone returns an independent copy of the combination.
func (c Combination) Clone() Combination {
	if c == nil {
		return nil
	}
	out := make(Combination, len(c))
	copy(out, c)
	return out
}

// String returns the canonical binding text. See Format.
func (c Combination) String() string {
	return Format(c)
}

// Format renders a combination as canonical binding text.
//
// Unmodified letters are written bare ("gg"), modified keys and named
// keys are written as bracket groups ("<C-a>", "<Esc>", "<A-S-Tab>").
// Parse(Format(c)) yields c for every combination produced by Parse or
// Decode.
func Format(c Combination) string {
	var sb strings.Builder
	var mods []Key

	for _, k := range c {
		if k.IsModifier() {
			mods = append(mods, k)
			continue
		}
		if len(mods) == 0 && k.IsLetter() {
			sb.WriteRune(k.Letter())
			continue
		}
		sb.WriteByte('<')
		for _, m := range mods {
			sb.WriteString(m.String())
			sb.WriteByte('-')
		}
		sb.WriteString(k.String())
		sb.WriteByte('>')
		mods = mods[:0]
	}

	// Dangling modifiers have no key to attach to.
	if len(mods) > 0 {
		sb.WriteByte('<')
		for i, m := range mods {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteString(m.String())
		}
		sb.WriteByte('>')
	}

	return sb.String()
}
