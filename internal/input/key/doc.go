// Package key provides the key model used by bindings and the input loop.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: letters, named keys and held-modifier markers in one enumeration
//   - Combination: an ordered sequence of keys, modifiers first
//   - Event: one physical keystroke as reported by the terminal
//
// # Binding Text
//
// Bindings are written in a vim-like notation:
//
//   - Bare letters: "zz", "gt"; upper case implies Shift: "gT"
//   - Bracket groups: "<Esc>", "<C-b>", "<C-Tab>", "<S-A-F5>"
//   - Mixed: "<C-a>g", "<Space>x", "g<Esc>"
//
// Parse turns binding text into a Combination and Format prints the
// canonical text back. Decode turns an Event into the elements it adds to
// the input buffer, so a typed sequence can be compared directly with a
// parsed binding.
package key
