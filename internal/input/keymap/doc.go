// Package keymap maps key combinations typed in normal mode to actions.
//
// Bindings come from the [key-bindings] configuration table merged over
// Defaults and are stored in a Trie. The trie refuses any binding that is
// a prefix of another, so the input loop can act on the first exact match
// without waiting for a timeout.
//
// # Lookup Protocol
//
// After each keystroke the input buffer is looked up:
//
//	NoMatch  - clear the buffer
//	Prefix   - keep the buffer and wait for more keys
//	Exact    - dispatch the action and clear the buffer
//
// # Usage
//
//	trie, err := keymap.Build(cfg.KeyBindings, registry.Has)
//	if err != nil {
//	    return err
//	}
//	action, match := trie.Lookup(buffer)
package keymap
