package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/ravana/internal/input/key"
)

// ErrUnknownAction is returned when a binding names an action no command
// implements.
var ErrUnknownAction = errors.New("unknown action")

// Defaults returns the built-in action bindings.
// An empty binding leaves the action unbound.
func Defaults() map[string]string {
	return map[string]string{
		"app_quit":    "zz",
		"scroll_down": "j",
		"scroll_up":   "k",
		"next_page":   "gt",
		"prev_page":   "gT",
		"switch_page": "",
	}
}

// Merge overlays user bindings on the defaults.
func Merge(user map[string]string) map[string]string {
	merged := Defaults()
	for action, binding := range user {
		merged[action] = binding
	}
	return merged
}

// Build creates the binding trie from the defaults overridden by user.
// Every user action must satisfy known; a nil known accepts any action.
func Build(user map[string]string, known func(action string) bool) (*Trie, error) {
	if known != nil {
		for action := range user {
			if !known(action) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
			}
		}
	}

	merged := Merge(user)

	// Insert in a stable order so conflict errors are reproducible.
	actions := make([]string, 0, len(merged))
	for action := range merged {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	trie := NewTrie()
	for _, action := range actions {
		binding := merged[action]
		if binding == "" {
			continue
		}
		c, err := key.Parse(binding)
		if err != nil {
			return nil, fmt.Errorf("binding for %q: %w", action, err)
		}
		if err := trie.Insert(c, action); err != nil {
			return nil, fmt.Errorf("binding for %q: %w", action, err)
		}
	}

	return trie, nil
}
