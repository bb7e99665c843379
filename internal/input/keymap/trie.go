package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/ravana/internal/input/key"
)

// Trie errors
var (
	ErrEmptyBinding     = errors.New("empty binding")
	ErrDuplicateBinding = errors.New("binding already assigned")
	ErrPrefixConflict   = errors.New("binding conflicts with a prefix")
)

// Match classifies a lookup result.
type Match uint8

const (
	// NoMatch means no binding starts with the looked-up combination.
	NoMatch Match = iota
	// Prefix means the combination is a strict prefix of at least one binding.
	Prefix
	// Exact means the combination is a complete binding.
	Exact
)

// String returns a human-readable name for the match.
func (m Match) String() string {
	switch m {
	case NoMatch:
		return "none"
	case Prefix:
		return "prefix"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// Trie maps key combinations to action names.
//
// No stored binding is ever a strict prefix of another, so every terminal
// node is a leaf and a lookup is unambiguous.
type Trie struct {
	root *trieNode
	size int
}

type trieNode struct {
	children map[key.Key]*trieNode
	action   string
	terminal bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[key.Key]*trieNode)}
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert binds a combination to an action.
func (t *Trie) Insert(c key.Combination, action string) error {
	if c.IsEmpty() {
		return ErrEmptyBinding
	}

	node := t.root
	for i, k := range c {
		if node.terminal {
			return fmt.Errorf("%w: %s is bound to %q", ErrPrefixConflict, key.Format(c[:i]), node.action)
		}
		child, ok := node.children[k]
		if !ok {
			child = newTrieNode()
			node.children[k] = child
		}
		node = child
	}

	if node.terminal {
		return fmt.Errorf("%w: %s is bound to %q", ErrDuplicateBinding, key.Format(c), node.action)
	}
	if len(node.children) > 0 {
		return fmt.Errorf("%w: %s extends to a longer binding", ErrPrefixConflict, key.Format(c))
	}

	node.action = action
	node.terminal = true
	t.size++
	return nil
}

// Lookup classifies c against the stored bindings and returns the bound
// action on an exact match.
func (t *Trie) Lookup(c key.Combination) (string, Match) {
	node := t.root
	for _, k := range c {
		child, ok := node.children[k]
		if !ok {
			return "", NoMatch
		}
		node = child
	}

	switch {
	case node.terminal:
		return node.action, Exact
	case len(node.children) > 0:
		return "", Prefix
	default:
		return "", NoMatch
	}
}

// Len returns the number of stored bindings.
func (t *Trie) Len() int {
	return t.size
}

// Binding is one stored combination and its action.
type Binding struct {
	Keys   key.Combination
	Action string
}

// Bindings returns every stored binding sorted by action name.
func (t *Trie) Bindings() []Binding {
	out := make([]Binding, 0, t.size)
	var walk func(n *trieNode, path key.Combination)
	walk = func(n *trieNode, path key.Combination) {
		if n.terminal {
			out = append(out, Binding{Keys: path.Clone(), Action: n.action})
			return
		}
		for k, child := range n.children {
			walk(child, append(path, k))
		}
	}
	walk(t.root, nil)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return key.Format(out[i].Keys) < key.Format(out[j].Keys)
	})
	return out
}
