package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ravana/internal/input/key"
)

func knownActions(action string) bool {
	_, ok := Defaults()[action]
	return ok
}

func TestBuildDefaults(t *testing.T) {
	trie, err := Build(nil, knownActions)
	require.NoError(t, err)

	action, match := trie.Lookup(key.MustParse("zz"))
	assert.Equal(t, Exact, match)
	assert.Equal(t, "app_quit", action)

	// switch_page needs an argument and ships unbound.
	assert.Equal(t, 5, trie.Len())
}

func TestBuildUserOverride(t *testing.T) {
	trie, err := Build(map[string]string{"app_quit": "<C-q>", "scroll_down": "<C-d>"}, knownActions)
	require.NoError(t, err)

	_, match := trie.Lookup(key.MustParse("zz"))
	assert.Equal(t, NoMatch, match)

	action, match := trie.Lookup(key.MustParse("<C-q>"))
	assert.Equal(t, Exact, match)
	assert.Equal(t, "app_quit", action)

	action, _ = trie.Lookup(key.MustParse("k"))
	assert.Equal(t, "scroll_up", action)
}

func TestBuildUnbind(t *testing.T) {
	trie, err := Build(map[string]string{"scroll_up": ""}, knownActions)
	require.NoError(t, err)

	_, match := trie.Lookup(key.MustParse("k"))
	assert.Equal(t, NoMatch, match)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		user map[string]string
		want error
	}{
		{"unknown action", map[string]string{"explode": "x"}, ErrUnknownAction},
		{"parse error", map[string]string{"app_quit": "<C-"}, key.ErrSyntax},
		{"prefix conflict with default", map[string]string{"app_quit": "g"}, ErrPrefixConflict},
		{"duplicate", map[string]string{"app_quit": "j"}, ErrDuplicateBinding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.user, knownActions)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildNilKnownAcceptsAnything(t *testing.T) {
	trie, err := Build(map[string]string{"custom": "<F5>"}, nil)
	require.NoError(t, err)

	action, match := trie.Lookup(key.MustParse("<F5>"))
	assert.Equal(t, Exact, match)
	assert.Equal(t, "custom", action)
}

func TestMerge(t *testing.T) {
	merged := Merge(map[string]string{"app_quit": "q"})
	assert.Equal(t, "q", merged["app_quit"])
	assert.Equal(t, "j", merged["scroll_down"])

	// Defaults are not mutated by merging.
	assert.Equal(t, "zz", Defaults()["app_quit"])
}
