package loader

import (
	"testing"
	"testing/fstest"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoad(t *testing.T) {
	memfs := fstest.MapFS{
		"home/.ravana/Config.toml": {Data: []byte(`
[key-bindings]
app_quit = "ZZ"

[tui.interface]
mouse-events-enable = true

[tui.theme]
page-bar-bg = "#112233"
`)},
	}

	l := NewFile(memfs, "home/.ravana/Config.toml")
	require.True(t, l.Exists())
	assert.Equal(t, "home/.ravana/Config.toml", l.Path())

	config, err := l.Load()
	require.NoError(t, err)

	bindings, ok := config["key-bindings"].(map[string]any)
	require.True(t, ok, "key-bindings should be a table")
	assert.Equal(t, "ZZ", bindings["app_quit"])

	tui, ok := config["tui"].(map[string]any)
	require.True(t, ok)
	iface, ok := tui["interface"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, iface["mouse-events-enable"])
}

func TestFileMissing(t *testing.T) {
	l := NewFile(fstest.MapFS{}, "nope.toml")
	assert.False(t, l.Exists())

	config, err := l.Load()
	assert.NoError(t, err)
	assert.Nil(t, config)
}

func TestParseError(t *testing.T) {
	_, err := Parse("bad.toml", []byte("[tui\nx = 1\n"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.toml", perr.Source)
	assert.Equal(t, 1, perr.Line)
	assert.Contains(t, perr.Error(), "bad.toml:1")
}

func TestDecode(t *testing.T) {
	type iface struct {
		Mouse bool `toml:"mouse"`
	}
	type target struct {
		Name  string `toml:"name"`
		Iface iface  `toml:"iface"`
	}

	t.Run("keeps absent fields", func(t *testing.T) {
		v := target{Name: "keep"}
		err := Decode(map[string]any{"iface": map[string]any{"mouse": true}}, &v)
		require.NoError(t, err)
		assert.Equal(t, "keep", v.Name)
		assert.True(t, v.Iface.Mouse)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		var v target
		err := Decode(map[string]any{"nmae": "typo"}, &v)
		require.Error(t, err)

		var strict *toml.StrictMissingError
		assert.ErrorAs(t, err, &strict)
	})
}

func TestMerge(t *testing.T) {
	file := map[string]any{
		"tui": map[string]any{
			"theme":     map[string]any{"page-bar-bg": "#000000", "page-bar-fg": "#ffffff"},
			"interface": map[string]any{"mouse-events-enable": false},
		},
	}
	env := map[string]any{
		"tui": map[string]any{
			"theme": map[string]any{"page-bar-bg": "#111111"},
		},
		"key-bindings": map[string]any{"app_quit": "q"},
	}

	got := Merge(file, env)

	want := map[string]any{
		"tui": map[string]any{
			"theme":     map[string]any{"page-bar-bg": "#111111", "page-bar-fg": "#ffffff"},
			"interface": map[string]any{"mouse-events-enable": false},
		},
		"key-bindings": map[string]any{"app_quit": "q"},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "#000000", file["tui"].(map[string]any)["theme"].(map[string]any)["page-bar-bg"], "inputs untouched")

	assert.Empty(t, Merge())
	assert.Equal(t, env, Merge(nil, env))
}

func TestMergeReplacesScalarWithTable(t *testing.T) {
	got := Merge(
		map[string]any{"tui": "oops"},
		map[string]any{"tui": map[string]any{"theme": map[string]any{}}},
	)
	assert.Equal(t, map[string]any{"tui": map[string]any{"theme": map[string]any{}}}, got)
}

func TestEnv(t *testing.T) {
	environ := func() []string {
		return []string{
			"HOME=/home/u",
			"RAVANA_LOG=debug",
			"RAVANA_MOUSE_EVENTS_ENABLE=yes",
			"RAVANA_THEME_PAGE_BAR_CURRENT_BG=#abcdef",
			"RAVANA_KEY_APP_QUIT=<C-q>",
			"RAVANA_KEY_SWITCH_PAGE=",
		}
	}

	l := NewEnvFrom("RAVANA_", environ)
	assert.Equal(t, "RAVANA_", l.Prefix())

	config, err := l.Load()
	require.NoError(t, err)

	want := map[string]any{
		"tui": map[string]any{
			"interface": map[string]any{"mouse-events-enable": true},
			"theme":     map[string]any{"page-bar-current-bg": "#abcdef"},
		},
		"key-bindings": map[string]any{
			"app_quit":    "<C-q>",
			"switch_page": "",
		},
	}
	assert.Equal(t, want, config)
}

func TestBoolish(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"ON", true},
		{"1", true},
		{"no", false},
		{"0", false},
		{"#ffffff", "#ffffff"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, boolish(tt.in))
		})
	}
}
