package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ravana/internal/config"
	"github.com/dshills/ravana/internal/config/loader"
	"github.com/dshills/ravana/internal/input/keymap"
)

func TestLoader_Defaults(t *testing.T) {
	cfg, used, err := config.NewLoaderWithFS(fstest.MapFS{}, "a/Config.toml").Load()
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoader_FirstExistingWins(t *testing.T) {
	memfs := fstest.MapFS{
		"xdg/ravana/Config.toml": {Data: []byte("[tui.theme]\npage-bar-bg = \"#010203\"\n")},
		"home/.ravana/Config.toml": {Data: []byte("[tui.theme]\npage-bar-bg = \"#040506\"\n")},
	}

	cfg, used, err := config.NewLoaderWithFS(memfs,
		"missing/ravana/Config.toml",
		"xdg/ravana/Config.toml",
		"home/.ravana/Config.toml",
	).Load()
	require.NoError(t, err)
	assert.Equal(t, "xdg/ravana/Config.toml", used)
	assert.Equal(t, "#010203", cfg.Tui.Theme.PageBarBg)
	assert.Equal(t, config.Default().Tui.Theme.PageBarFg, cfg.Tui.Theme.PageBarFg)
}

func TestLoader_KeyBindingsAndInterface(t *testing.T) {
	memfs := fstest.MapFS{
		"Config.toml": {Data: []byte(`
[key-bindings]
app_quit = "ZZ"
switch_page = ""

[tui.interface]
mouse-events-enable = true
`)},
	}

	cfg, _, err := config.NewLoaderWithFS(memfs, "Config.toml").Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"app_quit": "ZZ", "switch_page": ""}, cfg.KeyBindings)
	assert.True(t, cfg.Tui.Interface.MouseEventsEnable)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	memfs := fstest.MapFS{
		"Config.toml": {Data: []byte("[key-bindings]\napp_quit = \"ZZ\"\n")},
	}
	env := loader.NewEnvFrom(config.EnvPrefix, func() []string {
		return []string{
			"RAVANA_KEY_APP_QUIT=qq",
			"RAVANA_THEME_CMD_PLT_BG=#0a0b0c",
			"RAVANA_MOUSE_EVENTS_ENABLE=true",
		}
	})

	cfg, _, err := config.NewLoaderWithFS(memfs, "Config.toml").WithEnv(env).Load()
	require.NoError(t, err)
	assert.Equal(t, "qq", cfg.KeyBindings["app_quit"])
	assert.Equal(t, "#0a0b0c", cfg.Tui.Theme.CmdPaletteBg)
	assert.True(t, cfg.Tui.Interface.MouseEventsEnable)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("invalid toml", func(t *testing.T) {
		memfs := fstest.MapFS{"Config.toml": {Data: []byte("[key-bindings\n")}}
		_, used, err := config.NewLoaderWithFS(memfs, "Config.toml").Load()
		require.Error(t, err)
		assert.Equal(t, "Config.toml", used)

		var perr *loader.ParseError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("unknown setting", func(t *testing.T) {
		memfs := fstest.MapFS{"Config.toml": {Data: []byte("[tui.theme]\npage-bar = \"#000000\"\n")}}
		_, _, err := config.NewLoaderWithFS(memfs, "Config.toml").Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrValidationFailed)

		var verr *config.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "tui.theme.page-bar", verr.Setting)
		assert.Equal(t, config.ProblemUnknownSetting, verr.Problem)
		assert.Equal(t, "tui.theme.page-bar: unknown setting", verr.Error())
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, _, err := config.NewLoaderWithPath(filepath.Join(t.TempDir(), "nope.toml")).
			WithEnv(nil).Load()
		assert.ErrorIs(t, err, config.ErrFileNotFound)
	})
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/u")

	assert.Equal(t, []string{
		"/xdg/ravana/Config.toml",
		"/home/u/.config/ravana/Config.toml",
		"/home/u/.ravana/Config.toml",
	}, config.SearchPaths())
}

// docs/Config.toml documents the defaults and must stay in sync with them.
func TestDocsConfigMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "docs", "Config.toml"))
	require.NoError(t, err)

	cfg, err := config.Parse("docs/Config.toml", data)
	require.NoError(t, err)

	assert.Equal(t, config.Default().Tui, cfg.Tui)
	assert.Equal(t, keymap.Defaults(), cfg.KeyBindings)
}

func TestThemeFields(t *testing.T) {
	fields := config.Default().Tui.Theme.Fields()
	assert.Len(t, fields, 15)
	for name, v := range fields {
		assert.Len(t, v, 7, name)
	}
}

func TestValidationError(t *testing.T) {
	err := &config.ValidationError{
		Setting: "tui.theme.page-bar-bg",
		Problem: config.ProblemBadColor,
		Value:   "blue",
	}
	assert.Equal(t, `tui.theme.page-bar-bg = "blue": expected #RRGGBB`, err.Error())
	assert.True(t, errors.Is(err, config.ErrValidationFailed))
	assert.Equal(t, "Problem(9)", config.Problem(9).String())
}
