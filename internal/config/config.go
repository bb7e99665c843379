package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/ravana/internal/config/loader"
)

// EnvPrefix prefixes every environment variable the config layer reads.
const EnvPrefix = "RAVANA_"

// FileName is the name of the user configuration file.
const FileName = "Config.toml"

// Config is the complete user configuration.
type Config struct {
	// KeyBindings maps action names to binding strings. Actions absent
	// here fall back to the keymap defaults.
	KeyBindings map[string]string `toml:"key-bindings"`
	Tui         TuiConfig         `toml:"tui"`
}

// TuiConfig holds the [tui] tables.
type TuiConfig struct {
	Interface InterfaceConfig `toml:"interface"`
	Theme     ThemeConfig     `toml:"theme"`
}

// InterfaceConfig holds [tui.interface].
type InterfaceConfig struct {
	MouseEventsEnable bool `toml:"mouse-events-enable"`
}

// ThemeConfig holds [tui.theme]. Every field is a "#RRGGBB" colour.
type ThemeConfig struct {
	HighlightFg      string `toml:"highlight-fg"`
	HighlightBg      string `toml:"highlight-bg"`
	PageBarFg        string `toml:"page-bar-fg"`
	PageBarBg        string `toml:"page-bar-bg"`
	PageBarCurrentBg string `toml:"page-bar-current-bg"`
	PostHeaderFg     string `toml:"post-header-fg"`
	PostHeaderBg     string `toml:"post-header-bg"`
	PostUpvotedFg    string `toml:"post-upvoted-fg"`
	PostUpvotedBg    string `toml:"post-upvoted-bg"`
	PostHeadingFg    string `toml:"post-heading-fg"`
	PostHeadingBg    string `toml:"post-heading-bg"`
	PostBodyFg       string `toml:"post-body-fg"`
	PostBodyBg       string `toml:"post-body-bg"`
	CmdPaletteFg     string `toml:"cmd-plt-fg"`
	CmdPaletteBg     string `toml:"cmd-plt-bg"`
}

// Fields returns every theme colour keyed by its TOML name.
func (t ThemeConfig) Fields() map[string]string {
	return map[string]string{
		"highlight-fg":        t.HighlightFg,
		"highlight-bg":        t.HighlightBg,
		"page-bar-fg":         t.PageBarFg,
		"page-bar-bg":         t.PageBarBg,
		"page-bar-current-bg": t.PageBarCurrentBg,
		"post-header-fg":      t.PostHeaderFg,
		"post-header-bg":      t.PostHeaderBg,
		"post-upvoted-fg":     t.PostUpvotedFg,
		"post-upvoted-bg":     t.PostUpvotedBg,
		"post-heading-fg":     t.PostHeadingFg,
		"post-heading-bg":     t.PostHeadingBg,
		"post-body-fg":        t.PostBodyFg,
		"post-body-bg":        t.PostBodyBg,
		"cmd-plt-fg":          t.CmdPaletteFg,
		"cmd-plt-bg":          t.CmdPaletteBg,
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		KeyBindings: map[string]string{},
		Tui: TuiConfig{
			Interface: InterfaceConfig{MouseEventsEnable: false},
			Theme: ThemeConfig{
				HighlightFg:      "#1c1c1c",
				HighlightBg:      "#d7af5f",
				PageBarFg:        "#d0d0d0",
				PageBarBg:        "#303030",
				PageBarCurrentBg: "#5f87af",
				PostHeaderFg:     "#8a8a8a",
				PostHeaderBg:     "#1c1c1c",
				PostUpvotedFg:    "#ff8700",
				PostUpvotedBg:    "#1c1c1c",
				PostHeadingFg:    "#eeeeee",
				PostHeadingBg:    "#1c1c1c",
				PostBodyFg:       "#bcbcbc",
				PostBodyBg:       "#1c1c1c",
				CmdPaletteFg:     "#eeeeee",
				CmdPaletteBg:     "#262626",
			},
		},
	}
}

// SearchPaths returns the config file locations in priority order.
func SearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "ravana", FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "ravana", FileName),
			filepath.Join(home, ".ravana", FileName),
		)
	}
	return paths
}

// Loader resolves the configuration from a file and the environment.
type Loader struct {
	fs       loader.FS
	paths    []string
	explicit bool
	env      loader.Layer
}

// NewLoader creates a loader over the default search paths.
func NewLoader() *Loader {
	return &Loader{
		fs:    loader.OS(),
		paths: SearchPaths(),
		env:   loader.NewEnv(EnvPrefix),
	}
}

// NewLoaderWithPath creates a loader for a single explicit file.
// Load fails with ErrFileNotFound if the file doesn't exist.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{
		fs:       loader.OS(),
		paths:    []string{path},
		explicit: true,
		env:      loader.NewEnv(EnvPrefix),
	}
}

// NewLoaderWithFS creates a loader searching paths on fsys with no
// environment layer.
func NewLoaderWithFS(fsys loader.FS, paths ...string) *Loader {
	return &Loader{
		fs:    fsys,
		paths: paths,
	}
}

// WithEnv replaces the environment layer. A nil loader disables it.
func (l *Loader) WithEnv(env loader.Layer) *Loader {
	l.env = env
	return l
}

// Paths returns the paths the loader searches.
func (l *Loader) Paths() []string {
	return l.paths
}

// Load resolves the configuration. It returns the path of the file that
// was read, or "" when only defaults and the environment applied.
func (l *Loader) Load() (*Config, string, error) {
	var layers []map[string]any
	used := ""

	for _, path := range l.paths {
		f := loader.NewFile(l.fs, path)
		if !f.Exists() {
			continue
		}
		data, err := f.Load()
		if err != nil {
			return nil, path, err
		}
		layers = append(layers, data)
		used = path
		break
	}
	if used == "" && l.explicit && len(l.paths) > 0 {
		return nil, "", fmt.Errorf("%w: %s", ErrFileNotFound, l.paths[0])
	}

	if l.env != nil {
		data, err := l.env.Load()
		if err != nil {
			return nil, used, fmt.Errorf("loading environment: %w", err)
		}
		layers = append(layers, data)
	}
	merged := loader.Merge(layers...)

	cfg := Default()
	if err := loader.Decode(merged, cfg); err != nil {
		return nil, used, unknownSettings(err)
	}
	if cfg.KeyBindings == nil {
		cfg.KeyBindings = map[string]string{}
	}
	return cfg, used, nil
}

// Load resolves the configuration from the default search paths, or from
// path alone when it is non-empty.
func Load(path string) (*Config, string, error) {
	if path != "" {
		return NewLoaderWithPath(path).Load()
	}
	return NewLoader().Load()
}

// Parse decodes a single TOML document over the defaults.
func Parse(source string, data []byte) (*Config, error) {
	m, err := loader.Parse(source, data)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := loader.Decode(m, cfg); err != nil {
		return nil, unknownSettings(err)
	}
	return cfg, nil
}

// unknownSettings turns strict-decoding failures into validation errors
// naming each unrecognised key.
func unknownSettings(err error) error {
	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		return err
	}
	errs := make([]error, 0, len(strict.Errors))
	for _, de := range strict.Errors {
		errs = append(errs, &ValidationError{
			Setting: strings.Join(de.Key(), "."),
			Problem: ProblemUnknownSetting,
		})
	}
	return errors.Join(errs...)
}
