package tui

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/ravana/internal/config"
	"github.com/dshills/ravana/internal/renderer/plane"
)

// ErrInvalidColor indicates a colour that is not "#RRGGBB".
var ErrInvalidColor = errors.New("invalid color")

// ValidColor reports whether s is exactly '#' followed by six hex digits.
func ValidColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// ParseColor parses a "#RRGGBB" colour.
func ParseColor(s string) (plane.Color, error) {
	if !ValidColor(s) {
		return plane.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return plane.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return plane.RGB(r, g, b), nil
}

// Theme holds the validated colour channels of every widget.
type Theme struct {
	Highlight        plane.Channels
	PageBar          plane.Channels
	PageBarCurrentBg plane.Color
	PostHeader       plane.Channels
	PostUpvoted      plane.Channels
	PostHeading      plane.Channels
	PostBody         plane.Channels
	CmdPalette       plane.Channels
}

// PageBarCurrent returns the channels of the focused page-bar slot.
func (t Theme) PageBarCurrent() plane.Channels {
	return plane.NewChannels(t.PageBar.Fg, t.PageBarCurrentBg)
}

// Interface holds interface switches.
type Interface struct {
	MouseEventsEnable bool
}

// Prefs are validated TUI preferences.
type Prefs struct {
	Interface Interface
	Theme     Theme
}

// NewPrefs validates cfg. Every malformed colour is reported, each as a
// *config.ValidationError naming its setting.
func NewPrefs(cfg config.TuiConfig) (*Prefs, error) {
	fields := cfg.Theme.Fields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	colors := make(map[string]plane.Color, len(fields))
	var errs []error
	for _, name := range names {
		c, err := ParseColor(fields[name])
		if err != nil {
			errs = append(errs, &config.ValidationError{
				Setting: "tui.theme." + name,
				Problem: config.ProblemBadColor,
				Value:   fields[name],
			})
			continue
		}
		colors[name] = c
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	pair := func(prefix string) plane.Channels {
		return plane.NewChannels(colors[prefix+"-fg"], colors[prefix+"-bg"])
	}
	return &Prefs{
		Interface: Interface{MouseEventsEnable: cfg.Interface.MouseEventsEnable},
		Theme: Theme{
			Highlight:        pair("highlight"),
			PageBar:          pair("page-bar"),
			PageBarCurrentBg: colors["page-bar-current-bg"],
			PostHeader:       pair("post-header"),
			PostUpvoted:      pair("post-upvoted"),
			PostHeading:      pair("post-heading"),
			PostBody:         pair("post-body"),
			CmdPalette:       pair("cmd-plt"),
		},
	}, nil
}

// DefaultPrefs returns the preferences of the built-in configuration.
func DefaultPrefs() *Prefs {
	p, err := NewPrefs(config.Default().Tui)
	if err != nil {
		panic(err)
	}
	return p
}
