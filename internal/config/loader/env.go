package loader

import (
	"os"
	"strings"
)

// Env is the layer read from prefixed environment variables:
//
//	<prefix>MOUSE_EVENTS_ENABLE     tui.interface.mouse-events-enable
//	<prefix>THEME_PAGE_BAR_BG       tui.theme.page-bar-bg
//	<prefix>KEY_APP_QUIT            key-bindings.app_quit
//
// Other prefixed variables are ignored. An empty value is kept, so
// RAVANA_KEY_SWITCH_PAGE= unbinds switch_page.
type Env struct {
	prefix  string
	environ func() []string
}

// NewEnv creates the layer over the process environment.
// prefix includes the trailing underscore.
func NewEnv(prefix string) *Env {
	return NewEnvFrom(prefix, os.Environ)
}

// NewEnvFrom creates the layer over "NAME=value" pairs from environ.
func NewEnvFrom(prefix string, environ func() []string) *Env {
	return &Env{prefix: prefix, environ: environ}
}

// Prefix returns the variable prefix.
func (e *Env) Prefix() string {
	return e.prefix
}

// Load collects the recognised variables.
func (e *Env) Load() (map[string]any, error) {
	m := make(map[string]any)

	for _, kv := range e.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		rest, ok := strings.CutPrefix(name, e.prefix)
		if !ok {
			continue
		}

		if rest == "MOUSE_EVENTS_ENABLE" {
			set(m, boolish(value), "tui", "interface", "mouse-events-enable")
			continue
		}
		if field, ok := strings.CutPrefix(rest, "THEME_"); ok {
			set(m, value, "tui", "theme", strings.ToLower(strings.ReplaceAll(field, "_", "-")))
			continue
		}
		if action, ok := strings.CutPrefix(rest, "KEY_"); ok {
			set(m, value, "key-bindings", strings.ToLower(action))
		}
	}

	return m, nil
}

// boolish reads the usual boolean spellings. Anything else stays a
// string and fails decoding.
func boolish(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return s
}

// set stores v at the nested key path, creating tables as needed.
func set(m map[string]any, v any, path ...string) {
	last := len(path) - 1
	for _, k := range path[:last] {
		sub, ok := m[k].(map[string]any)
		if !ok {
			sub = make(map[string]any)
			m[k] = sub
		}
		m = sub
	}
	m[path[last]] = v
}
