// Package config provides the configuration system for ravana.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← RAVANA_* (highest priority)
//	├─────────────────────────────┤
//	│  2. User Config File        │  ← first existing search path
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Default()
//	└─────────────────────────────┘
//
// The user file is searched for in order:
//
//	$XDG_CONFIG_HOME/ravana/Config.toml
//	~/.config/ravana/Config.toml
//	~/.ravana/Config.toml
//
// The first existing file wins; --config replaces the list with one path.
//
// # Tables
//
//	[key-bindings]
//	app_quit = "zz"
//	next_page = "gt"
//
//	[tui.interface]
//	mouse-events-enable = false
//
//	[tui.theme]
//	page-bar-current-bg = "#5f87af"
//
// Colours are validated by the tui package when preferences are built;
// bindings are validated by the keymap package when the trie is built.
//
// # Session
//
// Session holds state persisted across runs (the OAuth refresh token and
// a stable device id) in a separate TOML file under the state directory.
//
// # Sub-packages
//
//   - loader: the TOML file and environment layers, Merge and Decode
package config
