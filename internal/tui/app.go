package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/ravana/internal/command"
	"github.com/dshills/ravana/internal/input/key"
	"github.com/dshills/ravana/internal/logging"
	"github.com/dshills/ravana/internal/renderer/backend"
	"github.com/dshills/ravana/internal/renderer/plane"
)

// ErrNoSuchPage indicates a page index outside the open pages.
var ErrNoSuchPage = errors.New("no such page")

// App is the root of the widget tree.
//
// App is not safe for concurrent use. Only the terminal is shared, and
// every access to it goes through the Handle.
type App struct {
	handle *backend.Handle
	prefs  *Prefs
	cmds   *command.Registry
	log    *logging.Logger

	plane   *plane.Plane
	pages   []*Page
	focPage int
	bar     *PageBar
	palette *CmdPalette

	closed bool
}

// New creates the app plane spanning the terminal with an empty page bar
// on the top row and the command palette on the bottom row.
func New(h *backend.Handle, prefs *Prefs) (*App, error) {
	a := &App{
		handle: h,
		prefs:  prefs,
		cmds:   command.Default(),
		log:    logging.Component("app"),
	}

	var std *plane.Plane
	var w, ht int
	err := h.With(func(t *backend.Terminal) error {
		if prefs.Interface.MouseEventsEnable {
			a.log.Info("enabling mouse events")
			if err := t.MiceEnable(); err != nil {
				return fmt.Errorf("enabling mouse events: %w", err)
			}
		}
		std = t.Stdplane()
		w, ht = t.Dim()
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.plane, err = std.NewChild(0, 0, w, ht)
	if err != nil {
		return nil, fmt.Errorf("app plane: %w", err)
	}
	if a.palette, err = newCmdPalette(prefs, a.plane, 0, ht-1, w); err != nil {
		_ = a.plane.Destroy()
		return nil, err
	}
	if a.bar, err = newPageBar(prefs, a.plane, 0, 0, w); err != nil {
		a.palette.DestroyReader()
		_ = a.plane.Destroy()
		return nil, err
	}
	return a, nil
}

// Commands returns the registry ExecCmd dispatches to.
func (a *App) Commands() *command.Registry {
	return a.cmds
}

// Prefs returns the preferences the app draws with.
func (a *App) Prefs() *Prefs {
	return a.prefs
}

// Plane returns the app plane.
func (a *App) Plane() *plane.Plane {
	return a.plane
}

// PageBar returns the page bar.
func (a *App) PageBar() *PageBar {
	return a.bar
}

// Palette returns the command palette.
func (a *App) Palette() *CmdPalette {
	return a.palette
}

// Pages returns the number of open pages.
func (a *App) Pages() int {
	return len(a.pages)
}

// Page returns page i, or nil when i is out of range.
func (a *App) Page(i int) *Page {
	if i < 0 || i >= len(a.pages) {
		return nil
	}
	return a.pages[i]
}

// FocPage returns the index of the focused page.
func (a *App) FocPage() int {
	return a.focPage
}

// AddPage opens a page below the page bar and focuses it. It returns the
// new page's index.
func (a *App) AddPage(kind PageKind, name string) (int, error) {
	a.log.Info("adding %s page %q", kind, name)

	w, h := a.plane.Dim()
	pg, err := newPage(a.prefs, a.plane, kind, name, 0, 1, w, h-1)
	if err != nil {
		return 0, err
	}
	a.pages = append(a.pages, pg)
	a.bar.add(name)
	a.SetFocPage(len(a.pages) - 1)

	if err := a.keepOnTop(); err != nil {
		return 0, err
	}
	return len(a.pages) - 1, nil
}

// AddPost appends a post to page i.
func (a *App) AddPost(i int, data PostData) error {
	pg := a.Page(i)
	if pg == nil {
		return fmt.Errorf("%w: %d", ErrNoSuchPage, i)
	}
	return pg.AddPost(a.prefs, data)
}

// SetFocPage focuses page i. Out-of-range indexes are logged and ignored.
func (a *App) SetFocPage(i int) {
	if i < 0 || i >= len(a.pages) {
		a.log.Warn("page %d out of range [0, %d)", i, len(a.pages))
		return
	}
	a.focPage = i
	a.bar.SetCurrent(i)
}

// SwitchNextPage focuses the next page, wrapping to the first.
func (a *App) SwitchNextPage() {
	if len(a.pages) == 0 {
		return
	}
	a.SetFocPage((a.focPage + 1) % len(a.pages))
}

// SwitchPrevPage focuses the previous page, wrapping to the last.
func (a *App) SwitchPrevPage() {
	if len(a.pages) == 0 {
		return
	}
	a.SetFocPage((a.focPage + len(a.pages) - 1) % len(a.pages))
}

// ScrollUp scrolls the focused page up.
func (a *App) ScrollUp() {
	if len(a.pages) == 0 {
		return
	}
	if err := a.pages[a.focPage].ScrollUp(); err != nil {
		a.log.WithError(err).Info("scroll up")
	}
}

// ScrollDown scrolls the focused page down.
func (a *App) ScrollDown() {
	if len(a.pages) == 0 {
		return
	}
	if err := a.pages[a.focPage].ScrollDown(); err != nil {
		a.log.WithError(err).Info("scroll down")
	}
}

// EnterCmd starts a command line and renders.
func (a *App) EnterCmd() error {
	if err := a.palette.Enter(); err != nil {
		return err
	}
	return a.Render()
}

// ExitCmd abandons the command line and renders.
func (a *App) ExitCmd() error {
	if err := a.palette.Clear(); err != nil {
		return err
	}
	return a.Render()
}

// InputCmdPlt offers a keystroke to the command line and renders.
func (a *App) InputCmdPlt(ev key.Event) (PaletteResult, error) {
	res, err := a.palette.Input(ev)
	if err != nil {
		return PaletteQuit, err
	}
	if err := a.Render(); err != nil {
		return res, err
	}
	return res, nil
}

// ExecCmd runs the command line, clearing it first.
func (a *App) ExecCmd() (command.Result, error) {
	line, err := a.palette.Contents()
	if err != nil {
		return command.ResultNone, err
	}
	line = strings.TrimPrefix(line, string(CommandPrefix))

	if err := a.palette.Clear(); err != nil {
		return command.ResultNone, err
	}
	if err := a.Render(); err != nil {
		return command.ResultNone, err
	}
	return a.cmds.Exec(a, line)
}

// Render draws every widget and flushes the terminal. After Render only
// the focused page is visible.
func (a *App) Render() error {
	if a.closed {
		return backend.ErrStopped
	}
	if err := a.bar.Draw(a.prefs); err != nil {
		return fmt.Errorf("drawing page bar: %w", err)
	}

	for i, pg := range a.pages {
		if err := pg.Draw(a.prefs); err != nil {
			a.log.WithError(err).Error("drawing page %d", i)
		}
		if err := pg.SetVisibility(false); err != nil {
			return err
		}
	}
	if len(a.pages) > 0 {
		if err := a.pages[a.focPage].SetVisibility(true); err != nil {
			return err
		}
	}
	if err := a.keepOnTop(); err != nil {
		return err
	}

	return a.handle.With(func(t *backend.Terminal) error {
		return t.Render()
	})
}

func (a *App) keepOnTop() error {
	if err := a.bar.Plane().MoveTop(); err != nil {
		return err
	}
	return a.palette.Plane().MoveTop()
}

// Close tears the app down: the palette reader, then the widget tree,
// then the terminal. Failures are logged. Close is idempotent.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true

	a.palette.DestroyReader()
	if err := a.plane.Destroy(); err != nil {
		a.log.WithError(err).Error("destroying app plane")
	}
	if err := a.handle.Stop(); err != nil {
		a.log.WithError(err).Error("stopping terminal")
	}
}
