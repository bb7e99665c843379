// Package backend owns the terminal: screen output, the input event
// stream and the guard that serializes access to both.
package backend

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ravana/internal/input/key"
	"github.com/dshills/ravana/internal/renderer/plane"
)

// Errors returned by the terminal backend.
var (
	// ErrStopped indicates use of a terminal after Stop.
	ErrStopped = errors.New("terminal stopped")

	// ErrInputClosed indicates the terminal input stream has ended.
	ErrInputClosed = errors.New("terminal input closed")
)

// IsFatal reports whether err leaves the terminal unusable.
func IsFatal(err error) bool {
	return errors.Is(err, ErrStopped) || errors.Is(err, ErrInputClosed)
}

// Terminal is a started terminal with a standard plane spanning it.
//
// Terminal methods are not synchronized; share a Terminal through a
// Handle.
type Terminal struct {
	screen  tcell.Screen
	std     *plane.Plane
	input   *InputFD
	stopped bool
}

// NewTerminal starts the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return start(screen)
}

// NewSimulation starts an in-memory terminal of the given size.
func NewSimulation(w, h int) (*Terminal, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing simulation screen: %w", err)
	}
	screen.SetSize(w, h)
	return start(screen)
}

func start(screen tcell.Screen) (*Terminal, error) {
	w, h := screen.Size()
	std, err := plane.New(w, h)
	if err != nil {
		screen.Fini()
		return nil, fmt.Errorf("creating standard plane: %w", err)
	}

	t := &Terminal{
		screen: screen,
		std:    std,
		input:  newInputFD(),
	}
	go t.input.pump(screen)
	return t, nil
}

// Dim returns the terminal width and height.
func (t *Terminal) Dim() (w, h int) {
	return t.std.Dim()
}

// Stdplane returns the root plane spanning the terminal.
func (t *Terminal) Stdplane() *plane.Plane {
	return t.std
}

// MiceEnable turns on mouse event reporting.
func (t *Terminal) MiceEnable() error {
	if t.stopped {
		return ErrStopped
	}
	t.screen.EnableMouse()
	return nil
}

// InputFD returns the readiness source for terminal input. It may be
// polled without holding the Handle.
func (t *Terminal) InputFD() *InputFD {
	return t.input
}

// GetNBlock returns the next pending keystroke without blocking.
// Non-key events are consumed and skipped; false means nothing is pending.
func (t *Terminal) GetNBlock() (key.Event, bool, error) {
	if t.stopped {
		return key.Event{}, false, ErrStopped
	}
	for {
		ev, ok := t.input.pop()
		if !ok {
			if t.input.closed() {
				return key.Event{}, false, ErrInputClosed
			}
			return key.Event{}, false, nil
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			if kev, ok := convertKeyEvent(e); ok {
				return kev, true, nil
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Render composes the standard plane tree onto the screen and flushes it.
func (t *Terminal) Render() error {
	if t.stopped {
		return ErrStopped
	}
	t.screen.Clear()
	plane.Composite(t.std, screenSink{t.screen})
	t.screen.Show()
	return nil
}

// CellAt returns the composed cell at column x, row y of the screen as of
// the last Render.
func (t *Terminal) CellAt(x, y int) plane.Cell {
	mainc, _, style, width := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	fg, bg, attrs := style.Decompose()
	c := plane.Cell{
		Rune:     mainc,
		Width:    width,
		Channels: plane.NewChannels(convertTcellColor(fg), convertTcellColor(bg)),
	}
	if attrs&tcell.AttrBold != 0 {
		c.Style |= plane.StyleBold
	}
	if attrs&tcell.AttrItalic != 0 {
		c.Style |= plane.StyleItalic
	}
	if attrs&tcell.AttrUnderline != 0 {
		c.Style |= plane.StyleUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		c.Style |= plane.StyleReverse
	}
	return c
}

// InjectKey posts a synthetic key event to the input stream. It waits
// while the screen's event queue is full and does nothing once input
// has closed.
func (t *Terminal) InjectKey(k tcell.Key, r rune, mod tcell.ModMask) {
	if t.input.closed() {
		return
	}
	t.screen.PostEventWait(tcell.NewEventKey(k, r, mod))
}

// InjectString posts one rune event per character of s.
func (t *Terminal) InjectString(s string) {
	for _, r := range s {
		t.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}

// Stop restores the terminal. Further use returns ErrStopped.
func (t *Terminal) Stop() error {
	if t.stopped {
		return ErrStopped
	}
	t.stopped = true
	t.screen.Fini()
	return nil
}

// screenSink paints composed cells onto a tcell screen.
type screenSink struct {
	screen tcell.Screen
}

func (s screenSink) Size() (int, int) {
	return s.screen.Size()
}

func (s screenSink) SetCell(x, y int, c plane.Cell) {
	s.screen.SetContent(x, y, c.Rune, nil, convertStyle(c))
}

// convertStyle converts cell colors and attributes to a tcell style.
func convertStyle(c plane.Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(c.Channels.Fg)).
		Background(convertColor(c.Channels.Bg))

	if c.Style.Has(plane.StyleBold) {
		style = style.Bold(true)
	}
	if c.Style.Has(plane.StyleItalic) {
		style = style.Italic(true)
	}
	if c.Style.Has(plane.StyleUnderline) {
		style = style.Underline(true)
	}
	if c.Style.Has(plane.StyleReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c plane.Color) tcell.Color {
	if c.Default {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertTcellColor converts tcell.Color back to a plane color.
func convertTcellColor(tc tcell.Color) plane.Color {
	if tc == tcell.ColorDefault {
		return plane.ColorDefault
	}
	r, g, b := tc.RGB()
	return plane.RGB(uint8(r), uint8(g), uint8(b))
}
