package tui

import (
	"fmt"

	"github.com/dshills/ravana/internal/input/key"
	"github.com/dshills/ravana/internal/renderer/plane"
)

// PaletteResult tells the caller whether to stay in command mode.
type PaletteResult uint8

const (
	// PaletteContinue keeps command mode.
	PaletteContinue PaletteResult = iota
	// PaletteQuit leaves command mode.
	PaletteQuit
)

// String returns the result name.
func (r PaletteResult) String() string {
	if r == PaletteQuit {
		return "quit"
	}
	return "continue"
}

// CommandPrefix starts every palette line.
const CommandPrefix = ':'

// CmdPalette is the one-line command input on the bottom row.
type CmdPalette struct {
	plane  *plane.Plane
	reader *plane.Reader
}

func newCmdPalette(prefs *Prefs, parent *plane.Plane, x, y, w int) (*CmdPalette, error) {
	p, err := parent.NewChild(x, y, w, 1)
	if err != nil {
		return nil, fmt.Errorf("palette plane: %w", err)
	}
	p.SetBase(' ', prefs.Theme.CmdPalette)
	p.SetChannels(prefs.Theme.CmdPalette)

	r, err := plane.NewReader(p, plane.ReaderCursor|plane.ReaderHorScroll)
	if err != nil {
		_ = p.Destroy()
		return nil, fmt.Errorf("palette reader: %w", err)
	}
	return &CmdPalette{plane: p, reader: r}, nil
}

// Plane returns the palette's plane.
func (c *CmdPalette) Plane() *plane.Plane {
	return c.plane
}

// Draw is a no-op; the reader repaints the row as it changes.
func (c *CmdPalette) Draw(*Prefs) error {
	return nil
}

// Enter starts a command line with the prefix.
func (c *CmdPalette) Enter() error {
	if err := c.reader.Clear(); err != nil {
		return err
	}
	c.reader.Offer(key.RuneEvent(CommandPrefix))
	return nil
}

// Input offers one keystroke to the line. It returns PaletteQuit when
// the keystroke is refused or leaves the line empty.
func (c *CmdPalette) Input(ev key.Event) (PaletteResult, error) {
	if !c.reader.Offer(ev) {
		return PaletteQuit, nil
	}
	s, err := c.reader.Contents()
	if err != nil {
		return PaletteQuit, err
	}
	if s == "" {
		return PaletteQuit, nil
	}
	return PaletteContinue, nil
}

// Contents returns the line including the prefix.
func (c *CmdPalette) Contents() (string, error) {
	return c.reader.Contents()
}

// Cursor returns the cursor position in the line.
func (c *CmdPalette) Cursor() int {
	return c.reader.Cursor()
}

// Clear empties the line.
func (c *CmdPalette) Clear() error {
	return c.reader.Clear()
}

// DestroyReader releases the line editor. It must run before the
// palette plane is destroyed.
func (c *CmdPalette) DestroyReader() {
	c.reader.Destroy()
}

// ValidInput reports whether ev is accepted in command mode.
func ValidInput(ev key.Event) bool {
	if ev.Release {
		return false
	}
	return ev.IsPrintable() ||
		ev.Is(key.KeyLeft) ||
		ev.Is(key.KeyRight) ||
		ev.Is(key.KeyEnter) ||
		ev.Is(key.KeyBackspace)
}
