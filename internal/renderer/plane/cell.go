package plane

import "fmt"

// Color is a 24-bit RGB color or the terminal default.
type Color struct {
	R, G, B uint8
	// Default indicates the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// RGB creates a true color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Packed returns the color as 0xRRGGBB. The default color packs to 0.
func (c Color) Packed() uint32 {
	if c.Default {
		return 0
	}
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// String returns the color as "#rrggbb" or "default".
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Channels is a foreground and background color pair.
type Channels struct {
	Fg Color
	Bg Color
}

// DefaultChannels uses the terminal default for both colors.
var DefaultChannels = Channels{Fg: ColorDefault, Bg: ColorDefault}

// NewChannels creates a channel pair.
func NewChannels(fg, bg Color) Channels {
	return Channels{Fg: fg, Bg: bg}
}

// Style is a set of text attributes.
type Style uint8

// Text attribute flags.
const (
	StyleNone Style = 0
	StyleBold Style = 1 << iota
	StyleItalic
	StyleUnderline
	StyleReverse
)

// Has returns true if the style contains the given attribute.
func (s Style) Has(attr Style) bool {
	return s&attr != 0
}

// Cell is one glyph position of a plane.
type Cell struct {
	// Rune is the glyph. 0 marks an unwritten cell.
	Rune rune

	// Width is the display width of the glyph (1 or 2).
	Width int

	Channels Channels
	Style    Style

	cont bool
}

// IsEmpty returns true if nothing has been written to the cell.
func (c Cell) IsEmpty() bool {
	return c.Rune == 0 && !c.cont
}

// IsContinuation returns true for the trailing half of a wide glyph.
func (c Cell) IsContinuation() bool {
	return c.cont
}
