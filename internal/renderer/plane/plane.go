package plane

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Plane is a rectangular cell buffer positioned relative to its parent.
//
// Planes form a tree. Moving a plane moves its whole subtree, and
// destroying a plane destroys its subtree. Children are kept in z-order,
// bottom first. Planes are not clipped by their parent; only the sink
// bounds clip during composition.
type Plane struct {
	parent   *Plane
	children []*Plane

	x, y int
	w, h int

	cells []Cell

	base    Cell
	hasBase bool

	channels Channels
	style    Style

	reader    *Reader
	destroyed bool
}

// New creates a root plane.
func New(w, h int) (*Plane, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDims, w, h)
	}
	return &Plane{
		w:        w,
		h:        h,
		cells:    make([]Cell, w*h),
		channels: DefaultChannels,
	}, nil
}

// NewChild creates a plane at (x, y) relative to p, on top of its siblings.
func (p *Plane) NewChild(x, y, w, h int) (*Plane, error) {
	if p.destroyed {
		return nil, ErrDestroyed
	}
	child, err := New(w, h)
	if err != nil {
		return nil, err
	}
	child.parent = p
	child.x, child.y = x, y
	p.children = append(p.children, child)
	return child, nil
}

// Parent returns the parent plane, or nil for a root.
func (p *Plane) Parent() *Plane {
	return p.parent
}

// Children returns the child planes in z-order, bottom first.
func (p *Plane) Children() []*Plane {
	out := make([]*Plane, len(p.children))
	copy(out, p.children)
	return out
}

// Dim returns the width and height of the plane.
func (p *Plane) Dim() (w, h int) {
	return p.w, p.h
}

// Pos returns the position of the plane relative to its parent.
func (p *Plane) Pos() (x, y int) {
	return p.x, p.y
}

// AbsPos returns the position of the plane relative to its root.
func (p *Plane) AbsPos() (x, y int) {
	for n := p; n != nil; n = n.parent {
		x += n.x
		y += n.y
	}
	return x, y
}

// Destroyed reports whether the plane has been destroyed.
func (p *Plane) Destroyed() bool {
	return p.destroyed
}

// Move places the plane at (x, y) relative to its parent.
func (p *Plane) Move(x, y int) error {
	if p.destroyed {
		return ErrDestroyed
	}
	p.x, p.y = x, y
	return nil
}

// MoveRel translates the plane by (dx, dy).
func (p *Plane) MoveRel(dx, dy int) error {
	if p.destroyed {
		return ErrDestroyed
	}
	p.x += dx
	p.y += dy
	return nil
}

// MoveTop raises the plane above all of its siblings.
func (p *Plane) MoveTop() error {
	if p.destroyed {
		return ErrDestroyed
	}
	if p.parent == nil {
		return ErrRootPlane
	}
	siblings := p.parent.children
	for i, c := range siblings {
		if c == p {
			copy(siblings[i:], siblings[i+1:])
			siblings[len(siblings)-1] = p
			break
		}
	}
	return nil
}

// SetChannels sets the colors used by subsequent writes.
func (p *Plane) SetChannels(ch Channels) {
	p.channels = ch
}

// Channels returns the colors used by writes.
func (p *Plane) Channels() Channels {
	return p.channels
}

// SetStyles sets the attributes used by subsequent writes.
func (p *Plane) SetStyles(s Style) {
	p.style = s
}

// SetBase sets the cell shown wherever nothing has been written.
// A zero rune is drawn as a space.
func (p *Plane) SetBase(r rune, ch Channels) {
	if r == 0 {
		r = ' '
	}
	p.base = Cell{Rune: r, Width: 1, Channels: ch}
	p.hasBase = true
}

// Base returns the base cell and whether one is set.
func (p *Plane) Base() (Cell, bool) {
	return p.base, p.hasBase
}

// At returns the cell at row y, column x.
func (p *Plane) At(y, x int) (Cell, bool) {
	if !p.inBounds(y, x) {
		return Cell{}, false
	}
	return p.cells[y*p.w+x], true
}

// PutStr writes s at row y starting at column x using the current
// channels and style. Text past the right edge is dropped. It returns the
// number of columns written.
func (p *Plane) PutStr(y, x int, s string) (int, error) {
	return p.put(y, x, s, false)
}

// PutStrStained writes s like PutStr but keeps the colors already present
// in each cell.
func (p *Plane) PutStrStained(y, x int, s string) (int, error) {
	return p.put(y, x, s, true)
}

func (p *Plane) put(y, x int, s string, stained bool) (int, error) {
	if p.destroyed {
		return 0, ErrDestroyed
	}
	if y < 0 || y >= p.h || x < 0 {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, y, x, p.w, p.h)
	}

	col := x
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > p.w {
			break
		}
		idx := y*p.w + col
		ch := p.channels
		if stained {
			ch = p.cellChannels(idx)
		}
		p.cells[idx] = Cell{Rune: r, Width: rw, Channels: ch, Style: p.style}
		if rw == 2 {
			p.cells[idx+1] = Cell{Channels: ch, Style: p.style, cont: true}
		}
		col += rw
	}
	return col - x, nil
}

// cellChannels returns the colors a cell currently shows.
func (p *Plane) cellChannels(idx int) Channels {
	c := p.cells[idx]
	if c.IsEmpty() && p.hasBase {
		return p.base.Channels
	}
	return c.Channels
}

// Stain recolors the region of h rows by w columns at (y, x). Unwritten
// cells take the base glyph so the new colors show. The region is clipped
// to the plane.
func (p *Plane) Stain(y, x, h, w int, ch Channels) error {
	if p.destroyed {
		return ErrDestroyed
	}
	p.region(y, x, h, w, func(c *Cell) {
		if c.IsEmpty() {
			c.Rune = ' '
			c.Width = 1
			if p.hasBase {
				c.Rune = p.base.Rune
			}
		}
		c.Channels = ch
	})
	return nil
}

// Format sets the attributes of the region of h rows by w columns at
// (y, x). The region is clipped to the plane.
func (p *Plane) Format(y, x, h, w int, s Style) error {
	if p.destroyed {
		return ErrDestroyed
	}
	p.region(y, x, h, w, func(c *Cell) {
		c.Style = s
	})
	return nil
}

func (p *Plane) region(y, x, h, w int, fn func(*Cell)) {
	for row := max(y, 0); row < y+h && row < p.h; row++ {
		for col := max(x, 0); col < x+w && col < p.w; col++ {
			fn(&p.cells[row*p.w+col])
		}
	}
}

// Erase clears every cell of the plane.
func (p *Plane) Erase() {
	clear(p.cells)
}

// Destroy removes the plane and its subtree from the tree.
// It fails if any plane in the subtree still hosts a reader.
func (p *Plane) Destroy() error {
	if p.destroyed {
		return ErrDestroyed
	}
	if p.hostsReader() {
		return ErrReaderAttached
	}
	if p.parent != nil {
		siblings := p.parent.children
		for i, c := range siblings {
			if c == p {
				p.parent.children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		p.parent = nil
	}
	p.destroyTree()
	return nil
}

func (p *Plane) hostsReader() bool {
	if p.reader != nil && !p.reader.destroyed {
		return true
	}
	for _, c := range p.children {
		if c.hostsReader() {
			return true
		}
	}
	return false
}

func (p *Plane) destroyTree() {
	for _, c := range p.children {
		c.destroyTree()
	}
	p.children = nil
	p.cells = nil
	p.destroyed = true
}

func (p *Plane) inBounds(y, x int) bool {
	return !p.destroyed && y >= 0 && y < p.h && x >= 0 && x < p.w
}
