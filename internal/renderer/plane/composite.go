package plane

// Sink receives composed cells.
type Sink interface {
	// Size returns the sink dimensions.
	Size() (width, height int)
	// SetCell paints one cell at absolute column x, row y.
	SetCell(x, y int, c Cell)
}

// Composite paints p and its subtree onto the sink.
//
// Parents are painted before children and children bottom to top, so the
// topmost plane wins each cell. Unwritten cells are transparent unless
// the plane has a base cell. Cells outside the sink are dropped.
func Composite(p *Plane, sink Sink) {
	if p == nil || p.destroyed {
		return
	}
	sw, sh := sink.Size()
	ox, oy := 0, 0
	if p.parent != nil {
		ox, oy = p.parent.AbsPos()
	}
	composite(p, sink, ox, oy, sw, sh)
}

func composite(p *Plane, sink Sink, ox, oy, sw, sh int) {
	ax, ay := ox+p.x, oy+p.y

	for row := 0; row < p.h; row++ {
		sy := ay + row
		if sy < 0 || sy >= sh {
			continue
		}
		for col := 0; col < p.w; col++ {
			sx := ax + col
			if sx < 0 || sx >= sw {
				continue
			}
			c := p.cells[row*p.w+col]
			switch {
			case c.cont:
				continue
			case c.IsEmpty():
				if !p.hasBase {
					continue
				}
				c = p.base
			case c.Width == 2 && sx+1 >= sw:
				// Half a wide glyph would be cut at the sink edge.
				c = Cell{Rune: ' ', Width: 1, Channels: c.Channels, Style: c.Style}
			}
			sink.SetCell(sx, sy, c)
		}
	}

	for _, child := range p.children {
		composite(child, sink, ax, ay, sw, sh)
	}
}
