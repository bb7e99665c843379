package plane

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/ravana/internal/input/key"
)

// ReaderOptions configures a Reader.
type ReaderOptions uint8

const (
	// ReaderCursor highlights the cursor cell.
	ReaderCursor ReaderOptions = 1 << iota
	// ReaderHorScroll scrolls the line horizontally to keep the cursor
	// visible. Without it, input past the right edge is refused.
	ReaderHorScroll
)

// Reader is a single-line editor drawn on the first row of a host plane.
type Reader struct {
	plane  *Plane
	opts   ReaderOptions
	line   []rune
	cursor int
	offset int

	destroyed bool
}

// NewReader attaches a reader to p. A plane hosts at most one reader.
func NewReader(p *Plane, opts ReaderOptions) (*Reader, error) {
	if p.destroyed {
		return nil, ErrDestroyed
	}
	if p.reader != nil && !p.reader.destroyed {
		return nil, ErrReaderAttached
	}
	r := &Reader{plane: p, opts: opts}
	p.reader = r
	r.draw()
	return r, nil
}

// Plane returns the host plane.
func (r *Reader) Plane() *Plane {
	return r.plane
}

// Offer feeds one keystroke to the reader and reports whether it was
// consumed. Printable runes insert at the cursor; Left, Right, Home and
// End move it; Backspace and Del delete around it.
func (r *Reader) Offer(ev key.Event) bool {
	if r.destroyed || ev.Release {
		return false
	}

	switch {
	case ev.IsPrintable():
		if r.opts&ReaderHorScroll == 0 && r.width(r.line)+runewidth.RuneWidth(ev.Rune) > r.plane.w {
			return false
		}
		r.line = append(r.line, 0)
		copy(r.line[r.cursor+1:], r.line[r.cursor:])
		r.line[r.cursor] = ev.Rune
		r.cursor++
	case ev.Is(key.KeyLeft):
		if r.cursor > 0 {
			r.cursor--
		}
	case ev.Is(key.KeyRight):
		if r.cursor < len(r.line) {
			r.cursor++
		}
	case ev.Is(key.KeyHome):
		r.cursor = 0
	case ev.Is(key.KeyEnd):
		r.cursor = len(r.line)
	case ev.Is(key.KeyBackspace):
		if r.cursor > 0 {
			r.line = append(r.line[:r.cursor-1], r.line[r.cursor:]...)
			r.cursor--
		}
	case ev.Is(key.KeyDel):
		if r.cursor < len(r.line) {
			r.line = append(r.line[:r.cursor], r.line[r.cursor+1:]...)
		}
	default:
		return false
	}

	r.draw()
	return true
}

// Contents returns the current line.
func (r *Reader) Contents() (string, error) {
	if r.destroyed {
		return "", ErrDestroyed
	}
	return string(r.line), nil
}

// Cursor returns the cursor position as an index into the line.
func (r *Reader) Cursor() int {
	return r.cursor
}

// Clear empties the line and repaints the host row.
func (r *Reader) Clear() error {
	if r.destroyed {
		return ErrDestroyed
	}
	r.line = r.line[:0]
	r.cursor = 0
	r.offset = 0
	r.draw()
	return nil
}

// Destroy releases the reader. The host plane may be destroyed afterwards.
func (r *Reader) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	if r.plane.reader == r {
		r.plane.reader = nil
	}
}

// Destroyed reports whether the reader has been released.
func (r *Reader) Destroyed() bool {
	return r.destroyed
}

func (r *Reader) width(runes []rune) int {
	w := 0
	for _, c := range runes {
		w += runewidth.RuneWidth(c)
	}
	return w
}

// draw repaints the visible window of the line.
func (r *Reader) draw() {
	p := r.plane
	if p.destroyed {
		return
	}

	if r.cursor < r.offset {
		r.offset = r.cursor
	}
	// Leave room for the cursor cell past the last rune.
	for r.offset < r.cursor && r.width(r.line[r.offset:r.cursor])+1 > p.w {
		r.offset++
	}

	p.Erase()
	_, _ = p.PutStr(0, 0, string(r.line[r.offset:]))

	// An empty reader shows no cursor so a cleared row stays blank.
	if r.opts&ReaderCursor != 0 && len(r.line) > 0 {
		col := r.width(r.line[r.offset:r.cursor])
		if col < p.w {
			cell := p.cells[col]
			if cell.IsEmpty() {
				_ = p.Stain(0, col, 1, 1, p.channels)
			}
			_ = p.Format(0, col, 1, 1, StyleReverse)
		}
	}
}
