package tui

import (
	"fmt"

	"github.com/dshills/ravana/internal/renderer/plane"
)

// PageSlotWidth is the number of columns each page takes in the bar.
const PageSlotWidth = 7

// pageLabelRunes is how much of a page name the bar shows.
const pageLabelRunes = 4

// PageBar lists the open pages on a single row, marking the focused one.
type PageBar struct {
	plane   *plane.Plane
	names   []string
	current int
}

func newPageBar(prefs *Prefs, parent *plane.Plane, x, y, w int) (*PageBar, error) {
	p, err := parent.NewChild(x, y, w, 1)
	if err != nil {
		return nil, fmt.Errorf("page bar plane: %w", err)
	}
	p.SetBase(' ', prefs.Theme.PageBar)
	p.SetChannels(prefs.Theme.PageBar)
	return &PageBar{plane: p}, nil
}

// Plane returns the bar's plane.
func (b *PageBar) Plane() *plane.Plane {
	return b.plane
}

// Current returns the index of the focused slot.
func (b *PageBar) Current() int {
	return b.current
}

// SetCurrent marks slot i as focused.
func (b *PageBar) SetCurrent(i int) {
	b.current = i
}

func (b *PageBar) add(name string) {
	b.names = append(b.names, name)
}

// Label returns the text of slot i.
func (b *PageBar) Label(i int) string {
	name := []rune(b.names[i])
	if len(name) > pageLabelRunes {
		name = name[:pageLabelRunes]
	}
	return fmt.Sprintf("%d:%s", i, string(name))
}

// Draw repaints the bar. Slots that would not fit are dropped.
func (b *PageBar) Draw(prefs *Prefs) error {
	b.plane.Erase()
	w, _ := b.plane.Dim()

	for i := range b.names {
		x := i * PageSlotWidth
		if x+PageSlotWidth > w {
			break
		}
		if _, err := b.plane.PutStr(0, x, b.Label(i)); err != nil {
			return err
		}
		if i == b.current {
			if err := b.plane.Stain(0, x, 1, PageSlotWidth, prefs.Theme.PageBarCurrent()); err != nil {
				return err
			}
		}
	}
	return nil
}
