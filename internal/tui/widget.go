package tui

import (
	"github.com/dshills/ravana/internal/renderer/plane"
)

// Widget is a drawable that owns a plane.
//
// Constructors take the parent plane and the widget's geometry within it
// and create the widget's plane as a child. Child widgets are torn down
// with the parent plane.
type Widget interface {
	// Draw repaints the widget into its plane. It does not flush.
	Draw(prefs *Prefs) error

	// Plane returns the plane the widget draws into.
	Plane() *plane.Plane
}

// Group translates several widgets as one.
type Group []Widget

// MoveRel translates every widget of the group by (dx, dy).
func (g Group) MoveRel(dx, dy int) error {
	for _, w := range g {
		if err := w.Plane().MoveRel(dx, dy); err != nil {
			return err
		}
	}
	return nil
}
