package tui

import (
	"errors"
	"fmt"

	"github.com/dshills/ravana/internal/renderer/plane"
)

// PageKind identifies the variant of a page.
type PageKind uint8

const (
	// KindSubredditListing is a listing of posts.
	KindSubredditListing PageKind = iota
)

// String returns the kind name.
func (k PageKind) String() string {
	switch k {
	case KindSubredditListing:
		return "subreddit_listing"
	default:
		return fmt.Sprintf("PageKind(%d)", k)
	}
}

// ErrUnknownPageKind indicates a page kind with no implementation.
var ErrUnknownPageKind = errors.New("unknown page kind")

// Page is one screen of content, selectable from the page bar.
//
// A hidden page stays in the plane tree, translated one screen width to
// the right.
type Page struct {
	Kind PageKind
	Name string

	listing *ListingPage
	visible bool
}

// newPage creates a visible page of the given kind.
func newPage(prefs *Prefs, parent *plane.Plane, kind PageKind, name string, x, y, w, h int) (*Page, error) {
	pg := &Page{Kind: kind, Name: name, visible: true}
	switch kind {
	case KindSubredditListing:
		l, err := newListingPage(prefs, parent, x, y, w, h)
		if err != nil {
			return nil, err
		}
		pg.listing = l
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPageKind, kind)
	}
	return pg, nil
}

// Plane returns the page's plane.
func (pg *Page) Plane() *plane.Plane {
	return pg.listing.Plane()
}

// Draw repaints the page.
func (pg *Page) Draw(prefs *Prefs) error {
	return pg.listing.Draw(prefs)
}

// AddPost appends a post to a listing page.
func (pg *Page) AddPost(prefs *Prefs, data PostData) error {
	return pg.listing.AddPost(prefs, data)
}

// ScrollUp scrolls the page content up.
func (pg *Page) ScrollUp() error {
	return pg.listing.ScrollUp()
}

// ScrollDown scrolls the page content down.
func (pg *Page) ScrollDown() error {
	return pg.listing.ScrollDown()
}

// Scrolled returns the number of rows scrolled past.
func (pg *Page) Scrolled() int {
	return pg.listing.Scrolled()
}

// ContentLen returns the height of the page content.
func (pg *Page) ContentLen() int {
	return pg.listing.ContentLen()
}

// Posts returns the number of posts on the page.
func (pg *Page) Posts() int {
	return pg.listing.Posts()
}

// Visible reports whether the page is on screen.
func (pg *Page) Visible() bool {
	return pg.visible
}

// SetVisibility shows or hides the page. Repeated calls with the same
// value do nothing.
func (pg *Page) SetVisibility(visible bool) error {
	if pg.visible == visible {
		return nil
	}
	w, _ := pg.Plane().Dim()
	dx := w
	if visible {
		dx = -w
	}
	if err := pg.Plane().MoveRel(dx, 0); err != nil {
		return err
	}
	pg.visible = visible
	return nil
}
