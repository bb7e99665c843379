package tui

import (
	"errors"
	"fmt"

	"github.com/dshills/ravana/internal/renderer/plane"
)

// PostRows is the height of one post in a listing: header, heading and
// three body rows.
const PostRows = 5

// ScrollStep is the number of rows one scroll moves.
const ScrollStep = 2

// Scroll errors.
var (
	ErrScrollTop    = errors.New("already at the top")
	ErrScrollBottom = errors.New("already at the bottom")
)

// ListingPage is a vertical list of posts.
type ListingPage struct {
	plane *plane.Plane
	posts []*Post

	scrolled   int
	contentLen int
}

// newListingPage creates an empty listing of w by h cells at (x, y).
func newListingPage(prefs *Prefs, parent *plane.Plane, x, y, w, h int) (*ListingPage, error) {
	p, err := parent.NewChild(x, y, w, h)
	if err != nil {
		return nil, fmt.Errorf("listing plane: %w", err)
	}
	p.SetBase(' ', prefs.Theme.Highlight)
	p.SetChannels(prefs.Theme.Highlight)
	return &ListingPage{plane: p}, nil
}

// Plane returns the listing's plane.
func (l *ListingPage) Plane() *plane.Plane {
	return l.plane
}

// AddPost appends a post below the existing ones.
func (l *ListingPage) AddPost(prefs *Prefs, data PostData) error {
	w, _ := l.plane.Dim()
	y := l.contentLen - l.scrolled
	post, err := newPost(prefs, l.plane, 0, y, w, PostRows, data)
	if err != nil {
		return err
	}
	l.posts = append(l.posts, post)
	l.contentLen += PostRows
	return nil
}

// Posts returns the number of posts.
func (l *ListingPage) Posts() int {
	return len(l.posts)
}

// Draw repaints every post.
func (l *ListingPage) Draw(prefs *Prefs) error {
	for i, post := range l.posts {
		if err := post.Draw(prefs); err != nil {
			return fmt.Errorf("post %d: %w", i, err)
		}
	}
	return nil
}

// ScrollDown moves the posts up by ScrollStep rows.
func (l *ListingPage) ScrollDown() error {
	_, h := l.plane.Dim()
	if l.contentLen == 0 || l.scrolled+h >= l.contentLen-1 {
		return ErrScrollBottom
	}
	if err := l.group().MoveRel(0, -ScrollStep); err != nil {
		return err
	}
	l.scrolled += ScrollStep
	return nil
}

// ScrollUp moves the posts down by ScrollStep rows.
func (l *ListingPage) ScrollUp() error {
	if l.scrolled == 0 {
		return ErrScrollTop
	}
	if err := l.group().MoveRel(0, ScrollStep); err != nil {
		return err
	}
	l.scrolled -= ScrollStep
	return nil
}

// Scrolled returns the number of rows scrolled past.
func (l *ListingPage) Scrolled() int {
	return l.scrolled
}

// ContentLen returns the height of all posts.
func (l *ListingPage) ContentLen() int {
	return l.contentLen
}

func (l *ListingPage) group() Group {
	g := make(Group, len(l.posts))
	for i, p := range l.posts {
		g[i] = p
	}
	return g
}
