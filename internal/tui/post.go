package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/ravana/internal/renderer/plane"
)

// Header columns.
const (
	upvotesWidth  = 7
	usernameCol   = upvotesWidth + 1
	usernameWidth = 16
	subredditCol  = usernameCol + usernameWidth + 1
)

// PostData is the content of one listing entry.
type PostData struct {
	Upvotes   uint32
	Heading   string
	Body      string
	Content   string
	Username  string
	Subreddit string
	Comments  uint32
	Upvoted   bool
}

// Post draws one listing entry: a header row, a bold heading row and a
// wrapped body.
type Post struct {
	data PostData

	plane   *plane.Plane
	header  *plane.Plane
	heading *plane.Plane
	body    *plane.Plane
}

// newPost creates a post of w by h cells at (x, y) in parent. The body
// takes every row after the header and heading.
func newPost(prefs *Prefs, parent *plane.Plane, x, y, w, h int, data PostData) (*Post, error) {
	p, err := parent.NewChild(x, y, w, h)
	if err != nil {
		return nil, fmt.Errorf("post plane: %w", err)
	}

	post := &Post{data: data, plane: p}
	parts := []struct {
		dst *(*plane.Plane)
		row int
		h   int
		ch  plane.Channels
	}{
		{&post.header, 0, 1, prefs.Theme.PostHeader},
		{&post.heading, 1, 1, prefs.Theme.PostHeading},
		{&post.body, 2, h - 2, prefs.Theme.PostBody},
	}
	for _, part := range parts {
		sub, err := p.NewChild(0, part.row, w, part.h)
		if err != nil {
			_ = p.Destroy()
			return nil, fmt.Errorf("post sub-plane: %w", err)
		}
		sub.SetBase(' ', part.ch)
		sub.SetChannels(part.ch)
		*part.dst = sub
	}
	post.heading.SetStyles(plane.StyleBold)

	return post, nil
}

// Plane returns the post's plane.
func (p *Post) Plane() *plane.Plane {
	return p.plane
}

// Data returns the post content.
func (p *Post) Data() PostData {
	return p.data
}

// Draw repaints the post.
func (p *Post) Draw(prefs *Prefs) error {
	if err := p.drawHeader(prefs); err != nil {
		return fmt.Errorf("drawing header: %w", err)
	}
	if err := p.drawHeading(); err != nil {
		return fmt.Errorf("drawing heading: %w", err)
	}
	if err := p.drawBody(); err != nil {
		return fmt.Errorf("drawing body: %w", err)
	}
	return nil
}

func (p *Post) drawHeader(prefs *Prefs) error {
	hdr := p.header
	hdr.Erase()
	w, _ := hdr.Dim()

	if _, err := hdr.PutStrStained(0, 0, compactCount(p.data.Upvotes, upvotesWidth)); err != nil {
		return err
	}
	if _, err := hdr.PutStr(0, usernameCol, runewidth.Truncate(p.data.Username, usernameWidth, "")); err != nil {
		return err
	}
	if p.data.Subreddit != "" {
		if _, err := hdr.PutStr(0, subredditCol, "r/"+p.data.Subreddit); err != nil {
			return err
		}
	}

	comments := strconv.FormatUint(uint64(p.data.Comments), 10)
	if _, err := hdr.PutStr(0, max(w-runewidth.StringWidth(comments), 0), comments); err != nil {
		return err
	}

	if p.data.Upvoted {
		return hdr.Stain(0, 0, 1, upvotesWidth, prefs.Theme.PostUpvoted)
	}
	return nil
}

// compactCount formats n in at most width columns, switching to k, M or
// G suffixes with one decimal when the plain number is wider.
func compactCount(n uint32, width int) string {
	s := strconv.FormatUint(uint64(n), 10)
	if len(s) <= width {
		return s
	}
	v, unit := float64(n), ""
	for _, u := range []string{"k", "M", "G"} {
		if v < 1000 {
			break
		}
		v, unit = v/1000, u
	}
	return runewidth.Truncate(strconv.FormatFloat(v, 'f', 1, 64)+unit, width, "")
}

func (p *Post) drawHeading() error {
	p.heading.Erase()
	_, err := p.heading.PutStr(0, 0, p.data.Heading)
	return err
}

func (p *Post) drawBody() error {
	p.body.Erase()
	w, h := p.body.Dim()
	for row, line := range wrap(p.data.Body, w, h) {
		if _, err := p.body.PutStr(row, 0, line); err != nil {
			return err
		}
	}
	return nil
}

// wrap breaks text into at most rows lines of at most width columns,
// splitting on whitespace. Words wider than a line are broken. When text
// remains after the last row, that row ends in an ellipsis.
func wrap(text string, width, rows int) []string {
	if width <= 0 || rows <= 0 {
		return nil
	}

	var lines []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if curW > 0 && curW+1+ww > width {
			flush()
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		// Only a word starting a line can be wider than the space left.
		for ww > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				word, ww = "", 0
				break
			}
			cur.WriteString(head)
			flush()
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		cur.WriteString(word)
		curW += ww
	}
	if curW > 0 {
		flush()
	}

	if len(lines) > rows {
		last := lines[rows-1] + " " + lines[rows]
		lines = lines[:rows]
		lines[rows-1] = runewidth.Truncate(last, width, "…")
	}
	return lines
}
