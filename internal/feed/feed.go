// Package feed decodes subreddit listings into post data for the TUI.
//
// A listing is the JSON document the service returns for a subreddit
// page:
//
//	{"kind": "Listing", "data": {"children": [{"kind": "t3", "data": {...}}]}}
//
// Only link entries (kind t3) become posts; anything else in children is
// skipped.
package feed

import (
	"errors"
	"fmt"
	"html"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/ravana/internal/logging"
	"github.com/dshills/ravana/internal/tui"
)

// Feed errors.
var (
	// ErrMalformed indicates the document is not valid JSON.
	ErrMalformed = errors.New("malformed listing")

	// ErrNotListing indicates valid JSON that is not a listing.
	ErrNotListing = errors.New("not a listing")
)

const (
	kindListing = "Listing"
	kindLink    = "t3"
)

// Listing is one page of posts.
type Listing struct {
	// Name labels the page, normally the subreddit.
	Name  string
	Posts []tui.PostData
}

// Parse decodes a listing document. The listing is named after the
// subreddit of its first post.
func Parse(data []byte) (*Listing, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}
	root := gjson.ParseBytes(data)

	if kind := root.Get("kind"); kind.Exists() && kind.String() != kindListing {
		return nil, fmt.Errorf("%w: kind %q", ErrNotListing, kind.String())
	}
	children := root.Get("data.children")
	if !children.IsArray() {
		return nil, fmt.Errorf("%w: no data.children array", ErrNotListing)
	}

	log := logging.Component("feed")
	l := &Listing{}
	children.ForEach(func(_, child gjson.Result) bool {
		if kind := child.Get("kind").String(); kind != kindLink {
			log.Debug("skipping %q entry", kind)
			return true
		}
		l.Posts = append(l.Posts, postData(child.Get("data")))
		return true
	})

	if len(l.Posts) > 0 {
		l.Name = l.Posts[0].Subreddit
	}
	return l, nil
}

// LoadFile reads and decodes a listing file. A listing with no posts is
// named after the file.
func LoadFile(path string) (*Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if l.Name == "" {
		base := filepath.Base(path)
		l.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return l, nil
}

func postData(d gjson.Result) tui.PostData {
	url := d.Get("url").String()
	body := html.UnescapeString(d.Get("selftext").String())
	if body == "" {
		body = url
	}
	return tui.PostData{
		Upvotes:   count(d.Get("ups")),
		Heading:   html.UnescapeString(d.Get("title").String()),
		Body:      body,
		Content:   url,
		Username:  d.Get("author").String(),
		Subreddit: d.Get("subreddit").String(),
		Comments:  count(d.Get("num_comments")),
		Upvoted:   d.Get("likes").Type == gjson.True,
	}
}

// count clamps a JSON number into a display counter.
func count(r gjson.Result) uint32 {
	n := r.Int()
	switch {
	case n < 0:
		return 0
	case n > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(n)
}
