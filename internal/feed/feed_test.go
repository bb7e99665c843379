package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ravana/internal/tui"
)

const listingJSON = `{
  "kind": "Listing",
  "data": {
    "children": [
      {"kind": "t3", "data": {
        "title": "Tips &amp; tricks", "selftext": "", "url": "https://example.com/a",
        "ups": 42, "author": "alice", "subreddit": "golang", "num_comments": 7, "likes": true
      }},
      {"kind": "more", "data": {"count": 3}},
      {"kind": "t3", "data": {
        "title": "Question", "selftext": "How do I &lt;x&gt;?", "url": "https://example.com/b",
        "ups": -5, "author": "bob", "subreddit": "golang", "num_comments": 5000000000, "likes": null
      }}
    ]
  }
}`

func TestParse(t *testing.T) {
	l, err := Parse([]byte(listingJSON))
	require.NoError(t, err)

	assert.Equal(t, "golang", l.Name)
	require.Len(t, l.Posts, 2)

	assert.Equal(t, tui.PostData{
		Upvotes:   42,
		Heading:   "Tips & tricks",
		Body:      "https://example.com/a",
		Content:   "https://example.com/a",
		Username:  "alice",
		Subreddit: "golang",
		Comments:  7,
		Upvoted:   true,
	}, l.Posts[0])

	second := l.Posts[1]
	assert.Equal(t, "How do I <x>?", second.Body)
	assert.Equal(t, uint32(0), second.Upvotes, "negative scores clamp to zero")
	assert.Equal(t, uint32(4294967295), second.Comments)
	assert.False(t, second.Upvoted)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"malformed", `{"kind": `, ErrMalformed},
		{"wrong kind", `{"kind": "t1", "data": {"children": []}}`, ErrNotListing},
		{"no children", `{"kind": "Listing", "data": {}}`, ErrNotListing},
		{"children not array", `{"data": {"children": {}}}`, ErrNotListing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseEmptyListing(t *testing.T) {
	l, err := Parse([]byte(`{"kind": "Listing", "data": {"children": []}}`))
	require.NoError(t, err)
	assert.Empty(t, l.Name)
	assert.Empty(t, l.Posts)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	full := filepath.Join(dir, "front.json")
	require.NoError(t, os.WriteFile(full, []byte(listingJSON), 0o600))
	l, err := LoadFile(full)
	require.NoError(t, err)
	assert.Equal(t, "golang", l.Name)

	empty := filepath.Join(dir, "quiet.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"data": {"children": []}}`), 0o600))
	l, err = LoadFile(empty)
	require.NoError(t, err)
	assert.Equal(t, "quiet", l.Name)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o600))
	_, err = LoadFile(bad)
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestSamples(t *testing.T) {
	ls, err := Samples()
	require.NoError(t, err)
	require.Len(t, ls, 2)

	assert.Equal(t, "golang", ls[0].Name)
	assert.Equal(t, "rust", ls[1].Name)
	for _, l := range ls {
		assert.NotEmpty(t, l.Posts)
		for _, p := range l.Posts {
			assert.NotEmpty(t, p.Heading)
			assert.NotEmpty(t, p.Body)
			assert.Equal(t, l.Name, p.Subreddit)
		}
	}
}
