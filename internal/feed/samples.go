package feed

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed samples/*.json
var samples embed.FS

// Samples returns the built-in demo listings, in file name order.
func Samples() ([]*Listing, error) {
	entries, err := fs.ReadDir(samples, "samples")
	if err != nil {
		return nil, err
	}

	out := make([]*Listing, 0, len(entries))
	for _, e := range entries {
		data, err := samples.ReadFile(path.Join("samples", e.Name()))
		if err != nil {
			return nil, err
		}
		l, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", e.Name(), err)
		}
		out = append(out, l)
	}
	return out, nil
}
