// Package loader reads configuration layers into generic maps.
//
// Each layer, a TOML file or the RAVANA_* environment, yields a nested
// map keyed by TOML names. Merge stacks the layers and Decode turns the
// result into typed configuration.
package loader

import (
	"io/fs"
	"os"
)

// Layer produces one configuration layer.
type Layer interface {
	// Load returns the layer's settings. An absent source yields a nil
	// map and no error.
	Load() (map[string]any, error)
}

// FS is the file access a File layer needs. fstest.MapFS implements it.
type FS interface {
	fs.StatFS
	fs.ReadFileFS
}

// OS returns an FS over the real file system. Paths are used as given,
// absolute or relative to the working directory.
func OS() FS {
	return osFS{}
}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) { return os.Open(name) }
func (osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (osFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// Merge combines layers into a new map, later layers winning. Nested
// tables merge key by key; any other value is replaced whole. The
// inputs are not modified.
func Merge(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, layer := range layers {
		mergeInto(out, layer)
	}
	return out
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		table, isTable := v.(map[string]any)
		if !isTable {
			dst[k] = v
			continue
		}
		sub, ok := dst[k].(map[string]any)
		if !ok {
			sub = make(map[string]any, len(table))
			dst[k] = sub
		}
		mergeInto(sub, table)
	}
}
