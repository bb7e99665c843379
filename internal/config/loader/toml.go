package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
)

// File is the layer stored in one TOML file.
type File struct {
	fsys FS
	path string
}

// NewFile creates the layer for path on fsys.
func NewFile(fsys FS, path string) *File {
	return &File{fsys: fsys, path: path}
}

// Path returns the file's path.
func (f *File) Path() string {
	return f.path
}

// Exists reports whether the file is present.
func (f *File) Exists() bool {
	_, err := f.fsys.Stat(f.path)
	return err == nil
}

// Load reads and parses the file.
func (f *File) Load() (map[string]any, error) {
	data, err := f.fsys.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	return Parse(f.path, data)
}

// ParseError reports malformed TOML. Line and Column are 1-based and
// zero when go-toml could not place the error.
type ParseError struct {
	Source string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %v", e.Source, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a TOML document into a map. source names the document
// in errors.
func Parse(source string, data []byte) (map[string]any, error) {
	m := make(map[string]any)
	if err := toml.Unmarshal(data, &m); err != nil {
		perr := &ParseError{Source: source, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return m, nil
}

// Decode stores m into v, which must be a pointer to a struct with toml
// tags. Fields missing from m keep their values; keys of m with no field
// fail with a *toml.StrictMissingError.
func Decode(m map[string]any, v any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return fmt.Errorf("re-encoding settings: %w", err)
	}
	dec := toml.NewDecoder(&buf).DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("applying settings: %w", err)
	}
	return nil
}
