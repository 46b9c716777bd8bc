// Package loader contains utilties for caching the read and parse of a file by
// path.
package loader

import (
	"io/fs"

	"github.com/pkg/errors"
)

// Contents is the raw bytes of a file, and the parsed object associated with
// the raw bytes.
type Contents[T any] struct {
	Raw    []byte
	Parsed T
}

// Loader contains cached file contents, keyed by path.
type Loader[T any] map[string]*Contents[T]

// LoadFn defines how to turn bytes into an object when loading a file.
type LoadFn[T any] func(b []byte) (T, error)

// LoadPath reads the file at path from fsys, using the provided load function
// to create a parsed object. It will overwrite any existing file stored at that
// path in the loader.
func (l Loader[T]) LoadPath(fsys fs.FS, path string, f LoadFn[T]) (*Contents[T], error) {
	var err error
	contents := Contents[T]{}
	if contents.Raw, err = fs.ReadFile(fsys, path); err != nil {
		return nil, err
	}
	if contents.Parsed, err = f(contents.Raw); err != nil {
		return nil, errors.Wrapf(err, "error in LoadFn for %q", path)
	}
	l[path] = &contents
	return &contents, nil
}

// LoadOrGet loads the file at path if it is not already cached. created is
// true if the file was read by this call.
func (l Loader[T]) LoadOrGet(fsys fs.FS, path string, f LoadFn[T]) (contents *Contents[T], created bool, err error) {
	existing, ok := l[path]
	if ok {
		return existing, false, nil
	}
	c, err := l.LoadPath(fsys, path, f)
	return c, err == nil, err
}
