package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

var errParse = errors.New("parse failure")

func upper(b []byte) (string, error) {
	if len(b) == 0 {
		return "", errParse
	}
	return strings.ToUpper(string(b)), nil
}

func TestLoadOrGet(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt":     &fstest.MapFile{Data: []byte("hello")},
		"empty.txt": &fstest.MapFile{},
	}
	l := Loader[string]{}

	c, created, err := l.LoadOrGet(fsys, "a.txt", upper)
	assert.NilError(t, err)
	assert.Check(t, created)
	assert.Equal(t, c.Parsed, "HELLO")
	assert.Equal(t, string(c.Raw), "hello")

	fsys["a.txt"].Data = []byte("changed")
	c, created, err = l.LoadOrGet(fsys, "a.txt", upper)
	assert.NilError(t, err)
	assert.Check(t, !created)
	assert.Equal(t, c.Parsed, "HELLO")

	c, err = l.LoadPath(fsys, "a.txt", upper)
	assert.NilError(t, err)
	assert.Equal(t, c.Parsed, "CHANGED")
	assert.Check(t, is.Len(l, 1))
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{"empty.txt": &fstest.MapFile{}}
	l := Loader[string]{}

	_, err := l.LoadPath(fsys, "missing.txt", upper)
	assert.Check(t, errors.Is(err, fs.ErrNotExist))

	_, created, err := l.LoadOrGet(fsys, "empty.txt", upper)
	assert.Check(t, errors.Is(err, errParse))
	assert.ErrorContains(t, err, `"empty.txt"`)
	assert.Check(t, !created)
	assert.Check(t, is.Len(l, 0))
}
