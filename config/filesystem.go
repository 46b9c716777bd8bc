package config

import (
	"io/fs"
	"os"
)

// overwriting fileSystem lets us use a mock filesystem for tests
var fileSystem fs.FS = osFS{}

type osFS struct{}

// osFS implements fs.FS. Paths are handed to the operating system unchanged,
// so absolute paths work.
func (o osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}
