// Package pkg contains standalone utility functions that do not depend on
// anything except themselves.
package pkg

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrIndexOutOfRange is the cause of every positional access failure in the
// containers. Use errors.Is against a recovered panic value to detect it.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes an invalid positional access.
type IndexError struct {
	Index int
	Len   int
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d]", e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckIndex panics with an *IndexError carrying a stack trace if i is not a
// valid index into a container of length n.
func CheckIndex(i, n int) {
	if i < 0 || i >= n {
		panic(pkgerrors.WithStack(&IndexError{Index: i, Len: n}))
	}
}

// Panicf functions like printf, but for constructing a string sent to panic. Do
// not use if you think that fmt.Sprintf would also panic, e.g. if you are
// already inside a panic handler.
func Panicf(msg string, args ...interface{}) {
	s := fmt.Sprintf(msg, args...)
	panic(s)
}
