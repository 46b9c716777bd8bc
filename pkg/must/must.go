// Package must contains helpers that convert between errors and panics.
package must

import (
	"fmt"

	"hop.computer/containers/pkg"
)

// Do takes any value and error pair, and panics if the error is non-nil. Use it
// wrapping another function call that returns two values, to get a single
// statement that only returns one value.
//
// Example:
//
//	s := must.Do(config.LoadScenario("demo.toml"))
func Do[T any](v T, err error) T {
	if err != nil {
		pkg.Panicf("expected nil-error, got %s", err)
	}
	return v
}

// Catch runs f and returns the value it panicked with as an error, or nil if
// it returned normally. Non-error panic values are formatted with %v.
func Catch(f func()) (err error) {
	defer func() {
		switch v := recover().(type) {
		case nil:
		case error:
			err = v
		default:
			err = fmt.Errorf("%v", v)
		}
	}()
	f()
	return nil
}
