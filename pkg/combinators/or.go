// Package combinators defines small generic combinator functions.
package combinators

// Or returns v if it is not the zero value of its type. Otherwise, it returns
// the provided default.
func Or[T comparable](v, orDefault T) T {
	var zero T
	if v == zero {
		return orDefault
	}
	return v
}

// SliceOr returns s if it is non-empty. Otherwise, it returns the provided
// default.
func SliceOr[T any](s, orDefault []T) []T {
	if len(s) == 0 {
		return orDefault
	}
	return s
}
