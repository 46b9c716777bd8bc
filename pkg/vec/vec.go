// Package vec implements small fixed-size numeric vectors. The length of a
// Vector is part of its type, carried by the array type parameter, and the
// elements are stored inline with no heap allocation.
//
//	v := vec.FromArray[float64]([4]float64{1, 2, 3, 4})
//	w := v.Add(vec.Uniform[float64, [4]float64](1))
//
// Point2 and Point3 add named X/Y/Z accessors over the same storage.
package vec

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"hop.computer/containers/pkg"
)

// Number is the set of element types a Vector can hold.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Storage is the set of array types backing a Vector of T.
type Storage[T Number] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T
}

// Vector is a fixed-size tuple of numbers. Vectors are values: assignment
// copies the elements.
type Vector[T Number, A Storage[T]] struct {
	values A
}

// New returns a vector with every element set to zero.
func New[T Number, A Storage[T]]() Vector[T, A] {
	return Vector[T, A]{}
}

// FromArray returns a vector holding a copy of a.
func FromArray[T Number, A Storage[T]](a A) Vector[T, A] {
	return Vector[T, A]{values: a}
}

// Uniform returns a vector with every element set to x.
func Uniform[T Number, A Storage[T]](x T) Vector[T, A] {
	var v Vector[T, A]
	for i := range len(v.values) {
		v.values[i] = x
	}
	return v
}

// Len returns the number of elements, which is fixed by the type.
func (v Vector[T, A]) Len() int {
	return len(v.values)
}

// Copy returns an independent copy of v.
func (v Vector[T, A]) Copy() Vector[T, A] {
	return v
}

// Array returns a copy of the backing array.
func (v Vector[T, A]) Array() A {
	return v.values
}

// At returns a pointer to element i. It panics with a *pkg.IndexError if i is
// out of range.
func (v *Vector[T, A]) At(i int) *T {
	pkg.CheckIndex(i, len(v.values))
	return &v.values[i]
}

// Get returns element i. An out of range index is logged and yields zero.
func (v Vector[T, A]) Get(i int) T {
	if i < 0 || i >= len(v.values) {
		boundsViolation(i, len(v.values))
		var zero T
		return zero
	}
	return v.values[i]
}

// Set stores x at element i. An out of range index is logged, nothing is
// written, and Set returns false.
func (v *Vector[T, A]) Set(i int, x T) bool {
	if i < 0 || i >= len(v.values) {
		boundsViolation(i, len(v.values))
		return false
	}
	v.values[i] = x
	return true
}

// Add returns the element-wise sum of v and o.
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	var out Vector[T, A]
	for i := range len(v.values) {
		out.values[i] = v.values[i] + o.values[i]
	}
	return out
}

// String renders the vector as "(a, b, c)".
func (v Vector[T, A]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := range len(v.values) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v.values[i])
	}
	b.WriteByte(')')
	return b.String()
}

func boundsViolation(i, n int) {
	logrus.WithFields(logrus.Fields{
		"index": i,
		"len":   n,
	}).Warn("array bounds violation")
}
