// Package list implements a doubly-linked list
package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/sirupsen/logrus"

	"hop.computer/containers/pkg"
)

// handle addresses a node in the arena. The zero handle is empty; handle h
// lives at nodes[h-1].
type handle int

type node[T any] struct {
	value T
	next  handle // owning
	prev  handle // lookup only
}

// List implements a doubly linked-list. Nodes live in an arena owned by the
// list and are linked by handle, so the forward chain is the only ownership
// path and back links never keep anything alive. Head, tail, and size are
// tracked internally, so all operations are constant time unless noted
// otherwise. The zero value is an empty list. The list is not thread-safe.
type List[T any] struct {
	nodes      []node[T]
	head, tail handle
	free       handle // vacated slots, chained through next
	size       int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From returns a list holding values in order.
func From[T any](values ...T) *List[T] {
	return FromSlice(values)
}

// FromSlice returns a list holding the elements of s in order. The slice is
// not retained.
func FromSlice[T any](s []T) *List[T] {
	l := &List[T]{nodes: make([]node[T], 0, len(s))}
	for _, v := range s {
		l.PushBack(v)
	}
	return l
}

// FromSeq returns a list holding every value produced by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// MoveFrom transfers every node of other into a new list in constant time.
// other is left empty and may be reused.
func MoveFrom[T any](other *List[T]) *List[T] {
	l := &List[T]{}
	*l, *other = *other, List[T]{}
	trace("move", l.size)
	return l
}

func (l *List[T]) node(h handle) *node[T] {
	return &l.nodes[h-1]
}

func (l *List[T]) alloc(v T) handle {
	if l.free != 0 {
		h := l.free
		n := l.node(h)
		l.free = n.next
		*n = node[T]{value: v}
		return h
	}
	l.nodes = append(l.nodes, node[T]{value: v})
	return handle(len(l.nodes))
}

func (l *List[T]) release(h handle) {
	n := l.node(h)
	*n = node[T]{next: l.free}
	l.free = h
}

// walk returns the handle of the element at index i. i must be in range.
func (l *List[T]) walk(i int) handle {
	h := l.head
	for ; i > 0; i-- {
		h = l.node(h).next
	}
	return h
}

// unlink detaches h from its neighbours and returns its slot to the arena.
func (l *List[T]) unlink(h handle) {
	n := l.node(h)
	if n.prev != 0 {
		l.node(n.prev).next = n.next
	} else {
		l.head = n.next
	}
	if n.next != 0 {
		l.node(n.next).prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.size--
	if l.size == 0 {
		// Keep the capacity, forget the slots.
		clear(l.nodes)
		l.nodes = l.nodes[:0]
		l.head, l.tail, l.free = 0, 0, 0
		return
	}
	l.release(h)
}

// Len returns the length of the list. This function is constant time.
func (l *List[T]) Len() int {
	return l.size
}

// Front returns the first item in the list. ok is false if the list is empty.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head == 0 {
		return v, false
	}
	return l.node(l.head).value, true
}

// Back returns the last item in the list. ok is false if the list is empty.
func (l *List[T]) Back() (v T, ok bool) {
	if l.tail == 0 {
		return v, false
	}
	return l.node(l.tail).value, true
}

// PushBack appends v to the list. This function is amortized constant time.
func (l *List[T]) PushBack(v T) {
	h := l.alloc(v)
	if l.tail == 0 {
		l.head = h
	} else {
		l.node(h).prev = l.tail
		l.node(l.tail).next = h
	}
	l.tail = h
	l.size++
}

// PopBack removes the last item from the list. It returns false if the list
// was already empty.
func (l *List[T]) PopBack() bool {
	if l.tail == 0 {
		return false
	}
	l.unlink(l.tail)
	return true
}

// At returns a pointer to the element at index i, counting from the front.
// Writes through the pointer update the list. The pointer is invalidated by
// the next PushBack. At panics with a *pkg.IndexError if i is out of range.
// This function is O(n).
func (l *List[T]) At(i int) *T {
	pkg.CheckIndex(i, l.size)
	return &l.node(l.walk(i)).value
}

// Get returns a copy of the element at index i. It panics under the same
// conditions as At.
func (l *List[T]) Get(i int) T {
	return *l.At(i)
}

// RemoveAt deletes the element at index i. It returns false without modifying
// the list if i is out of range. This function is O(n).
func (l *List[T]) RemoveAt(i int) bool {
	if i < 0 || i >= l.size {
		return false
	}
	l.unlink(l.walk(i))
	return true
}

// RemoveFirst deletes the first element for which match returns true. It
// returns true if an element was removed. This function is O(n).
func (l *List[T]) RemoveFirst(match func(T) bool) bool {
	for h := l.head; h != 0; h = l.node(h).next {
		if match(l.node(h).value) {
			l.unlink(h)
			return true
		}
	}
	return false
}

// Clear releases every element. The arena is dropped wholesale, so clearing
// does not recurse regardless of length.
func (l *List[T]) Clear() {
	trace("clear", l.size)
	*l = List[T]{}
}

// Swap exchanges the contents of l and other in constant time.
func (l *List[T]) Swap(other *List[T]) {
	*l, *other = *other, *l
}

// Copy returns a deep copy of l. Elements are copied by assignment; use
// CopyFunc for element types that hold references. This function is O(n).
func (l *List[T]) Copy() *List[T] {
	return l.CopyFunc(nil)
}

// CopyFunc returns a deep copy of l, passing every element through clone. A
// nil clone copies by assignment.
func (l *List[T]) CopyFunc(clone func(T) T) *List[T] {
	c := &List[T]{nodes: make([]node[T], 0, l.size)}
	for h := l.head; h != 0; h = l.node(h).next {
		v := l.node(h).value
		if clone != nil {
			v = clone(v)
		}
		c.PushBack(v)
	}
	trace("copy", c.size)
	return c
}

// AssignCopy replaces the contents of l with a deep copy of other. The copy
// is built before l is touched.
func (l *List[T]) AssignCopy(other *List[T]) {
	l.AssignCopyFunc(other, nil)
}

// AssignCopyFunc is AssignCopy with an element cloner. If clone panics, l is
// left unchanged.
func (l *List[T]) AssignCopyFunc(other *List[T], clone func(T) T) {
	if l == other {
		return
	}
	tmp := other.CopyFunc(clone)
	l.Swap(tmp)
	trace("assign copy", l.size)
}

// AssignMove releases the contents of l and takes every node of other. other
// is left empty.
func (l *List[T]) AssignMove(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	*l, *other = *other, List[T]{}
	trace("assign move", l.size)
}

// All returns an iterator over index, value pairs from front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for h := l.head; h != 0; h = l.node(h).next {
			if !yield(i, l.node(h).value) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the values from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := l.head; h != 0; h = l.node(h).next {
			if !yield(l.node(h).value) {
				return
			}
		}
	}
}

// Backward returns an iterator over index, value pairs from back to front,
// following the back links.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.size - 1
		for h := l.tail; h != 0; h = l.node(h).prev {
			if !yield(i, l.node(h).value) {
				return
			}
			i--
		}
	}
}

// Slice returns the elements in order as a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}

// String renders the list front to back with " <-> " between elements.
func (l *List[T]) String() string {
	var b strings.Builder
	for i, v := range l.All() {
		if i > 0 {
			b.WriteString(" <-> ")
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}

func trace(op string, n int) {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.WithFields(logrus.Fields{"op": op, "len": n}).Trace("list")
	}
}
