package list

// Map returns a new list holding f applied to every element of l, in order.
// l is not modified.
func Map[T, R any](l *List[T], f func(T) R) *List[R] {
	out := &List[R]{nodes: make([]node[R], 0, l.size)}
	for v := range l.Values() {
		out.PushBack(f(v))
	}
	return out
}

// MapWith is Map for transforms that take fixed extra arguments. args are
// passed to every call of f.
func MapWith[T, R, A any](l *List[T], f func(T, ...A) R, args ...A) *List[R] {
	return Map(l, func(v T) R {
		return f(v, args...)
	})
}
