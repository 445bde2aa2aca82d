package lists

import "iter"

// Forward yields the values from front to back. Mutating the list while
// ranging over it is not supported.
func (l *List[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.IsEmpty() {
			return
		}
		for e := l.root.next; e != l.root; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Backward yields the values from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.IsEmpty() {
			return
		}
		for e := l.root.prev; e != l.root; e = e.prev {
			if !yield(e.value) {
				return
			}
		}
	}
}

func (l *List[T]) ToSlice() []T {
	res := make([]T, 0)
	for v := range l.Forward() {
		res = append(res, v)
	}
	return res
}
