package lists

// List is a doubly linked list of T. The zero value is an empty list
// ready to use.
type List[T any] struct {
	root *node[T]
}

// NewList returns an empty list.
func NewList[T any]() *List[T] {
	l := new(List[T])
	l.lazyInit()
	return l
}

// NewListOf returns a list holding the single element seed.
func NewListOf[T any](seed T) *List[T] {
	l := NewList[T]()
	l.PushBack(seed)
	return l
}

func (l *List[T]) lazyInit() {
	if l.root == nil {
		var zero T
		l.root = newNode(zero)
		l.root.list = l
	}
}

// insert links e immediately after at.
func (l *List[T]) insert(e, at *node[T]) {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
}

// remove unlinks e, releases it and hands back its value.
func (l *List[T]) remove(e *node[T]) T {
	e.prev.next = e.next
	e.next.prev = e.prev
	v := e.value
	releaseNode(e)
	return v
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.root == nil || l.root.detached()
}

// Len walks the list and returns the number of elements.
func (l *List[T]) Len() int {
	if l.IsEmpty() {
		return 0
	}
	n := 0
	for e := l.root.next; e != l.root; e = e.next {
		n++
	}
	return n
}

func (l *List[T]) PushFront(v T) {
	l.lazyInit()
	l.insert(newNode(v), l.root)
}

func (l *List[T]) PushBack(v T) {
	l.lazyInit()
	l.insert(newNode(v), l.root.prev)
}

// PopFront removes and returns the first element. ok is false if the list
// is empty.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.IsEmpty() {
		return v, false
	}
	return l.remove(l.root.next), true
}

// PopBack removes and returns the last element. ok is false if the list
// is empty.
func (l *List[T]) PopBack() (v T, ok bool) {
	if l.IsEmpty() {
		return v, false
	}
	return l.remove(l.root.prev), true
}

// Front returns the first element without removing it.
func (l *List[T]) Front() (v T, ok bool) {
	if l.IsEmpty() {
		return v, false
	}
	return l.root.next.value, true
}

// Back returns the last element without removing it.
func (l *List[T]) Back() (v T, ok bool) {
	if l.IsEmpty() {
		return v, false
	}
	return l.root.prev.value, true
}
