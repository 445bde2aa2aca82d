package lists

type node[T any] struct {
	value      T
	next, prev *node[T]
	list       *List[T]
}

// Test hooks counting every node allocated and released by a list.
var (
	onAlloc   func()
	onRelease func()
)

// newNode returns a detached node holding v.
func newNode[T any](v T) *node[T] {
	n := &node[T]{value: v}
	n.next = n
	n.prev = n
	if onAlloc != nil {
		onAlloc()
	}
	return n
}

func (n *node[T]) detached() bool { return n.next == n }

func (n *node[T]) detach() {
	n.next = n
	n.prev = n
}

// releaseNode drops everything n holds. n must already be unlinked.
func releaseNode[T any](n *node[T]) {
	var zero T
	n.detach()
	n.value = zero
	n.list = nil
	if onRelease != nil {
		onRelease()
	}
}
