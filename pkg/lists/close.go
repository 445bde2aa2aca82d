package lists

import (
	"errors"
	"fmt"
	"io"
)

// Close releases every remaining element front to back and then the
// sentinel. Values implementing io.Closer are closed as they are released;
// their errors are joined and returned. Closing an already closed list is a
// no-op, and a closed list behaves like a new empty one.
func (l *List[T]) Close() error {
	if l.root == nil {
		return nil
	}
	var errs []error
	for {
		v, ok := l.PopFront()
		if !ok {
			break
		}
		if c, isCloser := any(v).(io.Closer); isCloser {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("lists: closing value: %w", err))
			}
		}
	}
	root := l.root
	l.root = nil
	releaseNode(root)
	return errors.Join(errs...)
}
