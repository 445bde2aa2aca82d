package lists

import (
	"fmt"
	"strings"
)

const DefaultSeparator = "->"

// Join formats every value with fmt.Sprint and places sep between
// consecutive values. An empty list renders as "".
func (l *List[T]) Join(sep string) string {
	s := new(strings.Builder)
	first := true
	for v := range l.Forward() {
		if !first {
			s.WriteString(sep)
		}
		first = false
		fmt.Fprint(s, v)
	}
	return s.String()
}

// String renders the list front to back, e.g. "1->2->3".
func (l *List[T]) String() string {
	return l.Join(DefaultSeparator)
}
