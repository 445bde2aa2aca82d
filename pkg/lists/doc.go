// Package lists implements a generic doubly linked list on top of a
// circular sentinel node.
//
// The sentinel (root) is never removed and never exposes a value, so an
// empty list is simply root.next == root and every push or pop at either
// end is the same four-pointer rewire. Nodes are owned by the list and
// never handed out to callers.
//
// A List is not safe for concurrent use.
package lists
