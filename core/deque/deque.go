// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

import (
	"iter"

	"github.com/juju/errors"
)

// node is a single link in a chain. The sentinel flag marks the two
// boundary nodes, which never carry a value.
type node[T any] struct {
	value    T
	next     *node[T]
	prev     *node[T]
	chain    *chain[T]
	sentinel bool
}

// chain owns the nodes of a list. A DequeList only references its chain,
// which lets SwapState exchange two lists without touching any node.
type chain[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func newChain[T any]() *chain[T] {
	c := &chain[T]{}
	c.head = &node[T]{chain: c, sentinel: true}
	c.tail = &node[T]{chain: c, sentinel: true}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// link inserts n between prev and next, which must be adjacent.
func (c *chain[T]) link(n, prev, next *node[T]) {
	n.chain = c
	n.prev = prev
	n.next = next
	prev.next = n
	next.prev = n
	c.size++
}

// unlink detaches n from the chain and drops its links, so the removed
// node keeps nothing reachable.
func (c *chain[T]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	n.chain = nil
	c.size--
}

// DequeList is a double-ended list bounded by two permanent sentinel nodes.
// It is not safe for concurrent use; callers sharing a list between
// goroutines must provide their own locking.
type DequeList[T any] struct {
	c *chain[T]
}

// New returns a list holding the given values in order.
func New[T any](values ...T) *DequeList[T] {
	l := &DequeList[T]{c: newChain[T]()}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Size returns the number of elements in the list.
func (l *DequeList[T]) Size() int {
	return l.c.size
}

// Empty reports whether the list holds no elements.
func (l *DequeList[T]) Empty() bool {
	return l.c.size == 0
}

// PushFront inserts v before the first element.
func (l *DequeList[T]) PushFront(v T) {
	l.c.link(&node[T]{value: v}, l.c.head, l.c.head.next)
}

// PushBack inserts v after the last element.
func (l *DequeList[T]) PushBack(v T) {
	l.c.link(&node[T]{value: v}, l.c.tail.prev, l.c.tail)
}

// PopFront removes the first element and returns its value.
func (l *DequeList[T]) PopFront() (T, error) {
	if l.c.size == 0 {
		var zero T
		return zero, errors.Trace(ErrEmptyContainer)
	}
	n := l.c.head.next
	v := n.value
	l.c.unlink(n)
	return v, nil
}

// PopBack removes the last element and returns its value.
func (l *DequeList[T]) PopBack() (T, error) {
	if l.c.size == 0 {
		var zero T
		return zero, errors.Trace(ErrEmptyContainer)
	}
	n := l.c.tail.prev
	v := n.value
	l.c.unlink(n)
	return v, nil
}

// First returns the value of the first element without removing it.
func (l *DequeList[T]) First() (T, error) {
	if l.c.size == 0 {
		var zero T
		return zero, errors.Trace(ErrEmptyContainer)
	}
	return l.c.head.next.value, nil
}

// Last returns the value of the last element without removing it.
func (l *DequeList[T]) Last() (T, error) {
	if l.c.size == 0 {
		var zero T
		return zero, errors.Trace(ErrEmptyContainer)
	}
	return l.c.tail.prev.value, nil
}

// Clear removes every element. Cursors pointing at removed elements
// become invalid.
func (l *DequeList[T]) Clear() {
	for n := l.c.head.next; n != l.c.tail; {
		next := n.next
		l.c.unlink(n)
		n = next
	}
}

// Reverse reverses the order of the list in place. Every node swaps its
// two links, then the sentinels swap roles; no node is allocated.
//
// Cursors obtained from End or REnd before the call swap meaning with it.
func (l *DequeList[T]) Reverse() {
	if l.c.size < 2 {
		return
	}
	for n := l.c.head; n != nil; n = n.prev {
		n.next, n.prev = n.prev, n.next
	}
	l.c.head, l.c.tail = l.c.tail, l.c.head
}

// SwapState exchanges the contents of l and other in constant time.
func (l *DequeList[T]) SwapState(other *DequeList[T]) {
	l.c, other.c = other.c, l.c
}

// All returns a forward walk over the values of the list. The walk reads
// the list lazily and may be restarted.
func (l *DequeList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.c
		for n := c.head.next; n != nil && n != c.tail; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns a walk over the values of the list from last to first.
func (l *DequeList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.c
		for n := c.tail.prev; n != nil && n != c.head; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the values of the list in forward order.
func (l *DequeList[T]) Values() []T {
	values := make([]T, 0, l.c.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}
