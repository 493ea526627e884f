// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

import "github.com/juju/errors"

// Cursor is a position within a DequeList. A cursor is either on an
// element or on one of the two boundary markers returned by End and REnd.
//
// Cursors do not own the element they point at. Removing that element
// invalidates the cursor; Value then reports ErrInvalidIterator.
type Cursor[T any] struct {
	n *node[T]
}

// Begin returns a cursor on the first element, or End when the list is
// empty.
func (l *DequeList[T]) Begin() Cursor[T] {
	return Cursor[T]{n: l.c.head.next}
}

// End returns the cursor one past the last element.
func (l *DequeList[T]) End() Cursor[T] {
	return Cursor[T]{n: l.c.tail}
}

// RBegin returns a cursor on the last element, or REnd when the list is
// empty.
func (l *DequeList[T]) RBegin() Cursor[T] {
	return Cursor[T]{n: l.c.tail.prev}
}

// REnd returns the cursor one before the first element.
func (l *DequeList[T]) REnd() Cursor[T] {
	return Cursor[T]{n: l.c.head}
}

// Valid reports whether the cursor is on an element that is still held by
// a list.
func (c Cursor[T]) Valid() bool {
	return c.n != nil && c.n.chain != nil && !c.n.sentinel
}

// Value returns the value under the cursor.
func (c Cursor[T]) Value() (T, error) {
	if !c.Valid() {
		var zero T
		return zero, errors.Trace(ErrInvalidIterator)
	}
	return c.n.value, nil
}

// Next returns the cursor on the following position. Moving forward from
// End, or from a removed element, leaves the cursor where it is.
func (c Cursor[T]) Next() Cursor[T] {
	if c.n == nil || c.n.next == nil {
		return c
	}
	return Cursor[T]{n: c.n.next}
}

// Prev returns the cursor on the preceding position. Moving backward from
// REnd, or from a removed element, leaves the cursor where it is.
func (c Cursor[T]) Prev() Cursor[T] {
	if c.n == nil || c.n.prev == nil {
		return c
	}
	return Cursor[T]{n: c.n.prev}
}

// Equal reports whether both cursors share a position.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.n == other.n
}
