// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

import "github.com/juju/errors"

const (
	// ErrEmptyContainer is returned when a value is requested from, or
	// removed from, a list holding no elements.
	ErrEmptyContainer = errors.ConstError("container is empty")

	// ErrInvalidIterator is returned when a cursor is dereferenced while
	// positioned on a boundary marker, or after its element was removed.
	ErrInvalidIterator = errors.ConstError("invalid iterator")
)
