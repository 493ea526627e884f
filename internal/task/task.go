// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package task provides a small, closed family of tasks that operate on
// numbers, on a shared task store and on the live object registry.
package task

import (
	"iter"

	"github.com/juju/dequelist/core/objects"
)

//go:generate go run go.uber.org/mock/mockgen -package task -destination store_mock_test.go github.com/juju/dequelist/internal/task Store

// Kind identifies a task variant.
type Kind string

const (
	KindBinaryOperation       Kind = "binary-operation"
	KindAddToContainer        Kind = "add-to-container"
	KindObjectsNumber         Kind = "objects-number"
	KindTasksWithResultNumber Kind = "tasks-with-result-number"
	KindClear                 Kind = "clear"
	KindObjectsNumberGlobal   Kind = "objects-number-global"
)

// String returns the kind as a string.
func (k Kind) String() string {
	return string(k)
}

// Task is implemented by every task variant in this package and by no
// other type.
type Task interface {
	// Kind returns the variant of the task.
	Kind() Kind

	// HasResult reports whether the task produces a result when executed.
	HasResult() bool

	// Executed reports whether Execute has completed successfully at
	// least once.
	Executed() bool

	// Execute performs the task.
	Execute() error

	// String describes the task, including its result once executed.
	String() string

	// Release stops counting the task as a live object. It is safe to
	// call more than once.
	Release()

	sealed()
}

// Named is implemented by tasks that carry a name.
type Named interface {
	Name() string
}

// Store is the sequence of tasks that container tasks operate on.
type Store interface {
	// PushBack appends a task.
	PushBack(Task)

	// Size returns the number of stored tasks.
	Size() int

	// All walks the stored tasks in order.
	All() iter.Seq[Task]

	// Clear removes every stored task.
	Clear()
}

type base struct {
	kind      Kind
	hasResult bool
	executed  bool
	registry  *objects.Registry
	id        string
}

func newBase(registry *objects.Registry, kind Kind, hasResult bool) base {
	return base{
		kind:      kind,
		hasResult: hasResult,
		registry:  registry,
		id:        registry.Register(kind.String()),
	}
}

// Kind is part of the Task interface.
func (b *base) Kind() Kind { return b.kind }

// HasResult is part of the Task interface.
func (b *base) HasResult() bool { return b.hasResult }

// Executed is part of the Task interface.
func (b *base) Executed() bool { return b.executed }

// Release is part of the Task interface.
func (b *base) Release() {
	if b.id == "" {
		return
	}
	b.registry.Release(b.id)
	b.id = ""
}

func (b *base) sealed() {}

type named struct {
	name string
}

// Name is part of the Named interface.
func (n named) Name() string { return n.name }
