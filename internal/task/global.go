// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package task

import (
	"fmt"
	"math/rand/v2"

	"github.com/juju/dequelist/core/objects"
)

// ObjectsNumberGlobal reports how many objects the registry counts as
// live.
type ObjectsNumberGlobal struct {
	base
	named
	result int
}

// NewObjectsNumberGlobal returns a task reading the live count of
// registry.
func NewObjectsNumberGlobal(registry *objects.Registry) *ObjectsNumberGlobal {
	return &ObjectsNumberGlobal{
		base:  newBase(registry, KindObjectsNumberGlobal, true),
		named: named{name: "Objects number global"},
	}
}

// Execute is part of the Task interface.
func (t *ObjectsNumberGlobal) Execute() error {
	t.result = t.registry.Count()
	t.executed = true
	return nil
}

// Result returns the count, executing the task first if it has not run yet.
func (t *ObjectsNumberGlobal) Result() int {
	if !t.executed {
		_ = t.Execute()
	}
	return t.result
}

// String is part of the Task interface.
func (t *ObjectsNumberGlobal) String() string {
	info := "Objects number global task"
	if t.executed {
		info += fmt.Sprintf("; Result: %d", t.result)
	}
	return info
}

// NewRandom returns one of BinaryOperation, ObjectsNumberGlobal,
// TasksWithResultNumber or ObjectsNumber, chosen uniformly. The last two
// operate on store.
func NewRandom(registry *objects.Registry, rng *rand.Rand, store Store) Task {
	switch rng.IntN(4) {
	case 0:
		return NewRandomBinaryOperation(registry, rng)
	case 1:
		return NewObjectsNumberGlobal(registry)
	case 2:
		return NewTasksWithResultNumber(registry, store)
	default:
		return NewObjectsNumber(registry, store)
	}
}
