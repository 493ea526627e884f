// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package task

import (
	"fmt"

	"github.com/juju/dequelist/core/objects"
)

// AddToContainer appends a task to a store.
type AddToContainer struct {
	base
	named
	store Store
	task  Task
}

// NewAddToContainer returns a task that appends t to store.
func NewAddToContainer(registry *objects.Registry, store Store, t Task) *AddToContainer {
	return &AddToContainer{
		base:  newBase(registry, KindAddToContainer, false),
		named: named{name: "Adding to container"},
		store: store,
		task:  t,
	}
}

// Execute is part of the Task interface.
func (t *AddToContainer) Execute() error {
	t.store.PushBack(t.task)
	t.executed = true
	return nil
}

// String is part of the Task interface.
func (t *AddToContainer) String() string {
	info := fmt.Sprintf("%s: {%s}", t.name, t.task.String())
	if t.executed {
		info += "; Done."
	}
	return info
}

// ObjectsNumber reports how many tasks a store holds.
type ObjectsNumber struct {
	base
	named
	store  Store
	result int
}

// NewObjectsNumber returns a task counting the tasks in store.
func NewObjectsNumber(registry *objects.Registry, store Store) *ObjectsNumber {
	return &ObjectsNumber{
		base:  newBase(registry, KindObjectsNumber, true),
		named: named{name: "Objects number"},
		store: store,
	}
}

// Execute is part of the Task interface.
func (t *ObjectsNumber) Execute() error {
	t.result = t.store.Size()
	t.executed = true
	return nil
}

// Result returns the count, executing the task first if it has not run yet.
func (t *ObjectsNumber) Result() int {
	if !t.executed {
		_ = t.Execute()
	}
	return t.result
}

// String is part of the Task interface.
func (t *ObjectsNumber) String() string {
	info := "Objects number task"
	if t.executed {
		info += fmt.Sprintf("; Result: %d", t.result)
	}
	return info
}

// TasksWithResultNumber reports how many tasks in a store produce a
// result.
type TasksWithResultNumber struct {
	base
	named
	store  Store
	result int
}

// NewTasksWithResultNumber returns a task counting the result-bearing
// tasks in store.
func NewTasksWithResultNumber(registry *objects.Registry, store Store) *TasksWithResultNumber {
	return &TasksWithResultNumber{
		base:  newBase(registry, KindTasksWithResultNumber, true),
		named: named{name: "Tasks with result number"},
		store: store,
	}
}

// Execute is part of the Task interface.
func (t *TasksWithResultNumber) Execute() error {
	count := 0
	for stored := range t.store.All() {
		if stored.HasResult() {
			count++
		}
	}
	t.result = count
	t.executed = true
	return nil
}

// Result returns the count, executing the task first if it has not run yet.
func (t *TasksWithResultNumber) Result() int {
	if !t.executed {
		_ = t.Execute()
	}
	return t.result
}

// String is part of the Task interface.
func (t *TasksWithResultNumber) String() string {
	info := "Tasks with result number tasks"
	if t.executed {
		info += fmt.Sprintf("; Result: %d", t.result)
	}
	return info
}

// Clear empties a store. Unlike the other variants it carries no name.
type Clear struct {
	base
	store Store
}

// NewClear returns a task that removes every task from store.
func NewClear(registry *objects.Registry, store Store) *Clear {
	return &Clear{
		base:  newBase(registry, KindClear, false),
		store: store,
	}
}

// Execute is part of the Task interface.
func (t *Clear) Execute() error {
	t.store.Clear()
	t.executed = true
	return nil
}

// String is part of the Task interface.
func (t *Clear) String() string {
	info := "Clear task"
	if t.executed {
		info += "; Done."
	}
	return info
}
