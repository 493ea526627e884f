// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package task

import (
	"fmt"
	"math/rand/v2"

	"github.com/juju/collections/set"
	"github.com/juju/errors"

	"github.com/juju/dequelist/core/objects"
)

var operators = set.NewStrings("+", "-", "*", "/")

// BinaryOperation applies an arithmetic operator to two arguments. The
// operator doubles as the task's name.
type BinaryOperation struct {
	base
	named
	a, b   float64
	result float64
}

// NewBinaryOperation returns a task computing a <op> b. The operator is
// only checked when the task is executed.
func NewBinaryOperation(registry *objects.Registry, a, b float64, op string) *BinaryOperation {
	return &BinaryOperation{
		base:  newBase(registry, KindBinaryOperation, true),
		named: named{name: op},
		a:     a,
		b:     b,
	}
}

// NewRandomBinaryOperation returns a task with a whole-number first
// argument in [0, 99], a whole-number second argument in [1, 100] and a
// random operator.
func NewRandomBinaryOperation(registry *objects.Registry, rng *rand.Rand) *BinaryOperation {
	a := float64(rng.IntN(1000) / 10)
	b := float64(1 + rng.IntN(1000)/10)
	ops := operators.SortedValues()
	return NewBinaryOperation(registry, a, b, ops[rng.IntN(len(ops))])
}

// Execute is part of the Task interface.
func (t *BinaryOperation) Execute() error {
	if !operators.Contains(t.name) {
		return errors.NotValidf("operation %q", t.name)
	}
	switch t.name {
	case "+":
		t.result = t.a + t.b
	case "-":
		t.result = t.a - t.b
	case "*":
		t.result = t.a * t.b
	case "/":
		t.result = t.a / t.b
	}
	t.executed = true
	return nil
}

// Result returns the computed value, executing the task first if it has
// not run yet.
func (t *BinaryOperation) Result() (float64, error) {
	if !t.executed {
		if err := t.Execute(); err != nil {
			return 0, errors.Trace(err)
		}
	}
	return t.result, nil
}

// String is part of the Task interface.
func (t *BinaryOperation) String() string {
	info := fmt.Sprintf("Operation: %f %s %f", t.a, t.name, t.b)
	if t.executed {
		info += fmt.Sprintf("; Result: %f", t.result)
	}
	return info
}
