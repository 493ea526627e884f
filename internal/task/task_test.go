// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package task

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/juju/dequelist/core/deque"
	"github.com/juju/dequelist/core/objects"
)

type taskSuite struct {
	registry *objects.Registry
	store    *MockStore
}

var _ = gc.Suite(&taskSuite{})

func (s *taskSuite) SetUpTest(c *gc.C) {
	s.registry = objects.NewRegistry()
}

func (s *taskSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.store = NewMockStore(ctrl)
	return ctrl
}

func (s *taskSuite) TestBinaryOperations(c *gc.C) {
	tests := []struct {
		op       string
		expected float64
	}{
		{"+", 12},
		{"-", 8},
		{"*", 20},
		{"/", 5},
	}
	for _, test := range tests {
		c.Logf("operator %q", test.op)
		t := NewBinaryOperation(s.registry, 10, 2, test.op)
		c.Check(t.Name(), gc.Equals, test.op)
		c.Check(t.HasResult(), jc.IsTrue)
		c.Check(t.Executed(), jc.IsFalse)

		result, err := t.Result()
		c.Assert(err, jc.ErrorIsNil)
		c.Check(result, gc.Equals, test.expected)
		c.Check(t.Executed(), jc.IsTrue)
	}
}

func (s *taskSuite) TestBinaryOperationString(c *gc.C) {
	t := NewBinaryOperation(s.registry, 1.5, 2, "+")
	c.Check(t.String(), gc.Equals, "Operation: 1.500000 + 2.000000")

	err := t.Execute()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(t.String(), gc.Equals, "Operation: 1.500000 + 2.000000; Result: 3.500000")
}

func (s *taskSuite) TestBinaryOperationInvalid(c *gc.C) {
	t := NewBinaryOperation(s.registry, 1, 2, "%")
	err := t.Execute()
	c.Check(err, jc.Satisfies, errors.IsNotValid)
	c.Check(err, gc.ErrorMatches, `operation "%" not valid`)
	c.Check(t.Executed(), jc.IsFalse)

	_, err = t.Result()
	c.Check(err, jc.Satisfies, errors.IsNotValid)
}

func (s *taskSuite) TestRandomBinaryOperationRanges(c *gc.C) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		t := NewRandomBinaryOperation(s.registry, rng)
		c.Assert(t.a >= 0 && t.a <= 99, jc.IsTrue, gc.Commentf("a = %v", t.a))
		c.Assert(t.b >= 1 && t.b <= 100, jc.IsTrue, gc.Commentf("b = %v", t.b))
		c.Assert(operators.Contains(t.Name()), jc.IsTrue)
		c.Assert(t.Execute(), jc.ErrorIsNil)
	}
}

func (s *taskSuite) TestAddToContainer(c *gc.C) {
	defer s.setupMocks(c).Finish()

	inner := NewObjectsNumberGlobal(s.registry)
	s.store.EXPECT().PushBack(inner)

	t := NewAddToContainer(s.registry, s.store, inner)
	c.Check(t.HasResult(), jc.IsFalse)
	c.Check(t.String(), gc.Equals, "Adding to container: {Objects number global task}")

	c.Assert(t.Execute(), jc.ErrorIsNil)
	c.Check(t.String(), gc.Equals, "Adding to container: {Objects number global task}; Done.")
}

func (s *taskSuite) TestObjectsNumber(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.store.EXPECT().Size().Return(7)

	t := NewObjectsNumber(s.registry, s.store)
	c.Check(t.Name(), gc.Equals, "Objects number")
	c.Check(t.String(), gc.Equals, "Objects number task")
	c.Check(t.Result(), gc.Equals, 7)
	// The result is cached; Size is not read again.
	c.Check(t.Result(), gc.Equals, 7)
	c.Check(t.String(), gc.Equals, "Objects number task; Result: 7")
}

func (s *taskSuite) TestTasksWithResultNumber(c *gc.C) {
	defer s.setupMocks(c).Finish()

	stored := []Task{
		NewBinaryOperation(s.registry, 1, 1, "+"),
		NewClear(s.registry, s.store),
		NewObjectsNumberGlobal(s.registry),
		NewAddToContainer(s.registry, s.store, NewClear(s.registry, s.store)),
	}
	s.store.EXPECT().All().Return(iter.Seq[Task](slices.Values(stored)))

	t := NewTasksWithResultNumber(s.registry, s.store)
	c.Check(t.Name(), gc.Equals, "Tasks with result number")
	c.Assert(t.Execute(), jc.ErrorIsNil)
	c.Check(t.Result(), gc.Equals, 2)
	c.Check(t.String(), gc.Equals, "Tasks with result number tasks; Result: 2")
}

func (s *taskSuite) TestClear(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.store.EXPECT().Clear()

	t := NewClear(s.registry, s.store)
	_, named := Task(t).(Named)
	c.Check(named, jc.IsFalse)
	c.Check(t.String(), gc.Equals, "Clear task")
	c.Assert(t.Execute(), jc.ErrorIsNil)
	c.Check(t.String(), gc.Equals, "Clear task; Done.")
}

func (s *taskSuite) TestObjectsNumberGlobalCountsLiveTasks(c *gc.C) {
	a := NewBinaryOperation(s.registry, 1, 1, "+")
	b := NewBinaryOperation(s.registry, 1, 1, "-")
	t := NewObjectsNumberGlobal(s.registry)
	c.Check(t.Result(), gc.Equals, 3)

	a.Release()
	b.Release()
	c.Check(t.Result(), gc.Equals, 3)
	c.Assert(t.Execute(), jc.ErrorIsNil)
	c.Check(t.Result(), gc.Equals, 1)
	c.Check(t.String(), gc.Equals, "Objects number global task; Result: 1")
}

func (s *taskSuite) TestReleaseIsIdempotent(c *gc.C) {
	t := NewClear(s.registry, deque.New[Task]())
	c.Check(s.registry.CountByKind(KindClear.String()), gc.Equals, 1)
	t.Release()
	t.Release()
	c.Check(s.registry.Count(), gc.Equals, 0)
}

func (s *taskSuite) TestNewRandomKinds(c *gc.C) {
	store := deque.New[Task]()
	rng := rand.New(rand.NewPCG(5, 6))
	seen := make(map[Kind]bool)
	for i := 0; i < 100; i++ {
		seen[NewRandom(s.registry, rng, store).Kind()] = true
	}
	c.Check(seen, jc.DeepEquals, map[Kind]bool{
		KindBinaryOperation:       true,
		KindObjectsNumberGlobal:   true,
		KindTasksWithResultNumber: true,
		KindObjectsNumber:         true,
	})
	c.Check(s.registry.Count(), gc.Equals, 100)
}

func (s *taskSuite) TestTasksOnDequeList(c *gc.C) {
	store := deque.New[Task]()
	op := NewBinaryOperation(s.registry, 6, 3, "/")
	add := NewAddToContainer(s.registry, store, op)
	count := NewObjectsNumber(s.registry, store)
	withResult := NewTasksWithResultNumber(s.registry, store)

	store.PushBack(add)
	store.PushBack(count)
	c.Assert(add.Execute(), jc.ErrorIsNil)
	c.Assert(count.Execute(), jc.ErrorIsNil)
	c.Check(count.Result(), gc.Equals, 3)
	c.Check(withResult.Result(), gc.Equals, 2)

	c.Assert(NewClear(s.registry, store).Execute(), jc.ErrorIsNil)
	c.Check(store.Empty(), jc.IsTrue)
}
