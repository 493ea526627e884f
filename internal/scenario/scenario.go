// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package scenario runs the task demonstration: a list of tasks is built,
// every task is executed in list order and each task's description is
// collected into a second list.
package scenario

import (
	"time"

	"github.com/juju/errors"

	"github.com/juju/dequelist/core/deque"
	"github.com/juju/dequelist/internal/task"
)

// Report is the outcome of a run.
type Report struct {
	StartedAt      time.Time `yaml:"started-at" json:"started-at"`
	FinishedAt     time.Time `yaml:"finished-at" json:"finished-at"`
	InitialObjects int       `yaml:"initial-objects" json:"initial-objects"`
	FinalObjects   int       `yaml:"final-objects" json:"final-objects"`
	Executed       int       `yaml:"executed" json:"executed"`
	Results        []string  `yaml:"results" json:"results"`

	// InitialObjectsByKind breaks InitialObjects down by object kind.
	InitialObjectsByKind map[string]int `yaml:"initial-objects-by-kind" json:"initial-objects-by-kind"`
}

// Run builds the task list described by cfg, executes it and reports on
// the result. Every task created by the run is released before Run
// returns.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	report := &Report{StartedAt: cfg.Clock.Now()}

	var created []task.Task
	track := func(t task.Task) task.Task {
		created = append(created, t)
		return t
	}
	release := func() {
		for _, t := range created {
			t.Release()
		}
	}
	defer release()

	tasks := deque.New[task.Task]()
	results := deque.New[string]()

	n := cfg.MinRandomTasks + cfg.Rand.IntN(cfg.MaxRandomTasks-cfg.MinRandomTasks+1)
	cfg.Logger.Debugf("adding %d random tasks", n)
	for i := 0; i < n; i++ {
		tasks.PushBack(track(task.NewRandom(cfg.Registry, cfg.Rand, tasks)))
	}

	deferred := []task.Task{
		track(task.NewRandomBinaryOperation(cfg.Registry, cfg.Rand)),
		track(task.NewObjectsNumberGlobal(cfg.Registry)),
		track(task.NewClear(cfg.Registry, tasks)),
	}
	for _, t := range deferred {
		tasks.PushBack(track(task.NewAddToContainer(cfg.Registry, tasks, t)))
	}

	report.InitialObjects = cfg.Registry.Count()
	report.InitialObjectsByKind = make(map[string]int)
	for _, kind := range cfg.Registry.Kinds() {
		report.InitialObjectsByKind[kind] = cfg.Registry.CountByKind(kind)
	}
	cfg.Logger.Infof("total objects number: %d", report.InitialObjects)

	if cfg.OnBuilt != nil {
		if err := cfg.OnBuilt(); err != nil {
			return nil, errors.Annotate(err, "task list built")
		}
	}

	executed, err := execute(tasks, results, cfg.Logger)
	report.Executed = executed
	report.Results = results.Values()
	if err != nil {
		return report, errors.Trace(err)
	}

	tasks.Clear()
	results.Clear()
	release()

	report.FinalObjects = cfg.Registry.Count()
	report.FinishedAt = cfg.Clock.Now()
	cfg.Logger.Infof("total objects number: %d", report.FinalObjects)
	return report, nil
}

// execute walks tasks from the front, executing each one and appending its
// description to results. Tasks appended while walking are visited too.
// When a task removes the element the walk stands on, the walk ends there.
func execute(tasks *deque.DequeList[task.Task], results *deque.DequeList[string], logger Logger) (int, error) {
	executed := 0
	for cur := tasks.Begin(); !cur.Equal(tasks.End()); {
		t, err := cur.Value()
		if err != nil {
			return executed, errors.Trace(err)
		}
		if err := t.Execute(); err != nil {
			return executed, errors.Annotatef(err, "executing task %d (%s)", executed, t.Kind())
		}
		executed++

		description := t.String()
		results.PushBack(description)
		logger.Debugf("executed %s: %s", t.Kind(), description)

		if !cur.Valid() {
			logger.Debugf("task list emptied by %s task, stopping", t.Kind())
			break
		}
		cur = cur.Next()
	}
	return executed, nil
}
