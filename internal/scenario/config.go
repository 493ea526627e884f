// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package scenario

import (
	"math/rand/v2"

	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/juju/dequelist/core/objects"
)

const (
	// DefaultMinRandomTasks is the fewest random tasks a run starts with.
	DefaultMinRandomTasks = 5

	// DefaultMaxRandomTasks is the most random tasks a run starts with.
	DefaultMaxRandomTasks = 10
)

// Logger represents the logging methods called.
type Logger interface {
	Errorf(message string, args ...any)
	Warningf(message string, args ...any)
	Infof(message string, args ...any)
	Debugf(message string, args ...any)
}

// Config holds everything a run needs.
type Config struct {
	Clock    clock.Clock
	Logger   Logger
	Registry *objects.Registry
	Rand     *rand.Rand

	// MinRandomTasks and MaxRandomTasks bound, inclusively, the number of
	// random tasks pushed before the fixed ones.
	MinRandomTasks int
	MaxRandomTasks int

	// OnBuilt, if set, is called once the task list is built and before
	// any task executes.
	OnBuilt func() error
}

// Validate ensures that the config values are valid.
func (c Config) Validate() error {
	if c.Clock == nil {
		return errors.NotValidf("missing Clock")
	}
	if c.Logger == nil {
		return errors.NotValidf("missing Logger")
	}
	if c.Registry == nil {
		return errors.NotValidf("missing Registry")
	}
	if c.Rand == nil {
		return errors.NotValidf("missing Rand")
	}
	if c.MinRandomTasks < 0 {
		return errors.NotValidf("negative MinRandomTasks %d", c.MinRandomTasks)
	}
	if c.MaxRandomTasks < c.MinRandomTasks {
		return errors.NotValidf("MaxRandomTasks %d below MinRandomTasks %d", c.MaxRandomTasks, c.MinRandomTasks)
	}
	return nil
}
