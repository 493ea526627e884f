// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"github.com/juju/dequelist/cmd"
	"github.com/juju/dequelist/core/objects"
	"github.com/juju/dequelist/internal/scenario"
)

var logger = loggo.GetLogger("dequelist.cmd.dequedemo")

const runDoc = `
Builds a list of random tasks, appends three tasks that add further tasks
to the list (one of which clears it), then executes every task in list
order and reports each task's description.

Settings may be read from a YAML file given with --config:

    seed: 42
    min-random-tasks: 5
    max-random-tasks: 10
    logging-config: <root>=INFO

Flags given on the command line take precedence over the file.
`

// fileConfig is the YAML form of the run settings.
type fileConfig struct {
	Seed           *uint64 `yaml:"seed"`
	MinRandomTasks *int    `yaml:"min-random-tasks"`
	MaxRandomTasks *int    `yaml:"max-random-tasks"`
	LoggingConfig  string  `yaml:"logging-config"`
}

type runCommand struct {
	clock clock.Clock

	flags         *gnuflag.FlagSet
	setFlags      map[string]bool
	out           cmd.Output
	configFile    cmd.FileVar
	seed          uint64
	minTasks      int
	maxTasks      int
	loggingConfig string
	metricsPath   string
}

func newRunCommand(clock clock.Clock) *runCommand {
	return &runCommand{clock: clock}
}

// Info is part of the cmd.Command interface.
func (c *runCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "dequedemo",
		Purpose: "Run the task list demonstration.",
		Doc:     runDoc,
	}
}

// SetFlags is part of the cmd.Command interface.
func (c *runCommand) SetFlags(f *gnuflag.FlagSet) {
	c.flags = f
	formatters := map[string]cmd.Formatter{"text": formatText}
	for name, formatter := range cmd.DefaultFormatters {
		formatters[name] = formatter
	}
	c.out.AddFlags(f, "text", formatters)
	f.Var(&c.configFile, "config", "Path to a YAML settings file")
	f.Uint64Var(&c.seed, "seed", 0, "Seed for the random task generator (default: current time)")
	f.IntVar(&c.minTasks, "min-random-tasks", scenario.DefaultMinRandomTasks, "Fewest random tasks to start with")
	f.IntVar(&c.maxTasks, "max-random-tasks", scenario.DefaultMaxRandomTasks, "Most random tasks to start with")
	f.StringVar(&c.loggingConfig, "logging-config", "", "Logging configuration, e.g. <root>=DEBUG")
	f.StringVar(&c.metricsPath, "metrics", "", "Write live object metrics, taken before execution, to this file")
}

// Init is part of the cmd.Command interface.
func (c *runCommand) Init(args []string) error {
	c.setFlags = make(map[string]bool)
	c.flags.Visit(func(f *gnuflag.Flag) {
		c.setFlags[f.Name] = true
	})
	return cmd.CheckEmpty(args)
}

// settings merges the config file, if any, with the command line flags.
func (c *runCommand) settings(ctx *cmd.Context) (fileConfig, error) {
	var settings fileConfig
	if c.configFile.IsSet() {
		data, err := c.configFile.Read(ctx)
		if err != nil {
			return settings, errors.Annotate(err, "reading config")
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&settings); err != nil && err != io.EOF {
			return settings, errors.Annotatef(err, "parsing config %q", c.configFile.Path)
		}
	}

	if c.setFlags["seed"] {
		settings.Seed = &c.seed
	}
	if c.setFlags["min-random-tasks"] || settings.MinRandomTasks == nil {
		settings.MinRandomTasks = &c.minTasks
	}
	if c.setFlags["max-random-tasks"] || settings.MaxRandomTasks == nil {
		settings.MaxRandomTasks = &c.maxTasks
	}
	if c.setFlags["logging-config"] {
		settings.LoggingConfig = c.loggingConfig
	}
	if settings.Seed == nil {
		seed := uint64(c.clock.Now().UnixNano())
		settings.Seed = &seed
	}
	return settings, nil
}

// Run is part of the cmd.Command interface.
func (c *runCommand) Run(ctx *cmd.Context) error {
	settings, err := c.settings(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	if err := cmd.ConfigureLogging(settings.LoggingConfig); err != nil {
		return errors.Trace(err)
	}
	logger.Infof("using seed %d", *settings.Seed)

	registry := objects.NewRegistry()
	cfg := scenario.Config{
		Clock:          c.clock,
		Logger:         loggo.GetLogger("dequelist.scenario"),
		Registry:       registry,
		Rand:           rand.New(rand.NewPCG(*settings.Seed, *settings.Seed)),
		MinRandomTasks: *settings.MinRandomTasks,
		MaxRandomTasks: *settings.MaxRandomTasks,
	}
	if c.metricsPath != "" {
		cfg.OnBuilt = func() error {
			return writeMetrics(ctx.AbsPath(c.metricsPath), registry)
		}
	}

	report, err := scenario.Run(cfg)
	if err != nil {
		return errors.Trace(err)
	}
	return c.out.Write(ctx, report)
}

// writeMetrics writes the collector's current metrics to path in the
// Prometheus text exposition format.
func writeMetrics(path string, collector prometheus.Collector) (err error) {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(collector); err != nil {
		return errors.Trace(err)
	}
	families, err := reg.Gather()
	if err != nil {
		return errors.Trace(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = errors.Trace(closeErr)
		}
	}()
	for _, family := range families {
		if _, err = expfmt.MetricFamilyToText(f, family); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// formatText renders a report the way the demonstration prints it: the
// live object count, one line per executed task, then the final count.
func formatText(value any) ([]byte, error) {
	report, ok := value.(*scenario.Report)
	if !ok {
		return nil, errors.Errorf("expected *scenario.Report, got %T", value)
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "Total objects number: %d\n", report.InitialObjects)
	for _, line := range report.Results {
		fmt.Fprintln(&buf, line)
	}
	fmt.Fprintf(&buf, "Total objects number: %d", report.FinalObjects)
	return []byte(buf.String()), nil
}
