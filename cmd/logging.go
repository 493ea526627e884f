// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

// LoggingConfigEnvKey names the environment variable holding the logging
// configuration applied at startup.
const LoggingConfigEnvKey = "DEQUELIST_LOGGING_CONFIG"

func init() {
	// If the environment key is empty, ConfigureLoggers returns nil and does
	// nothing.
	err := loggo.ConfigureLoggers(os.Getenv(LoggingConfigEnvKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR parsing %s: %s\n\n", LoggingConfigEnvKey, err)
	}
}

var logger = loggo.GetLogger("dequelist.cmd")

// ConfigureLogging applies a loggo configuration string such as
// "<root>=INFO;dequelist.scenario=DEBUG". An empty string changes nothing.
func ConfigureLogging(config string) error {
	if config == "" {
		return nil
	}
	return errors.Annotatef(loggo.ConfigureLoggers(config), "logging config %q", config)
}

func runNotifier(name string) {
	logger.Infof("running %s [%s %s]", name, runtime.Compiler, runtime.Version())
}
