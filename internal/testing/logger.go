// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package testing

import (
	"fmt"
)

// NoopLogger is a logger that does nothing.
type NoopLogger struct{}

func (NoopLogger) Errorf(string, ...any)   {}
func (NoopLogger) Warningf(string, ...any) {}
func (NoopLogger) Infof(string, ...any)    {}
func (NoopLogger) Debugf(string, ...any)   {}

// CheckLog is an interface that can be used to log messages to a
// *testing.T or *check.C.
type CheckLog interface {
	Logf(string, ...any)
}

// CheckLogger is a logger that logs to a *testing.T or *check.C.
type CheckLogger struct {
	Log CheckLog
}

// NewCheckLogger returns a CheckLogger that logs to the given CheckLog.
func NewCheckLogger(log CheckLog) CheckLogger {
	return CheckLogger{Log: log}
}

func (c CheckLogger) Errorf(msg string, args ...any) {
	c.Log.Logf(fmt.Sprintf("ERROR: %s", msg), args...)
}
func (c CheckLogger) Warningf(msg string, args ...any) {
	c.Log.Logf(fmt.Sprintf("WARNING: %s", msg), args...)
}
func (c CheckLogger) Infof(msg string, args ...any) {
	c.Log.Logf(fmt.Sprintf("INFO: %s", msg), args...)
}
func (c CheckLogger) Debugf(msg string, args ...any) {
	c.Log.Logf(fmt.Sprintf("DEBUG: %s", msg), args...)
}

// RecordingLogger keeps every message it is given, formatted and prefixed
// with its level.
type RecordingLogger struct {
	Messages []string
}

func (r *RecordingLogger) record(level, msg string, args ...any) {
	r.Messages = append(r.Messages, level+": "+fmt.Sprintf(msg, args...))
}

func (r *RecordingLogger) Errorf(msg string, args ...any)   { r.record("ERROR", msg, args...) }
func (r *RecordingLogger) Warningf(msg string, args ...any) { r.record("WARNING", msg, args...) }
func (r *RecordingLogger) Infof(msg string, args ...any)    { r.record("INFO", msg, args...) }
func (r *RecordingLogger) Debugf(msg string, args ...any)   { r.record("DEBUG", msg, args...) }
