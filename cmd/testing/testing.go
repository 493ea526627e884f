// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package testing

import (
	"bytes"
	"io"

	gc "gopkg.in/check.v1"

	"github.com/juju/dequelist/cmd"
)

// Context returns a command context rooted in a fresh temporary directory,
// with buffers for its standard streams.
func Context(c *gc.C) *cmd.Context {
	return &cmd.Context{
		Dir:    c.MkDir(),
		Stdin:  &bytes.Buffer{},
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}
}

// NullContext returns a command context that discards all output.
func NullContext(c *gc.C) *cmd.Context {
	return &cmd.Context{
		Dir:    c.MkDir(),
		Stdin:  io.LimitReader(nil, 0),
		Stdout: io.Discard,
		Stderr: io.Discard,
	}
}

// Stdout returns what has been written to the context's stdout buffer.
func Stdout(ctx *cmd.Context) string {
	return ctx.Stdout.(*bytes.Buffer).String()
}

// Stderr returns what has been written to the context's stderr buffer.
func Stderr(ctx *cmd.Context) string {
	return ctx.Stderr.(*bytes.Buffer).String()
}

// RunCommand runs com through cmd.Main with args in a buffered context
// and returns the context together with the exit code.
func RunCommand(c *gc.C, com cmd.Command, args ...string) (*cmd.Context, int) {
	ctx := Context(c)
	code := cmd.Main(com, ctx, args)
	return ctx, code
}

// HelpText returns a command's formatted help text.
func HelpText(com cmd.Command) string {
	buff := &bytes.Buffer{}
	cmd.PrintUsage(com, buff)
	return buff.String()
}
