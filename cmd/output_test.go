// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cmd_test

import (
	"os"
	"path/filepath"

	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	cmdtesting "github.com/juju/dequelist/cmd/testing"
)

type outputSuite struct{}

var _ = gc.Suite(&outputSuite{})

type record struct {
	Name  string   `yaml:"name" json:"name"`
	Items []string `yaml:"items" json:"items"`
}

var value = record{Name: "list", Items: []string{"a", "b"}}

func (s *outputSuite) TestDefaultYaml(c *gc.C) {
	ctx, code := cmdtesting.RunCommand(c, &TestCommand{Name: "verb", Value: value}, "--option", "write")
	c.Assert(code, gc.Equals, 0)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, "name: list\nitems:\n    - a\n    - b\n")
}

func (s *outputSuite) TestJson(c *gc.C) {
	ctx, code := cmdtesting.RunCommand(c, &TestCommand{Name: "verb", Value: value}, "--option", "write", "--format", "json")
	c.Assert(code, gc.Equals, 0)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, `{"name":"list","items":["a","b"]}`+"\n")
}

func (s *outputSuite) TestNilWritesNothing(c *gc.C) {
	ctx, code := cmdtesting.RunCommand(c, &TestCommand{Name: "verb"}, "--option", "write")
	c.Assert(code, gc.Equals, 0)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, "")
}

func (s *outputSuite) TestUnknownFormat(c *gc.C) {
	ctx, code := cmdtesting.RunCommand(c, &TestCommand{Name: "verb"}, "--format", "xml")
	c.Check(code, gc.Equals, 2)
	c.Check(cmdtesting.Stderr(ctx), gc.Matches, `(?s)ERROR .*unknown format "xml"\n.*`)
}

func (s *outputSuite) TestOutputFile(c *gc.C) {
	path := filepath.Join(c.MkDir(), "out.json")
	com := &TestCommand{Name: "verb", Value: value}
	ctx, code := cmdtesting.RunCommand(c, com, "--option", "write", "-o", path, "--format", "json")
	c.Assert(code, gc.Equals, 0)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, "")

	data, err := os.ReadFile(path)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(string(data), gc.Equals, `{"name":"list","items":["a","b"]}`+"\n")
}
