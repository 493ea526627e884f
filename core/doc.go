// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

/*
Package core exists to hold the data structures and pure logic the rest of
the tree builds on.

It is worth being clear about what should *not* go here:

  - nothing that reads or writes files, talks to a network, or otherwise
    performs I/O;
  - nothing concerned with command line handling or output formatting;
  - nothing that logs.

...and more generally, when adding to core:

  - it's fine to import from any subpackage of "github.com/juju/dequelist/core"
  - but never import from any other subpackage of "github.com/juju/dequelist"
  - shared state, such as a live object registry, is created by the caller
    and passed in; core packages hold no mutable globals.
*/
package core
