// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package tomlfmt prints a tree of *orderedmap.Map values as TOML.

Unlike a general purpose encoder, the Printer keeps key order exactly as
inserted, indents nested tables under their parents and pads keys so that
the "=" signs of a table line up.
*/
package tomlfmt
