// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
combogen.

Packages are kept small and layered; each depends on the others only as much
as it needs to. Below, each package is named alongside its coupling with the
other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

combogen is built as a single command-line tool:

	./cmd/combogen

# Commands

The root command writes the template; "version" prints the build version.

	(1) => pkg/cmd => (3)
	(1) => pkg/cmd/generate => (3)

# Template

The template is a tree of ordered tables built from fixed enumerations and
printed as TOML.

	(1) => pkg/template => (4)
	(1) => pkg/combos => (0)
	(1) => pkg/tomlfmt => (1)

# Utilities

	(3) => pkg/files => (0)
	(2) => pkg/cmd/ui => (1)
	(2) => pkg/orderedmap => (0)
	(1) => pkg/version => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/cmd/generate
	- pkg/cmd/ui
	- pkg/version
	pkg/cmd/generate:
	- pkg/cmd/ui
	- pkg/files
	- pkg/template
	pkg/template:
	- pkg/combos
	- pkg/files
	- pkg/orderedmap
	- pkg/tomlfmt
	pkg/tomlfmt:
	- pkg/orderedmap
	pkg/cmd/ui:
	- pkg/files
*/
package pkg
