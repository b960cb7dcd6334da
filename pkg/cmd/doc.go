// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to combogen's commands -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for executing
combogen).

For a list of commands run:

	$ combogen help

The default command writes the template (see package generate).
*/
package cmd
