// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for writing generated output to filesystem
files and directories.

Output is always written atomically: a destination either keeps its previous
contents or holds the complete new ones.
*/
package files
