// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package combos holds the fixed enumerations a combo template is built from:
gag tracks, cog levels (with v2.0 cogs folded onto levels 9 through 12), the
lured and organic axes, and the all-zero placeholder value.

A Cell is one point in level × lured × organic space; Cells lists them in the
order they appear in the emitted template.
*/
package combos
