// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package generate implements the default command: writing the blank combo
template to the working directory.

generate.Options carries the command settings and implements the command;
RunWithoutWriting renders the output without touching the filesystem.
*/
package generate
