// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/gaffs/combogen/pkg/cmd"
)

func main() {
	os.Exit(cmd.Run(cmd.NewDefaultCombogenOptions(), os.Args[1:]))
}
