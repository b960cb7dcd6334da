// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"github.com/gaffs/combogen/pkg/files"
)

// UI reports progress on stdout and failures on stderr.
type UI interface {
	Printf(string, ...interface{})
	Errorf(string, ...interface{})
}

var _ files.UI = UI(nil)
