// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"
)

type TTY struct {
	stdout io.Writer
	stderr io.Writer
}

var _ UI = TTY{}

func NewTTY() TTY {
	return TTY{os.Stdout, os.Stderr}
}

// NewCustomWriterTTY is NewTTY with stdout and stderr redirected; nil
// writers fall back to the process streams.
func NewCustomWriterTTY(stdout, stderr io.Writer) TTY {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return TTY{stdout, stderr}
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.stdout, str, args...)
}

func (t TTY) Errorf(str string, args ...interface{}) {
	fmt.Fprintf(t.stderr, str, args...)
}
