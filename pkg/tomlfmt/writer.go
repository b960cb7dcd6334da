// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tomlfmt

import (
	"fmt"
	"io"
)

type writer struct {
	writer io.Writer
	err    error
}

type writerChunk struct {
	Content string
	Indent  string
}

func newWriter(w io.Writer) *writer {
	return &writer{writer: w}
}

// AddContent writes one line. After the first failed write all further
// content is dropped and the failure is kept for Err.
func (w *writer) AddContent(chunk writerChunk) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.writer, "%s%s\n", chunk.Indent, chunk.Content)
}

func (w *writer) Err() error { return w.err }
