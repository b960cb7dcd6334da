// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

const outputFilePerm os.FileMode = 0644

type OutputFile struct {
	relativePath string
	data         []byte
}

func NewOutputFile(relativePath string, data []byte) OutputFile {
	return OutputFile{relativePath, data}
}

func (f OutputFile) RelativePath() string { return f.relativePath }
func (f OutputFile) Bytes() []byte        { return f.data }

func (f OutputFile) Path(dirPath string) string {
	return filepath.Join(dirPath, f.relativePath)
}

// Create replaces the file at Path(dirPath) with the output. The data is
// written to a temporary file in the same directory, synced, then renamed
// over the destination, so readers never see a partially written file.
// The directory must already exist.
func (f OutputFile) Create(dirPath string) error {
	resultPath := f.Path(dirPath)

	err := renameio.WriteFile(resultPath, f.data, outputFilePerm)
	if err != nil {
		return fmt.Errorf("Writing output file '%s': %w", resultPath, err)
	}

	return nil
}
