// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"github.com/gaffs/combogen/pkg/cmd/ui"
	"github.com/gaffs/combogen/pkg/files"
	"github.com/gaffs/combogen/pkg/template"
	"github.com/spf13/cobra"
)

type Options struct {
	OutputDir string

	ui ui.UI
}

type Output struct {
	Files []files.OutputFile
	Err   error
}

func NewOptions(ui ui.UI) *Options {
	return &Options{OutputDir: ".", ui: ui}
}

func NewCmd(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write blank combo template to " + template.Filename,
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	return cmd
}

func (o *Options) Run() error {
	out := o.RunWithoutWriting()
	if out.Err != nil {
		return out.Err
	}

	return files.NewOutputDirectory(o.OutputDir, out.Files, o.ui).Write()
}

// RunWithoutWriting renders the output files without touching the filesystem.
func (o *Options) RunWithoutWriting() Output {
	file, err := template.OutputFile()
	if err != nil {
		return Output{Err: err}
	}
	return Output{Files: []files.OutputFile{file}}
}
