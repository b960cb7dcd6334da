// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"github.com/gaffs/combogen/pkg/cmd/generate"
	"github.com/gaffs/combogen/pkg/cmd/ui"
	"github.com/gaffs/combogen/pkg/version"
	"github.com/spf13/cobra"
)

type CombogenOptions struct {
	UI        ui.UI
	OutputDir string
}

func NewDefaultCombogenOptions() *CombogenOptions {
	return &CombogenOptions{UI: ui.NewTTY(), OutputDir: "."}
}

func NewDefaultCombogenCmd() *cobra.Command {
	return NewCombogenCmd(NewDefaultCombogenOptions())
}

func NewCombogenCmd(o *CombogenOptions) *cobra.Command {
	generateOpts := generate.NewOptions(o.UI)
	generateOpts.OutputDir = o.OutputDir

	cmd := generate.NewCmd(generateOpts)

	cmd.Use = "combogen"
	cmd.Version = version.Version
	cmd.Short = "combogen writes a blank gag combo template"
	cmd.Long = `combogen writes a blank gag combo template.

The template (combos.toml in the working directory) holds one table per
cog level, lured and organic combination, each listing every gag track
with an all-zero placeholder for 1 to 4 toon combos.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions(o.UI)))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

// Run executes combogen with args and returns the process exit code.
// Failures are reported through the UI.
func Run(o *CombogenOptions, args []string) int {
	if args == nil {
		args = []string{}
	}

	command := NewCombogenCmd(o)
	command.SetArgs(args)

	err := command.Execute()
	if err != nil {
		o.UI.Errorf("combogen: Error: %s\n", uierrs.NewMultiLineError(err))
		return 1
	}

	return 0
}
