// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"bytes"

	"github.com/gaffs/combogen/pkg/combos"
	"github.com/gaffs/combogen/pkg/files"
	"github.com/gaffs/combogen/pkg/orderedmap"
	"github.com/gaffs/combogen/pkg/tomlfmt"
)

// Filename is where the template is written, relative to the output directory.
const Filename = "combos.toml"

const indentLvl = "  "

// Build assembles the template document with a placeholder for every gag in
// every cell.
func Build() *orderedmap.Map {
	doc := orderedmap.NewMap()

	for _, cell := range combos.Cells() {
		table := doc
		for _, segment := range cell.Path() {
			table = table.GetOrCreateMap(segment)
		}
		for _, gag := range combos.Gags {
			table.Set(gag.String(), combos.Placeholder())
		}
	}

	return doc
}

func Emit() ([]byte, error) {
	var buf bytes.Buffer

	printer := tomlfmt.NewPrinterWithOpts(&buf, tomlfmt.PrinterOpts{
		Indent:   indentLvl,
		KeyWidth: combos.GagWidth(),
	})

	err := printer.Print(Build())
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func OutputFile() (files.OutputFile, error) {
	data, err := Emit()
	if err != nil {
		return files.OutputFile{}, err
	}
	return files.NewOutputFile(Filename, data), nil
}
