// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tomlfmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gaffs/combogen/pkg/orderedmap"
)

type Printer struct {
	writer *writer
	opts   PrinterOpts
}

type PrinterOpts struct {
	// Indent is added once per table nesting level.
	Indent string
	// KeyWidth is the minimum width keys are padded to. Tables with longer
	// keys pad to their longest key instead.
	KeyWidth int
}

func NewPrinter(writer io.Writer) *Printer {
	return NewPrinterWithOpts(writer, PrinterOpts{Indent: "  "})
}

func NewPrinterWithOpts(writer io.Writer, opts PrinterOpts) *Printer {
	return &Printer{newWriter(writer), opts}
}

func (p *Printer) Print(doc *orderedmap.Map) error {
	err := p.printTable(doc, nil, whitespace{}, p.writer)
	if err != nil {
		return err
	}
	return p.writer.Err()
}

func (p *Printer) PrintStr(doc *orderedmap.Map) (string, error) {
	buf := new(bytes.Buffer)
	writer := newWriter(buf)

	err := p.printTable(doc, nil, whitespace{}, writer)
	if err != nil {
		return "", err
	}
	return buf.String(), writer.Err()
}

// printTable writes key lines of table at ws, followed by every nested table
// (header at ws, contents one level deeper). TOML requires a table's own keys
// to precede its sub-tables, so nested tables are deferred.
func (p *Printer) printTable(table *orderedmap.Map, path toml.Key, ws whitespace, writer *writer) error {
	var nestedTables []orderedmap.MapItem
	keyWidth := p.keyWidth(table)

	err := table.IterateErr(func(key string, val interface{}) error {
		if nested, ok := val.(*orderedmap.Map); ok {
			nestedTables = append(nestedTables, orderedmap.MapItem{Key: key, Value: nested})
			return nil
		}

		leafVal, err := p.leafValue(val)
		if err != nil {
			return fmt.Errorf("Printing key '%s': %w", p.childPath(path, key), err)
		}

		writer.AddContent(writerChunk{
			Indent:  ws.Indent,
			Content: fmt.Sprintf("%-*s = %s", keyWidth, toml.Key{key}.String(), leafVal),
		})
		return nil
	})
	if err != nil {
		return err
	}

	for _, item := range nestedTables {
		nestedPath := p.childPath(path, item.Key)

		writer.AddContent(writerChunk{
			Indent:  ws.Indent,
			Content: "[" + nestedPath.String() + "]",
		})

		err := p.printTable(item.Value.(*orderedmap.Map), nestedPath, ws.NewIndented(p.opts.Indent), writer)
		if err != nil {
			return err
		}
	}

	return nil
}

func (*Printer) childPath(path toml.Key, key string) toml.Key {
	result := make(toml.Key, 0, len(path)+1)
	result = append(result, path...)
	return append(result, key)
}

func (p *Printer) keyWidth(table *orderedmap.Map) int {
	width := p.opts.KeyWidth
	table.Iterate(func(key string, val interface{}) {
		if _, ok := val.(*orderedmap.Map); ok {
			return
		}
		if keyLen := len(toml.Key{key}.String()); keyLen > width {
			width = keyLen
		}
	})
	return width
}

func (p *Printer) leafValue(val interface{}) (string, error) {
	switch typedVal := val.(type) {
	case int64:
		return strconv.FormatInt(typedVal, 10), nil

	case []int64:
		pieces := make([]string, len(typedVal))
		for i, item := range typedVal {
			pieces[i] = strconv.FormatInt(item, 10)
		}
		return "[" + strings.Join(pieces, ", ") + "]", nil

	case [][]int64:
		pieces := make([]string, len(typedVal))
		for i, item := range typedVal {
			piece, err := p.leafValue(item)
			if err != nil {
				return "", err
			}
			pieces[i] = piece
		}
		return "[" + strings.Join(pieces, ", ") + "]", nil

	default:
		return "", fmt.Errorf("Unsupported value type %T", val)
	}
}

type whitespace struct {
	Indent string
}

func (w whitespace) NewIndented(indentLvl string) whitespace {
	return whitespace{Indent: w.Indent + indentLvl}
}
