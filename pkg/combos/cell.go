// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package combos

import (
	"fmt"
)

type Cell struct {
	Level Level
	Lured bool
	Org   bool
}

// Path is the nested table path of the cell: level, then lured, then org.
func (c Cell) Path() []string {
	return []string{
		c.Level.Key(),
		AxisSegment(AxisLured, c.Lured),
		AxisSegment(AxisOrg, c.Org),
	}
}

func (c Cell) String() string {
	return fmt.Sprintf("level %s, %s, %s", c.Level,
		AxisSegment(AxisLured, c.Lured), AxisSegment(AxisOrg, c.Org))
}

// Cells enumerates levels, then lured, then org, false before true.
func Cells() []Cell {
	var result []Cell
	for _, lvl := range Levels() {
		for _, lured := range Bools {
			for _, org := range Bools {
				result = append(result, Cell{Level: lvl, Lured: lured, Org: org})
			}
		}
	}
	return result
}
