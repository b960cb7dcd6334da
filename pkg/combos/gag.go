// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package combos

type Gag string

const (
	GagThrow  Gag = "throw"
	GagSquirt Gag = "squirt"
	GagDrop   Gag = "drop"
	GagSound  Gag = "sound"
)

// Gags is the order gag keys appear in within every cell.
var Gags = []Gag{GagThrow, GagSquirt, GagDrop, GagSound}

func (g Gag) String() string { return string(g) }

// GagWidth is the length of the longest gag name; keys are padded to it.
func GagWidth() int {
	var width int
	for _, gag := range Gags {
		if len(gag) > width {
			width = len(gag)
		}
	}
	return width
}
