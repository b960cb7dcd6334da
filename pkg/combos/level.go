// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package combos

import (
	"fmt"
	"strconv"
)

const (
	// MaxLevel is the highest regular cog level.
	MaxLevel = 12
	// NumLevels counts regular levels plus the v2.0 ones.
	NumLevels = 16

	v2Offset = 4
)

type Level struct {
	Number int
	V2     bool
}

// NewLevel maps a raw tier (1..16) onto a level. Tiers above MaxLevel are
// v2.0 cogs and share numbers 9..12 with the regular ones.
func NewLevel(raw int) (Level, error) {
	if raw < 1 || raw > NumLevels {
		return Level{}, fmt.Errorf("Expected level to be between 1 and %d, but was %d", NumLevels, raw)
	}
	if raw > MaxLevel {
		return Level{Number: raw - v2Offset, V2: true}, nil
	}
	return Level{Number: raw}, nil
}

// Levels returns all levels in raw tier order.
func Levels() []Level {
	var result []Level
	for raw := 1; raw <= NumLevels; raw++ {
		lvl, err := NewLevel(raw)
		if err != nil {
			panic(fmt.Sprintf("Internal: %s", err))
		}
		result = append(result, lvl)
	}
	return result
}

// Key is the table name of the level, e.g. level_9 or level_9_v2.
func (l Level) Key() string {
	key := "level_" + strconv.Itoa(l.Number)
	if l.V2 {
		key += "_v2"
	}
	return key
}

func (l Level) String() string {
	if l.V2 {
		return fmt.Sprintf("%d v2.0", l.Number)
	}
	return strconv.Itoa(l.Number)
}
