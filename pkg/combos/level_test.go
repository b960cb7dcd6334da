// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package combos_test

import (
	"strconv"
	"testing"

	"github.com/gaffs/combogen/pkg/combos"
	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	cases := []struct {
		raw      int
		expected combos.Level
		key      string
		str      string
	}{
		{1, combos.Level{Number: 1}, "level_1", "1"},
		{12, combos.Level{Number: 12}, "level_12", "12"},
		{13, combos.Level{Number: 9, V2: true}, "level_9_v2", "9 v2.0"},
		{16, combos.Level{Number: 12, V2: true}, "level_12_v2", "12 v2.0"},
	}

	for _, tc := range cases {
		lvl, err := combos.NewLevel(tc.raw)
		require.NoError(t, err)
		require.Equal(t, tc.expected, lvl)
		require.Equal(t, tc.key, lvl.Key())
		require.Equal(t, tc.str, lvl.String())
	}
}

func TestNewLevelOutOfRange(t *testing.T) {
	for _, raw := range []int{-1, 0, 17} {
		_, err := combos.NewLevel(raw)
		require.EqualError(t, err, "Expected level to be between 1 and 16, but was "+strconv.Itoa(raw))
	}
}

func TestLevels(t *testing.T) {
	levels := combos.Levels()
	require.Len(t, levels, combos.NumLevels)

	var keys []string
	for _, lvl := range levels {
		keys = append(keys, lvl.Key())
	}

	require.Equal(t, []string{
		"level_1", "level_2", "level_3", "level_4",
		"level_5", "level_6", "level_7", "level_8",
		"level_9", "level_10", "level_11", "level_12",
		"level_9_v2", "level_10_v2", "level_11_v2", "level_12_v2",
	}, keys)
}

