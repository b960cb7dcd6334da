// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/gaffs/combogen/pkg/combos"
	"github.com/gaffs/combogen/pkg/orderedmap"
	"github.com/gaffs/combogen/pkg/template"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/require"
)

const placeholderStr = "[[0], [0, 0], [0, 0, 0], [0, 0, 0, 0]]"

func TestEmitMatchesFiletest(t *testing.T) {
	expected, err := os.ReadFile(filepath.Join("filetests", "combos.toml"))
	require.NoError(t, err)

	result, err := template.Emit()
	require.NoError(t, err)

	if string(result) != string(expected) {
		diff := difflib.PPDiff(strings.Split(string(expected), "\n"), strings.Split(string(result), "\n"))
		t.Fatalf("Not equal; diff expected...actual:\n%v", diff)
	}
}

func TestEmitIsDeterministic(t *testing.T) {
	first, err := template.Emit()
	require.NoError(t, err)

	second, err := template.Emit()
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEmitLevelTables(t *testing.T) {
	result := emitStr(t)

	headerRe := regexp.MustCompile(`(?m)^\[(level_\d+(_v2)?)\]$`)
	var levelKeys []string
	for _, match := range headerRe.FindAllStringSubmatch(result, -1) {
		levelKeys = append(levelKeys, match[1])
	}

	var expected []string
	for _, lvl := range combos.Levels() {
		expected = append(expected, lvl.Key())
	}
	require.Equal(t, expected, levelKeys)

	require.Contains(t, result, "[level_9_v2]\n")
	require.NotContains(t, result, "level_13")
	require.NotContains(t, result, "level_16")
}

func TestEmitAxisTablesAppearOnce(t *testing.T) {
	result := emitStr(t)

	for _, lvl := range combos.Levels() {
		for _, lured := range combos.Bools {
			for _, org := range combos.Bools {
				cell := combos.Cell{Level: lvl, Lured: lured, Org: org}
				header := "[" + strings.Join(cell.Path(), ".") + "]\n"
				require.Equal(t, 1, strings.Count(result, header), "header %s", header)
			}
		}
	}
}

func TestEmitGagLines(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(emitStr(t), "\n"), "\n")

	var keyLines []string
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "[") {
			keyLines = append(keyLines, line)
		}
	}
	require.Len(t, keyLines, len(combos.Cells())*len(combos.Gags))

	for i, line := range keyLines {
		gag := combos.Gags[i%len(combos.Gags)]
		expected := "      " + gag.String() + strings.Repeat(" ", combos.GagWidth()-len(gag)) + " = " + placeholderStr
		require.Equal(t, expected, line)
		require.Equal(t, 6+combos.GagWidth(), strings.Index(line, " = "))
	}

	require.Contains(t, lines, "      drop   = [[0], [0, 0], [0, 0, 0], [0, 0, 0, 0]]")
}

func TestEmitDecodesAsTOML(t *testing.T) {
	var decoded map[string]map[string]map[string]map[string][][]int64
	meta, err := toml.Decode(emitStr(t), &decoded)
	require.NoError(t, err)
	require.Empty(t, meta.Undecoded())

	require.Len(t, decoded, combos.NumLevels)

	for _, cell := range combos.Cells() {
		path := cell.Path()
		gags := decoded[path[0]][path[1]][path[2]]
		require.Len(t, gags, len(combos.Gags), "cell %s", cell)

		for _, gag := range combos.Gags {
			require.Equal(t, combos.Placeholder(), gags[gag.String()], "cell %s", cell)
		}
	}

	// First cell of level 9 v2.0 directly follows the last cell of level 12
	var keys []string
	for _, key := range meta.Keys() {
		keys = append(keys, key.String())
	}
	idx := indexOf(keys, "level_12.lured.org.sound")
	require.NotEqual(t, -1, idx)
	require.Equal(t, "level_9_v2", keys[idx+1])
}

func TestBuild(t *testing.T) {
	doc := template.Build()
	require.Equal(t, combos.NumLevels, doc.Len())

	lvl, found := doc.Get("level_1")
	require.True(t, found)

	require.Equal(t, []string{"nonlured", "lured"}, lvl.(*orderedmap.Map).Keys())
}

func TestOutputFile(t *testing.T) {
	file, err := template.OutputFile()
	require.NoError(t, err)
	require.Equal(t, "combos.toml", file.RelativePath())

	expected, err := template.Emit()
	require.NoError(t, err)
	require.Equal(t, expected, file.Bytes())
}

func emitStr(t *testing.T) string {
	t.Helper()
	result, err := template.Emit()
	require.NoError(t, err)
	return string(result)
}

func indexOf(items []string, item string) int {
	for i, val := range items {
		if val == item {
			return i
		}
	}
	return -1
}
