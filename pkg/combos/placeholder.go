// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package combos

// MaxToons is the largest party size; placeholders hold one row per size.
const MaxToons = 4

// Placeholder returns a fresh [[0], [0, 0], [0, 0, 0], [0, 0, 0, 0]], the
// i-th row having one slot per toon in an i-toon combo.
func Placeholder() [][]int64 {
	result := make([][]int64, MaxToons)
	for i := range result {
		result[i] = make([]int64, i+1)
	}
	return result
}
