// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package combos

const (
	AxisLured = "lured"
	AxisOrg   = "org"
)

// Bools is the iteration order of both axes.
var Bools = []bool{false, true}

// AxisSegment names one side of an axis: "lured" or "nonlured".
func AxisSegment(name string, val bool) string {
	if val {
		return name
	}
	return "non" + name
}
