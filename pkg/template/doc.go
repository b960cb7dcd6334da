// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package template builds the blank combo template and renders it as TOML.

Every cell gets its own table nested as level, then lured, then org:

	[level_1]
	  [level_1.nonlured]
	    [level_1.nonlured.nonorg]
	      throw  = [[0], [0, 0], [0, 0, 0], [0, 0, 0, 0]]
	      ...

Emit is deterministic: the same bytes come out on every call.
*/
package template
