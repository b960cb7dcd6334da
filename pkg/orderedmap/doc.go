// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a string-keyed map where the order of keys is
maintained (unlike the native Go map).

The combo template is assembled as a tree of these maps so that emitting it
always yields the same bytes.
*/
package orderedmap
