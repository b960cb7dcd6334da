// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"encoding/json"
)

type Map struct {
	items []MapItem
}

type MapItem struct {
	Key   string
	Value interface{}
}

func NewMap() *Map {
	return &Map{}
}

// Set replaces the value of an existing key in place (keeping its position)
// or appends a new item at the end.
func (m *Map) Set(key string, value interface{}) {
	for i, item := range m.items {
		if item.Key == key {
			item.Value = value
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

func (m *Map) Get(key string) (interface{}, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

// GetOrCreateMap returns the nested map stored under key, adding an empty one
// when the key is missing. Panics if key holds something other than a *Map.
func (m *Map) GetOrCreateMap(key string) *Map {
	val, found := m.Get(key)
	if !found {
		nested := NewMap()
		m.Set(key, nested)
		return nested
	}
	nested, ok := val.(*Map)
	if !ok {
		panic("Expected key '" + key + "' to hold *orderedmap.Map")
	}
	return nested
}

func (m *Map) Keys() (keys []string) {
	m.Iterate(func(k string, _ interface{}) {
		keys = append(keys, k)
	})
	return
}

func (m *Map) Iterate(iterFunc func(k string, v interface{})) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map) IterateErr(iterFunc func(k string, v interface{}) error) error {
	for _, item := range m.items {
		err := iterFunc(item.Key, item.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Map) Len() int { return len(m.items) }

// Map is printed through tomlfmt only; direct marshaling is disallowed
var _ []json.Marshaler = []json.Marshaler{&Map{}}

func (*Map) MarshalJSON() ([]byte, error) { panic("Unexpected marshaling of *orderedmap.Map") }
