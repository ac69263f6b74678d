// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package data

import (
	"strconv"
	"strings"
)

// Key identifies one cell of a FlatMap. Keys are structured from the point
// of extraction onward; the underscore-joined display form is only produced
// at rendering boundaries, so metric labels that themselves contain
// underscores never get misparsed.
type Key struct {
	// Category is the optional grouping label carried by two-level
	// statement data (balance sheet sections). Empty for flat sources.
	Category string

	// Metric is the canonical metric or line-item name.
	Metric string

	// Year scopes the value to one period. Zero marks a latest-value
	// convenience field or any other non-period entry.
	Year int
}

// Metric builds a bare metric key.
func MetricKey(metric string) Key {
	return Key{Metric: metric}
}

// YearKey builds a metric key scoped to one period.
func YearKey(metric string, year int) Key {
	return Key{Metric: metric, Year: year}
}

// ItemKey builds a two-level category/line-item key scoped to one period.
func ItemKey(category, item string, year int) Key {
	return Key{Category: category, Metric: item, Year: year}
}

// HasYear reports whether the key is scoped to a period.
func (k Key) HasYear() bool {
	return k.Year > 0
}

// Label returns the display label without the period token.
func (k Key) Label() string {
	if k.Category == "" {
		return k.Metric
	}

	return k.Category + "_" + k.Metric
}

// String renders the composite display form ("Metric", "Metric_Year" or
// "Category_Item_Year").
func (k Key) String() string {
	parts := make([]string, 0, 3)
	if k.Category != "" {
		parts = append(parts, k.Category)
	}

	parts = append(parts, k.Metric)

	if k.Year > 0 {
		parts = append(parts, strconv.Itoa(k.Year))
	}

	return strings.Join(parts, "_")
}

// Value is a scalar cell: either a number or a preformatted text fragment
// (range strings, timestamps). Numbers stay numeric until rendering.
type Value struct {
	text   string
	num    float64
	isText bool
}

// Num wraps a numeric value.
func Num(v float64) Value {
	return Value{num: v}
}

// Text wraps a display string.
func Text(s string) Value {
	return Value{text: s, isText: true}
}

// Float returns the numeric form of the value; text values coerce through
// CleanNumber, so a purely textual cell reads as zero.
func (v Value) Float() float64 {
	if v.isText {
		return CleanNumber(v.text)
	}

	return v.num
}

// IsText reports whether the value carries a preformatted string.
func (v Value) IsText() bool {
	return v.isText
}

func (v Value) String() string {
	if v.isText {
		return v.text
	}

	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

// FlatMap is an insertion-ordered mapping from structured keys to scalar
// values; the common intermediate form between extraction and pivoting.
// Later writes for an existing key overwrite the value but keep the key's
// original position.
type FlatMap struct {
	keys   []Key
	index  map[Key]int
	values []Value
}

func NewFlatMap() *FlatMap {
	return &FlatMap{index: make(map[Key]int)}
}

// Set writes a value under key, last write wins.
func (m *FlatMap) Set(key Key, value Value) {
	if pos, ok := m.index[key]; ok {
		m.values[pos] = value
		return
	}

	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// SetNum writes a numeric value under key.
func (m *FlatMap) SetNum(key Key, value float64) {
	m.Set(key, Num(value))
}

// Get returns the value stored under key.
func (m *FlatMap) Get(key Key) (Value, bool) {
	pos, ok := m.index[key]
	if !ok {
		return Value{}, false
	}

	return m.values[pos], true
}

// Number returns the numeric value stored under key, or zero when the key
// is absent. Downstream aggregate computations rely on the zero default so
// an empty source map never errors.
func (m *FlatMap) Number(key Key) float64 {
	value, ok := m.Get(key)
	if !ok {
		return 0
	}

	return value.Float()
}

// Len returns the number of entries.
func (m *FlatMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// IsEmpty reports whether the map holds no entries.
func (m *FlatMap) IsEmpty() bool {
	return m.Len() == 0
}

// Each visits entries in insertion order.
func (m *FlatMap) Each(visit func(Key, Value)) {
	if m == nil {
		return
	}

	for i, key := range m.keys {
		visit(key, m.values[i])
	}
}

// Keys returns the keys in insertion order.
func (m *FlatMap) Keys() []Key {
	if m == nil {
		return nil
	}

	keys := make([]Key, len(m.keys))
	copy(keys, m.keys)

	return keys
}
