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

// Package grid pivots flat metric maps into display-ready tables. All cell
// values are rendered as text so consumers never see a mixed column.
package grid

import (
	"sort"
	"strconv"

	"github.com/psxlens/psxlens/data"
)

// DefaultMaxYears is the column truncation applied by the history views:
// only the five most recent periods are shown.
const DefaultMaxYears = 5

// Table is a rendered two-dimensional view. The first header is always the
// row-label column.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Pivot reshapes a flat map into a metric-by-year table. Only period-scoped
// entries participate; years become columns sorted descending (truncated to
// maxYears most recent when maxYears > 0) and rows are sorted by metric
// name. When no entry is period-scoped the map is returned as an
// untransformed metric/value listing instead of an empty grid.
func Pivot(flat *data.FlatMap, maxYears int) Table {
	if flat.IsEmpty() {
		return Table{}
	}

	type cell struct {
		metric string
		year   int
	}

	cells := make(map[cell]data.Value)
	metricSet := make(map[string]bool)
	yearSet := make(map[int]bool)

	flat.Each(func(key data.Key, value data.Value) {
		if !key.HasYear() {
			return
		}

		metric := key.Label()
		cells[cell{metric: metric, year: key.Year}] = value
		metricSet[metric] = true
		yearSet[key.Year] = true
	})

	if len(metricSet) == 0 {
		return keyValueListing(flat)
	}

	years := sortYearsDescending(yearSet, maxYears)

	metrics := make([]string, 0, len(metricSet))
	for metric := range metricSet {
		metrics = append(metrics, metric)
	}

	sort.Strings(metrics)

	headers := make([]string, 0, len(years)+1)
	headers = append(headers, "Metric")
	for _, year := range years {
		headers = append(headers, strconv.Itoa(year))
	}

	rows := make([][]string, 0, len(metrics))
	for _, metric := range metrics {
		row := make([]string, 0, len(years)+1)
		row = append(row, metric)

		for _, year := range years {
			if value, ok := cells[cell{metric: metric, year: year}]; ok {
				row = append(row, value.String())
			} else {
				row = append(row, "")
			}
		}

		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}
}

// keyValueListing renders the map as a plain two-column listing in
// insertion order.
func keyValueListing(flat *data.FlatMap) Table {
	rows := make([][]string, 0, flat.Len())

	flat.Each(func(key data.Key, value data.Value) {
		rows = append(rows, []string{key.String(), value.String()})
	})

	return Table{Headers: []string{"Metric", "Value"}, Rows: rows}
}

// KeyValue renders the map as a metric/value listing without attempting a
// pivot; used by the views whose keys are never period-scoped.
func KeyValue(flat *data.FlatMap) Table {
	if flat.IsEmpty() {
		return Table{}
	}

	return keyValueListing(flat)
}

func sortYearsDescending(yearSet map[int]bool, maxYears int) []int {
	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	if maxYears > 0 && len(years) > maxYears {
		years = years[:maxYears]
	}

	return years
}
