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
package report

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/psxlens/psxlens/data"
)

// MetricRow is one CSV line of an exported section: the composite display
// key and its rendered value.
type MetricRow struct {
	Metric string `csv:"metric"`
	Value  string `csv:"value"`
}

// MetricRows serializes a flat map into CSV rows in insertion order. Keys
// take their composite display form at this boundary.
func MetricRows(flat *data.FlatMap) []*MetricRow {
	rows := make([]*MetricRow, 0, flat.Len())

	flat.Each(func(key data.Key, value data.Value) {
		rows = append(rows, &MetricRow{Metric: key.String(), Value: value.String()})
	})

	return rows
}

// WriteCSV writes a flat map to w as CSV.
func WriteCSV(w io.Writer, flat *data.FlatMap) error {
	return gocsv.Marshal(MetricRows(flat), w)
}
