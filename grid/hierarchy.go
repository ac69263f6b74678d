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
package grid

import (
	"strconv"
	"strings"

	"github.com/psxlens/psxlens/data"
)

// itemsBucket collects period-scoped entries that carry no category label.
// Its rows get no header line and no indentation; the label is a display
// convention only.
const itemsBucket = "Items"

// itemIndent visually nests line items under their category header.
const itemIndent = "      "

// PivotHierarchical reshapes a flat map into a category/item/year table.
// Entries without a period are discarded. For each category, in encounter
// order, one header row (upper-cased label, blank data columns) precedes
// its item rows; uncategorized items are grouped into an implicit bucket
// without a header. Year columns are sorted descending and truncated to
// maxYears most recent; missing cells render as the literal zero.
func PivotHierarchical(flat *data.FlatMap, maxYears int) Table {
	if flat.IsEmpty() {
		return Table{}
	}

	type slot struct {
		category string
		item     string
	}

	var (
		categoryOrder []string
		itemOrder     = make(map[string][]string)
		values        = make(map[slot]map[int]data.Value)
		yearSet       = make(map[int]bool)
	)

	flat.Each(func(key data.Key, value data.Value) {
		if !key.HasYear() {
			return
		}

		category := key.Category
		if category == "" {
			category = itemsBucket
		}

		s := slot{category: category, item: key.Metric}

		if _, seen := values[s]; !seen {
			if len(itemOrder[category]) == 0 {
				categoryOrder = append(categoryOrder, category)
			}

			itemOrder[category] = append(itemOrder[category], key.Metric)
			values[s] = make(map[int]data.Value)
		}

		values[s][key.Year] = value
		yearSet[key.Year] = true
	})

	if len(categoryOrder) == 0 {
		return Table{}
	}

	years := sortYearsDescending(yearSet, maxYears)

	headers := make([]string, 0, len(years)+1)
	headers = append(headers, "Metric")
	for _, year := range years {
		headers = append(headers, strconv.Itoa(year))
	}

	rows := make([][]string, 0, len(values)+len(categoryOrder))

	for _, category := range categoryOrder {
		if category != itemsBucket {
			header := make([]string, len(years)+1)
			header[0] = strings.ToUpper(category)
			rows = append(rows, header)
		}

		for _, item := range itemOrder[category] {
			label := item
			if category != itemsBucket {
				label = itemIndent + item
			}

			row := make([]string, 0, len(years)+1)
			row = append(row, label)

			cells := values[slot{category: category, item: item}]
			for _, year := range years {
				if value, ok := cells[year]; ok {
					row = append(row, value.String())
				} else {
					row = append(row, "0")
				}
			}

			rows = append(rows, row)
		}
	}

	return Table{Headers: headers, Rows: rows}
}
