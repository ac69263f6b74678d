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
package grid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/psxlens/psxlens/data"
	"github.com/psxlens/psxlens/grid"
)

var _ = Describe("Pivot", func() {
	It("returns an empty table for an empty map", func() {
		Expect(grid.Pivot(data.NewFlatMap(), grid.DefaultMaxYears).Empty()).To(BeTrue())
	})

	It("round-trips metrics and years exactly", func() {
		m := data.NewFlatMap()
		m.SetNum(data.YearKey("ROE", 2022), 15)
		m.SetNum(data.YearKey("ROE", 2023), 18)
		m.SetNum(data.YearKey("EPS", 2023), 4.2)

		table := grid.Pivot(m, 0)

		Expect(table.Headers).To(Equal([]string{"Metric", "2023", "2022"}))

		labels := make([]string, 0, len(table.Rows))
		for _, row := range table.Rows {
			labels = append(labels, row[0])
		}

		Expect(labels).To(Equal([]string{"EPS", "ROE"}))
	})

	It("orders year columns strictly descending", func() {
		m := data.NewFlatMap()
		m.SetNum(data.YearKey("EPS", 2019), 1)
		m.SetNum(data.YearKey("EPS", 2023), 2)
		m.SetNum(data.YearKey("EPS", 2021), 3)

		table := grid.Pivot(m, 0)
		Expect(table.Headers).To(Equal([]string{"Metric", "2023", "2021", "2019"}))
	})

	It("truncates to the five most recent years", func() {
		m := data.NewFlatMap()
		for year := 2016; year <= 2023; year++ {
			m.SetNum(data.YearKey("Sales", year), float64(year))
		}

		table := grid.Pivot(m, grid.DefaultMaxYears)
		Expect(table.Headers).To(Equal([]string{"Metric", "2023", "2022", "2021", "2020", "2019"}))
	})

	It("excludes latest-value convenience entries from the pivot", func() {
		m := data.NewFlatMap()
		m.SetNum(data.MetricKey("ROE"), 18)
		m.SetNum(data.YearKey("ROE", 2023), 18)

		table := grid.Pivot(m, 0)
		Expect(table.Rows).To(HaveLen(1))
		Expect(table.Rows[0]).To(Equal([]string{"ROE", "18"}))
	})

	It("renders all cells as text with blanks for missing periods", func() {
		m := data.NewFlatMap()
		m.SetNum(data.YearKey("EPS", 2023), 4.5)
		m.SetNum(data.YearKey("DPS", 2022), 2)

		table := grid.Pivot(m, 0)
		Expect(table.Rows).To(ContainElement([]string{"DPS", "", "2"}))
		Expect(table.Rows).To(ContainElement([]string{"EPS", "4.5", ""}))
	})

	It("falls back to a metric/value listing when no key is period-scoped", func() {
		m := data.NewFlatMap()
		m.SetNum(data.MetricKey("Revenue Growth"), 12.5)
		m.SetNum(data.MetricKey("Net Profit Growth"), 8)

		table := grid.Pivot(m, grid.DefaultMaxYears)
		Expect(table.Headers).To(Equal([]string{"Metric", "Value"}))
		Expect(table.Rows).To(Equal([][]string{
			{"Revenue Growth", "12.5"},
			{"Net Profit Growth", "8"},
		}))
	})

	It("yields the same listing no matter how often it is re-pivoted", func() {
		m := data.NewFlatMap()
		m.SetNum(data.MetricKey("Industry_ROE"), 14)

		first := grid.Pivot(m, grid.DefaultMaxYears)
		second := grid.Pivot(m, grid.DefaultMaxYears)
		Expect(second).To(Equal(first))
	})
})

var _ = Describe("KeyValue", func() {
	It("lists entries in insertion order", func() {
		m := data.NewFlatMap()
		m.SetNum(data.MetricKey("B"), 2)
		m.SetNum(data.MetricKey("A"), 1)

		table := grid.KeyValue(m)
		Expect(table.Rows).To(Equal([][]string{{"B", "2"}, {"A", "1"}}))
	})

	It("returns an empty table for an empty map", func() {
		Expect(grid.KeyValue(data.NewFlatMap()).Empty()).To(BeTrue())
	})
})
