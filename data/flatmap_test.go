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
package data_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/psxlens/psxlens/data"
)

var _ = Describe("Key", func() {
	It("renders the composite display forms", func() {
		Expect(data.MetricKey("ROE").String()).To(Equal("ROE"))
		Expect(data.YearKey("ROE", 2023).String()).To(Equal("ROE_2023"))
		Expect(data.ItemKey("Assets", "Cash", 2023).String()).To(Equal("Assets_Cash_2023"))
	})

	It("keeps underscores inside labels intact", func() {
		key := data.YearKey("Net_Margin", 2022)
		Expect(key.Label()).To(Equal("Net_Margin"))
		Expect(key.Year).To(Equal(2022))
	})

	It("reports period scoping", func() {
		Expect(data.MetricKey("ROE").HasYear()).To(BeFalse())
		Expect(data.YearKey("ROE", 2023).HasYear()).To(BeTrue())
	})
})

var _ = Describe("FlatMap", func() {
	It("preserves insertion order", func() {
		m := data.NewFlatMap()
		m.SetNum(data.MetricKey("C"), 1)
		m.SetNum(data.MetricKey("A"), 2)
		m.SetNum(data.MetricKey("B"), 3)

		var order []string
		m.Each(func(key data.Key, _ data.Value) {
			order = append(order, key.Metric)
		})

		Expect(order).To(Equal([]string{"C", "A", "B"}))
	})

	It("overwrites on repeated keys without changing position", func() {
		m := data.NewFlatMap()
		m.SetNum(data.MetricKey("A"), 1)
		m.SetNum(data.MetricKey("B"), 2)
		m.SetNum(data.MetricKey("A"), 9)

		Expect(m.Len()).To(Equal(2))
		Expect(m.Number(data.MetricKey("A"))).To(Equal(9.0))
		Expect(m.Keys()[0]).To(Equal(data.MetricKey("A")))
	})

	It("reads absent keys as zero", func() {
		m := data.NewFlatMap()
		Expect(m.Number(data.MetricKey("missing"))).To(Equal(0.0))
	})

	It("treats a nil map as empty", func() {
		var m *data.FlatMap
		Expect(m.IsEmpty()).To(BeTrue())
		Expect(m.Len()).To(Equal(0))
	})
})

var _ = Describe("Value", func() {
	It("renders numbers without trailing zeros", func() {
		Expect(data.Num(12.5).String()).To(Equal("12.5"))
		Expect(data.Num(100).String()).To(Equal("100"))
	})

	It("keeps preformatted text", func() {
		v := data.Text("101.5-110.2")
		Expect(v.IsText()).To(BeTrue())
		Expect(v.String()).To(Equal("101.5-110.2"))
	})

	It("coerces text when read numerically", func() {
		Expect(data.Text("1,500").Float()).To(Equal(1500.0))
		Expect(data.Text("12-Dec-2025").Float()).To(Equal(0.0))
	})
})
