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
package report_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/psxlens/psxlens/data"
	"github.com/psxlens/psxlens/foundation"
	"github.com/psxlens/psxlens/report"
)

func emptyFoundation(ticker string) *foundation.Foundation {
	return &foundation.Foundation{
		Ticker:    ticker,
		FetchedAt: time.Now(),

		Financials: data.NewFlatMap(),
		Market:     data.NewFlatMap(),
		Growth:     data.NewFlatMap(),
		Industry:   data.NewFlatMap(),
		StockData:  data.NewFlatMap(),
		Valuation:  data.NewFlatMap(),

		AnnualIncome:     data.NewFlatMap(),
		QuarterlyIncome:  data.NewFlatMap(),
		AnnualBalance:    data.NewFlatMap(),
		QuarterlyBalance: data.NewFlatMap(),
	}
}

var _ = Describe("Markdown", func() {
	It("opens with the ticker heading", func() {
		doc := report.Markdown(emptyFoundation("OGDC"))
		Expect(doc).To(HavePrefix("# OGDC\n"))
	})

	It("marks every empty section instead of dropping it", func() {
		doc := report.Markdown(emptyFoundation("OGDC"))

		Expect(doc).To(ContainSubstring("## Financial History"))
		Expect(doc).To(ContainSubstring("## Income Statement (Quarterly)"))
		Expect(doc).To(ContainSubstring("No data available."))
	})

	It("renders period-scoped financials as a pipe table", func() {
		f := emptyFoundation("OGDC")
		f.Financials.SetNum(data.YearKey("EPS", 2023), 4.5)

		doc := report.Markdown(f)
		Expect(doc).To(ContainSubstring("| Metric | 2023 |"))
		Expect(doc).To(ContainSubstring("| EPS | 4.5 |"))
	})

	It("groups the market snapshot with present metrics only", func() {
		f := emptyFoundation("OGDC")
		f.Market.SetNum(data.MetricKey("Open"), 100)
		f.Market.Set(data.MetricKey("Day Range"), data.Text("99-101"))

		doc := report.Markdown(f)
		Expect(doc).To(ContainSubstring("### Live Session"))
		Expect(doc).To(ContainSubstring("| Open | 100 |"))
		Expect(doc).To(ContainSubstring("### Ranges & Limits"))
		Expect(doc).To(ContainSubstring("| Day Range | 99-101 |"))
		Expect(doc).NotTo(ContainSubstring("### Valuation & Ratios"))
	})

	It("surfaces the upstream market timestamp when present", func() {
		f := emptyFoundation("OGDC")
		f.Market.Set(data.MetricKey("Last_Updated"), data.Text("12 Dec 2025"))

		doc := report.Markdown(f)
		Expect(doc).To(ContainSubstring("Market data as of: 12 Dec 2025"))
	})
})

var _ = Describe("MetricRows", func() {
	It("serializes keys in composite display form, in insertion order", func() {
		m := data.NewFlatMap()
		m.SetNum(data.ItemKey("Assets", "Cash", 2023), 100)
		m.SetNum(data.MetricKey("ROE"), 18)

		rows := report.MetricRows(m)
		Expect(rows).To(HaveLen(2))
		Expect(rows[0].Metric).To(Equal("Assets_Cash_2023"))
		Expect(rows[0].Value).To(Equal("100"))
		Expect(rows[1].Metric).To(Equal("ROE"))
	})
})

var _ = Describe("WriteCSV", func() {
	It("emits a header row and one line per entry", func() {
		m := data.NewFlatMap()
		m.SetNum(data.YearKey("EPS", 2023), 4.5)

		var builder strings.Builder
		Expect(report.WriteCSV(&builder, m)).To(Succeed())

		out := builder.String()
		Expect(out).To(ContainSubstring("metric,value"))
		Expect(out).To(ContainSubstring("EPS_2023,4.5"))
	})
})
