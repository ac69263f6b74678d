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
package foundation_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/psxlens/psxlens/askanalyst"
	"github.com/psxlens/psxlens/data"
	"github.com/psxlens/psxlens/foundation"
)

// fakeSource serves canned payloads; zero-valued fields read as the empty
// responses a failed endpoint would produce.
type fakeSource struct {
	financials []askanalyst.Series
	snapshot   *askanalyst.Snapshot
	growth     []askanalyst.ChartSection
	industry   []askanalyst.Benchmark
	prices     []askanalyst.Category
	income     askanalyst.Statement
	balance    askanalyst.BalanceSheetDoc
	valuation  []askanalyst.Series
}

func (f *fakeSource) CompanyFinancials(_ context.Context, _ string) []askanalyst.Series {
	return f.financials
}

func (f *fakeSource) MarketSnapshot(_ context.Context, _ string) *askanalyst.Snapshot {
	return f.snapshot
}

func (f *fakeSource) GrowthCharts(_ context.Context, _ string) []askanalyst.ChartSection {
	return f.growth
}

func (f *fakeSource) IndustryBenchmarks(_ context.Context, _ string) []askanalyst.Benchmark {
	return f.industry
}

func (f *fakeSource) StockPriceData(_ context.Context, _ string) []askanalyst.Category {
	return f.prices
}

func (f *fakeSource) IncomeStatement(_ context.Context, _ string) askanalyst.Statement {
	return f.income
}

func (f *fakeSource) BalanceSheet(_ context.Context, _ string) askanalyst.BalanceSheetDoc {
	return f.balance
}

func (f *fakeSource) ValuationSeries(_ context.Context, _ string) []askanalyst.Series {
	return f.valuation
}

func snapshotWith(totalDebt, shares float64) *askanalyst.Snapshot {
	s := &askanalyst.Snapshot{}
	s.TotalDebt = data.Number(totalDebt)
	s.Shares = data.Number(shares)

	return s
}

func bvpsSeries(value float64) []askanalyst.Series {
	return []askanalyst.Series{{
		Label:  "BVPS",
		Points: []askanalyst.Point{{Year: 2023, Value: value}},
	}}
}

var _ = Describe("Build", func() {
	It("errors with ErrNoData when every endpoint comes back empty", func() {
		_, err := foundation.Build(context.Background(), &fakeSource{}, "OGDC")
		Expect(err).To(MatchError(foundation.ErrNoData))
	})

	It("assembles all sections and stamps identity", func() {
		source := &fakeSource{
			financials: bvpsSeries(10),
			snapshot:   snapshotWith(500, 100),
			industry:   []askanalyst.Benchmark{{Label: "ROE", Value: 14}},
		}

		f, err := foundation.Build(context.Background(), source, "OGDC")
		Expect(err).NotTo(HaveOccurred())

		Expect(f.Ticker).To(Equal("OGDC"))
		Expect(f.ID.String()).NotTo(BeEmpty())
		Expect(f.FetchedAt.IsZero()).To(BeFalse())

		Expect(f.Financials.Number(data.MetricKey("BVPS"))).To(Equal(10.0))
		Expect(f.Industry.Number(data.MetricKey("Industry_ROE"))).To(Equal(14.0))
		Expect(f.Growth.IsEmpty()).To(BeTrue())
	})

	It("derives debt to equity from book equity", func() {
		source := &fakeSource{
			financials: bvpsSeries(10),
			snapshot:   snapshotWith(500, 100),
		}

		f, err := foundation.Build(context.Background(), source, "OGDC")
		Expect(err).NotTo(HaveOccurred())

		// 500 / (10 * 100)
		Expect(f.Market.Number(data.MetricKey("Debt_to_Equity"))).To(Equal(0.5))
	})

	It("rounds the derived ratio to two decimals", func() {
		source := &fakeSource{
			financials: bvpsSeries(3),
			snapshot:   snapshotWith(1000, 100),
		}

		f, err := foundation.Build(context.Background(), source, "OGDC")
		Expect(err).NotTo(HaveOccurred())

		// 1000 / 300 = 3.333...
		Expect(f.Market.Number(data.MetricKey("Debt_to_Equity"))).To(Equal(3.33))
	})

	It("yields exactly zero when book equity is not positive", func() {
		source := &fakeSource{
			financials: bvpsSeries(0),
			snapshot:   snapshotWith(500, 100),
		}

		f, err := foundation.Build(context.Background(), source, "OGDC")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Market.Number(data.MetricKey("Debt_to_Equity"))).To(Equal(0.0))
	})

	It("survives any single endpoint coming back empty", func() {
		source := &fakeSource{
			valuation: []askanalyst.Series{{
				Label:  "PER",
				Points: []askanalyst.Point{{Year: 2023, Value: 7}},
			}},
		}

		f, err := foundation.Build(context.Background(), source, "OGDC")
		Expect(err).NotTo(HaveOccurred())

		Expect(f.Valuation.Number(data.YearKey("PER", 2023))).To(Equal(7.0))
		Expect(f.Financials.IsEmpty()).To(BeTrue())
		Expect(f.AnnualIncome.IsEmpty()).To(BeTrue())
		Expect(f.QuarterlyBalance.IsEmpty()).To(BeTrue())
	})
})

var _ = Describe("Foundation", func() {
	It("lists its sections in report order", func() {
		f, err := foundation.Build(context.Background(), &fakeSource{
			financials: bvpsSeries(10),
		}, "OGDC")
		Expect(err).NotTo(HaveOccurred())

		sections := f.Sections()
		Expect(sections).To(HaveLen(10))
		Expect(sections[0].Name).To(Equal("Market Overview"))
		Expect(sections[1].Name).To(Equal("Financial History"))
		Expect(sections[9].Name).To(Equal("Quarterly Balance Sheet"))
	})
})
