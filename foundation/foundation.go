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
package foundation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/psxlens/psxlens/askanalyst"
	"github.com/psxlens/psxlens/data"
	"github.com/rs/zerolog"
)

var (
	ErrNoData = errors.New("no data returned for ticker")
)

// Source is the upstream data dependency of a foundation build. The
// askanalyst client satisfies it; tests substitute fakes.
type Source interface {
	CompanyFinancials(ctx context.Context, ticker string) []askanalyst.Series
	MarketSnapshot(ctx context.Context, ticker string) *askanalyst.Snapshot
	GrowthCharts(ctx context.Context, ticker string) []askanalyst.ChartSection
	IndustryBenchmarks(ctx context.Context, ticker string) []askanalyst.Benchmark
	StockPriceData(ctx context.Context, ticker string) []askanalyst.Category
	IncomeStatement(ctx context.Context, ticker string) askanalyst.Statement
	BalanceSheet(ctx context.Context, ticker string) askanalyst.BalanceSheetDoc
	ValuationSeries(ctx context.Context, ticker string) []askanalyst.Series
}

// Foundation is the aggregate normalized result for one ticker. It is
// built fresh on every fetch and replaced wholesale by the next one; there
// is no merge with a prior fetch and no persistence.
type Foundation struct {
	ID        uuid.UUID
	Ticker    string
	FetchedAt time.Time

	Financials *data.FlatMap
	Market     *data.FlatMap
	Growth     *data.FlatMap
	Industry   *data.FlatMap
	StockData  *data.FlatMap
	Valuation  *data.FlatMap

	AnnualIncome     *data.FlatMap
	QuarterlyIncome  *data.FlatMap
	AnnualBalance    *data.FlatMap
	QuarterlyBalance *data.FlatMap
}

// Section pairs a display name with one of the foundation's flat maps.
type Section struct {
	Name string
	Data *data.FlatMap
}

// Sections lists the foundation's sub-maps in report order.
func (f *Foundation) Sections() []Section {
	return []Section{
		{Name: "Market Overview", Data: f.Market},
		{Name: "Financial History", Data: f.Financials},
		{Name: "Growth Trends", Data: f.Growth},
		{Name: "Industry Averages", Data: f.Industry},
		{Name: "Stock Data", Data: f.StockData},
		{Name: "Valuation History", Data: f.Valuation},
		{Name: "Annual Income Statement", Data: f.AnnualIncome},
		{Name: "Quarterly Income Statement", Data: f.QuarterlyIncome},
		{Name: "Annual Balance Sheet", Data: f.AnnualBalance},
		{Name: "Quarterly Balance Sheet", Data: f.QuarterlyBalance},
	}
}

// Empty reports whether no endpoint produced any data.
func (f *Foundation) Empty() bool {
	for _, section := range f.Sections() {
		if !section.Data.IsEmpty() {
			return false
		}
	}

	return true
}

// Build fetches every endpoint for ticker sequentially and assembles the
// normalized foundation. Individual endpoint failures degrade to empty
// sections; Build only errors when every section came back empty.
func Build(ctx context.Context, source Source, ticker string) (*Foundation, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("Ticker", ticker).
		Logger()
	ctx = logger.WithContext(ctx)

	startTime := time.Now()

	f := &Foundation{
		ID:        uuid.New(),
		Ticker:    ticker,
		FetchedAt: startTime,
	}

	f.Financials = ExtractFinancials(source.CompanyFinancials(ctx, ticker))
	f.Market = ExtractMarket(source.MarketSnapshot(ctx, ticker))
	f.Growth = ExtractGrowth(source.GrowthCharts(ctx, ticker))
	f.Industry = ExtractIndustry(source.IndustryBenchmarks(ctx, ticker))
	f.StockData = ExtractPriceHistory(source.StockPriceData(ctx, ticker))
	f.AnnualIncome, f.QuarterlyIncome = ExtractIncomeStatement(source.IncomeStatement(ctx, ticker))
	f.AnnualBalance, f.QuarterlyBalance = ExtractBalanceSheet(source.BalanceSheet(ctx, ticker))
	f.Valuation = ExtractValuation(source.ValuationSeries(ctx, ticker))

	if f.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrNoData, ticker)
	}

	deriveDebtToEquity(f.Financials, f.Market)

	logger.Info().
		Str("FoundationID", f.ID.String()).
		Str("RunTime", durafmt.Parse(time.Since(startTime)).String()).
		Msg("built company foundation")

	return f, nil
}

// deriveDebtToEquity computes the one cross-source ratio: total debt over
// book equity (BVPS times shares outstanding), rounded to 2 decimals.
// Equity at or below zero yields exactly 0.0 instead of an infinite or NaN
// ratio.
func deriveDebtToEquity(financials, market *data.FlatMap) {
	equity := financials.Number(data.MetricKey("BVPS")) * market.Number(data.MetricKey("Total_Shares"))

	ratio := 0.0
	if equity > 0 {
		ratio = math.Round(market.Number(data.MetricKey("Total_Debt"))/equity*100) / 100
	}

	market.SetNum(data.MetricKey("Debt_to_Equity"), ratio)
}
