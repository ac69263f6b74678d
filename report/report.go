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

// Package report assembles a company foundation into a markdown document
// suitable for terminal rendering or file export.
package report

import (
	"fmt"
	"strings"

	"github.com/psxlens/psxlens/data"
	"github.com/psxlens/psxlens/foundation"
	"github.com/psxlens/psxlens/grid"
	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// market snapshot display groups, in the order they appear in the report
var (
	sessionMetrics   = []string{"Open", "High", "Low", "Close", "Volume", "LDCP"}
	rangeMetrics     = []string{"Day Range", "52W_High", "52W_Low", "Circuit Breaker"}
	valuationMetrics = []string{"PE_Live", "PBV_Live", "Div Yield", "Enterprise Value"}
	debtMetrics      = []string{"Total_Debt", "Cash", "Net_Debt", "Debt_to_Equity"}
)

// Markdown renders the full report for one foundation.
func Markdown(f *foundation.Foundation) string {
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	builder.WriteString(fmt.Sprintf("# %s\n\n", f.Ticker))
	builder.WriteString(fmt.Sprintf("Financial Analysis Report | Fetched %s\n\n",
		timeago.English.Format(f.FetchedAt)))

	if updated, ok := f.Market.Get(data.MetricKey("Last_Updated")); ok && updated.String() != "" {
		builder.WriteString(fmt.Sprintf("Market data as of: %s\n\n", updated.String()))
	}

	writeHero(&builder, p, f)

	builder.WriteString("## Market Snapshot\n\n")
	writeGroup(&builder, "Live Session", f.Market, sessionMetrics)
	writeGroup(&builder, "Ranges & Limits", f.Market, rangeMetrics)
	writeGroup(&builder, "Valuation & Ratios", f.Market, valuationMetrics)
	writeGroup(&builder, "Capital Structure", f.Market, debtMetrics)
	writeGroup(&builder, "Returns Profile", f.Market, returnMetrics(f.Market))

	builder.WriteString("## Financial History\n\n")
	writeTable(&builder, grid.Pivot(f.Financials, grid.DefaultMaxYears))

	builder.WriteString("## Growth Trends\n\n")
	writeTable(&builder, grid.KeyValue(f.Growth))

	builder.WriteString("## Industry Averages\n\n")
	writeTable(&builder, grid.KeyValue(f.Industry))

	builder.WriteString("## Stock Price History\n\n")
	writeTable(&builder, grid.Pivot(f.StockData, grid.DefaultMaxYears))

	builder.WriteString("## Valuation History\n\n")
	writeTable(&builder, grid.Pivot(f.Valuation, grid.DefaultMaxYears))

	builder.WriteString("## Income Statement (Annual)\n\n")
	writeTable(&builder, grid.Pivot(f.AnnualIncome, grid.DefaultMaxYears))

	builder.WriteString("## Income Statement (Quarterly)\n\n")
	writeTable(&builder, grid.Pivot(f.QuarterlyIncome, grid.DefaultMaxYears))

	builder.WriteString("## Balance Sheet (Annual)\n\n")
	writeTable(&builder, grid.PivotHierarchical(f.AnnualBalance, grid.DefaultMaxYears))

	builder.WriteString("## Balance Sheet (Quarterly)\n\n")
	writeTable(&builder, grid.PivotHierarchical(f.QuarterlyBalance, grid.DefaultMaxYears))

	return builder.String()
}

// writeHero emits the headline metrics shown at the top of the dashboard.
func writeHero(builder *strings.Builder, p *message.Printer, f *foundation.Foundation) {
	price := f.Market.Number(data.MetricKey("Current_Price"))
	change := f.Market.Number(data.MetricKey("Change"))
	marketCap := f.Market.Number(data.MetricKey("Market_Cap"))
	pe := f.Market.Number(data.MetricKey("PE_Live"))
	debtToEquity := f.Market.Number(data.MetricKey("Debt_to_Equity"))

	builder.WriteString(p.Sprintf("  * Price: PKR %.2f (%+.2f)\n", price, change))
	builder.WriteString(p.Sprintf("  * Market Cap: %.0f M\n", marketCap))
	builder.WriteString(p.Sprintf("  * P/E Ratio: %.2f\n", pe))
	builder.WriteString(p.Sprintf("  * Debt-to-Equity: %.2f\n\n", debtToEquity))
}

// writeGroup emits a sub-table holding the named metrics of the market map
// that are present, in the given order.
func writeGroup(builder *strings.Builder, title string, market *data.FlatMap, metrics []string) {
	subset := data.NewFlatMap()

	for _, metric := range metrics {
		key := data.MetricKey(metric)
		if value, ok := market.Get(key); ok {
			subset.Set(key, value)
		}
	}

	if subset.IsEmpty() {
		return
	}

	builder.WriteString(fmt.Sprintf("### %s\n\n", title))
	writeTable(builder, grid.KeyValue(subset))
}

// returnMetrics lists every market metric holding a return figure.
func returnMetrics(market *data.FlatMap) []string {
	var metrics []string

	market.Each(func(key data.Key, _ data.Value) {
		if strings.Contains(key.Metric, "Return") {
			metrics = append(metrics, key.Metric)
		}
	})

	return metrics
}

// writeTable renders a grid table as a markdown pipe table.
func writeTable(builder *strings.Builder, table grid.Table) {
	if table.Empty() {
		builder.WriteString("No data available.\n\n")
		return
	}

	builder.WriteString("| " + strings.Join(table.Headers, " | ") + " |\n")

	separators := make([]string, len(table.Headers))
	for i := range separators {
		separators[i] = "---"
	}

	builder.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range table.Rows {
		builder.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	builder.WriteString("\n")
}
