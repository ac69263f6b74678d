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

// Package foundation normalizes the loosely shaped endpoint payloads into
// flat metric maps and assembles them into a per-company foundation.
//
// Every extraction routine is total: absent or malformed input yields an
// empty map (or empty pair), never an error. Malformed entries are skipped
// per entry without aborting their siblings.
package foundation

import (
	"strconv"
	"strings"

	"github.com/psxlens/psxlens/askanalyst"
	"github.com/psxlens/psxlens/data"
)

// ExtractFinancials normalizes the per-company ratio series. Labels are
// matched by substring against the ratio vocabulary; a label containing
// several patterns populates several canonical fields. Each matched series
// writes one period-scoped entry per point plus a bare-name entry holding
// the last point's value.
func ExtractFinancials(series []askanalyst.Series) *data.FlatMap {
	out := data.NewFlatMap()

	for _, s := range series {
		for _, entry := range ratioVocabulary {
			if !strings.Contains(s.Label, entry.Pattern) {
				continue
			}

			for _, point := range s.Points {
				if point.Year <= 0 {
					continue
				}

				out.SetNum(data.YearKey(entry.Name, point.Year), point.Value)
			}

			if len(s.Points) > 0 {
				out.SetNum(data.MetricKey(entry.Name), s.Points[len(s.Points)-1].Value)
			}
		}
	}

	return out
}

// ExtractMarket flattens the fixed-shape market snapshot. The circuit
// breaker and day range are rendered as "<low>-<high>" text; every other
// field is numeric. Net debt is derived from the coerced values already in
// the output map, not re-read from raw input.
func ExtractMarket(snapshot *askanalyst.Snapshot) *data.FlatMap {
	out := data.NewFlatMap()
	if snapshot == nil {
		return out
	}

	out.SetNum(data.MetricKey("Open"), float64(snapshot.Open))
	out.SetNum(data.MetricKey("High"), float64(snapshot.High))
	out.SetNum(data.MetricKey("Low"), float64(snapshot.Low))
	out.SetNum(data.MetricKey("LDCP"), float64(snapshot.LDCP))
	out.SetNum(data.MetricKey("Bid Price"), float64(snapshot.BidPrice))
	out.SetNum(data.MetricKey("Bid Volume"), float64(snapshot.BidVolume))
	out.SetNum(data.MetricKey("Ask Price"), float64(snapshot.AskPrice))
	out.SetNum(data.MetricKey("Ask Volume"), float64(snapshot.AskVolume))
	out.SetNum(data.MetricKey("Volume"), float64(snapshot.Volume))
	out.SetNum(data.MetricKey("Value"), float64(snapshot.Value))
	out.SetNum(data.MetricKey("Close"), float64(snapshot.Close))

	out.Set(data.MetricKey("Circuit Breaker"), data.Text(formatRange(
		float64(snapshot.CircuitBreaker.LowerLock), float64(snapshot.CircuitBreaker.UpperLock))))
	out.Set(data.MetricKey("Day Range"), data.Text(formatRange(
		float64(snapshot.DayRange.Low), float64(snapshot.DayRange.High))))

	out.SetNum(data.MetricKey("52W_High"), float64(snapshot.FiftyTwoWeekHigh))
	out.SetNum(data.MetricKey("52W_Low"), float64(snapshot.FiftyTwoWeekLow))
	out.SetNum(data.MetricKey("52W_Avg"), float64(snapshot.FiftyTwoWeekAverage))

	out.SetNum(data.MetricKey("1M Returns"), float64(snapshot.TotalReturn.OneMonth))
	out.SetNum(data.MetricKey("3M Returns"), float64(snapshot.TotalReturn.ThreeMonth))
	out.SetNum(data.MetricKey("6M Returns"), float64(snapshot.TotalReturn.SixMonth))
	out.SetNum(data.MetricKey("1Y Returns"), float64(snapshot.TotalReturn.OneYear))
	out.SetNum(data.MetricKey("3Y Returns"), float64(snapshot.TotalReturn.ThreeYear))
	out.SetNum(data.MetricKey("5Y Returns"), float64(snapshot.TotalReturn.FiveYear))

	out.SetNum(data.MetricKey("PE_Live"), float64(snapshot.PE))
	out.SetNum(data.MetricKey("Div Yield"), float64(snapshot.DividendYield))
	out.SetNum(data.MetricKey("PBV_Live"), float64(snapshot.PBV))
	out.SetNum(data.MetricKey("Enterprise Value"), float64(snapshot.EV))
	out.SetNum(data.MetricKey("Total_Debt"), float64(snapshot.TotalDebt))
	out.SetNum(data.MetricKey("Cash"), float64(snapshot.Cash))
	out.SetNum(data.MetricKey("Current_Price"), float64(snapshot.Current))

	out.SetNum(data.MetricKey("Market_Cap"), float64(snapshot.MarketCap))
	out.SetNum(data.MetricKey("Total_Shares"), float64(snapshot.Shares))
	out.SetNum(data.MetricKey("Free Float Value"), float64(snapshot.FreeFloat))
	out.SetNum(data.MetricKey("Free Float %"), float64(snapshot.FreeFloatPercentage))
	out.SetNum(data.MetricKey("Change"), float64(snapshot.Change))
	out.SetNum(data.MetricKey("Change_%"), float64(snapshot.ChangeInPercentage))

	out.Set(data.MetricKey("Last_Updated"), data.Text(snapshot.Date))

	out.SetNum(data.MetricKey("Net_Debt"),
		out.Number(data.MetricKey("Total_Debt"))-out.Number(data.MetricKey("Cash")))

	return out
}

// ExtractGrowth keeps the last point of each target growth series. A
// target series that is present but has no usable points records an
// explicit zero; a target series that never appears is omitted entirely.
// This is the one routine with a fallback-to-zero policy.
func ExtractGrowth(sections []askanalyst.ChartSection) *data.FlatMap {
	out := data.NewFlatMap()

	for _, section := range sections {
		for _, graph := range section.Graphs {
			if !isGrowthTarget(graph.Label) {
				continue
			}

			if len(graph.Points) == 0 {
				out.SetNum(data.MetricKey(graph.Label), 0)
				continue
			}

			out.SetNum(data.MetricKey(graph.Label), graph.Points[len(graph.Points)-1].Value)
		}
	}

	return out
}

func isGrowthTarget(label string) bool {
	for _, target := range growthTargets {
		if label == target {
			return true
		}
	}

	return false
}

// ExtractIndustry normalizes the industry benchmark list. Labels match the
// vocabulary exactly, so each input record populates at most one output
// field.
func ExtractIndustry(benchmarks []askanalyst.Benchmark) *data.FlatMap {
	out := data.NewFlatMap()

	for _, benchmark := range benchmarks {
		name, ok := industryVocabulary[benchmark.Label]
		if !ok {
			continue
		}

		out.SetNum(data.MetricKey(name), float64(benchmark.Value))
	}

	return out
}

// ExtractPriceHistory flattens the categorized price-history series into
// period-scoped entries keyed by series label.
func ExtractPriceHistory(categories []askanalyst.Category) *data.FlatMap {
	out := data.NewFlatMap()

	for _, category := range categories {
		for _, series := range category.Series {
			for _, point := range series.Points {
				if point.Year <= 0 {
					continue
				}

				out.SetNum(data.YearKey(series.Label, point.Year), point.Value)
			}
		}
	}

	return out
}

// ExtractIncomeStatement flattens the annual and quarterly buckets of the
// one-level income statement independently. Labels are whitespace-trimmed
// before use.
func ExtractIncomeStatement(statement askanalyst.Statement) (annual, quarterly *data.FlatMap) {
	return extractBucket(statement.Annual), extractBucket(statement.Quarterly)
}

func extractBucket(series []askanalyst.Series) *data.FlatMap {
	out := data.NewFlatMap()

	for _, s := range series {
		label := strings.TrimSpace(s.Label)

		for _, point := range s.Points {
			if point.Year <= 0 {
				continue
			}

			out.SetNum(data.YearKey(label, point.Year), point.Value)
		}
	}

	return out
}

// ExtractBalanceSheet flattens the annual and quarterly buckets of the
// two-level balance sheet independently, keeping the category label as the
// first key component.
func ExtractBalanceSheet(doc askanalyst.BalanceSheetDoc) (annual, quarterly *data.FlatMap) {
	return extractCategories(doc.Annual), extractCategories(doc.Quarterly)
}

func extractCategories(categories []askanalyst.Category) *data.FlatMap {
	out := data.NewFlatMap()

	for _, category := range categories {
		categoryLabel := strings.TrimSpace(category.Label)

		for _, series := range category.Series {
			itemLabel := strings.TrimSpace(series.Label)

			for _, point := range series.Points {
				if point.Year <= 0 {
					continue
				}

				out.SetNum(data.ItemKey(categoryLabel, itemLabel, point.Year), point.Value)
			}
		}
	}

	return out
}

// ExtractValuation flattens the time-indexed valuation multiples into
// period-scoped entries.
func ExtractValuation(series []askanalyst.Series) *data.FlatMap {
	out := data.NewFlatMap()

	for _, s := range series {
		for _, point := range s.Points {
			if point.Year <= 0 {
				continue
			}

			out.SetNum(data.YearKey(s.Label, point.Year), point.Value)
		}
	}

	return out
}

func formatRange(low, high float64) string {
	return strconv.FormatFloat(low, 'f', -1, 64) + "-" + strconv.FormatFloat(high, 'f', -1, 64)
}
