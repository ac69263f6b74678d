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
package askanalyst

import (
	"github.com/goccy/go-json"
	"github.com/psxlens/psxlens/data"
)

// Point is one period observation inside a labeled series. Year is zero
// when the upstream period token was not numeric; extraction skips such
// points for period-scoped keys but may still use them as the latest value.
type Point struct {
	Year  int
	Value float64
}

// Series is a labeled sequence of period observations.
type Series struct {
	Label  string
	Points []Point
}

// Category is a labeled group of series, the two-level shape served by the
// balance-sheet and price-history endpoints.
type Category struct {
	Label  string
	Series []Series
}

// Benchmark is a single labeled value from the industry endpoint. Industry
// labels arrive already canonicalized upstream.
type Benchmark struct {
	Label string      `json:"label"`
	Value data.Number `json:"value"`
}

// ChartSection groups the labeled graphs served by the financial chart
// endpoint.
type ChartSection struct {
	Graphs []Series
}

// Statement carries the annual and quarterly buckets of a one-level
// financial statement.
type Statement struct {
	Annual    []Series
	Quarterly []Series
}

// BalanceSheetDoc carries the annual and quarterly buckets of the two-level
// balance sheet.
type BalanceSheetDoc struct {
	Annual    []Category
	Quarterly []Category
}

// Company is one entry of the company list endpoint.
type Company struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// Snapshot is the fixed-shape market data object. Every numeric field
// tolerates string encoding with separators via data.Number.
type Snapshot struct {
	Open      data.Number `json:"open"`
	High      data.Number `json:"high"`
	Low       data.Number `json:"low"`
	LDCP      data.Number `json:"ldcp"`
	BidPrice  data.Number `json:"bid_price"`
	BidVolume data.Number `json:"bid_volume"`
	AskPrice  data.Number `json:"ask_price"`
	AskVolume data.Number `json:"ask_volume"`
	Volume    data.Number `json:"volume"`
	Value     data.Number `json:"value"`
	Close     data.Number `json:"close"`

	CircuitBreaker struct {
		LowerLock data.Number `json:"lower_lock"`
		UpperLock data.Number `json:"upper_lock"`
	} `json:"circuit_breaker"`

	DayRange struct {
		Low  data.Number `json:"low"`
		High data.Number `json:"high"`
	} `json:"day_range"`

	FiftyTwoWeekHigh    data.Number `json:"fifty_two_week_high"`
	FiftyTwoWeekLow     data.Number `json:"fifty_two_week_low"`
	FiftyTwoWeekAverage data.Number `json:"fifty_two_week_average"`

	TotalReturn struct {
		OneMonth   data.Number `json:"1M"`
		ThreeMonth data.Number `json:"3M"`
		SixMonth   data.Number `json:"6M"`
		OneYear    data.Number `json:"1Y"`
		ThreeYear  data.Number `json:"3Y"`
		FiveYear   data.Number `json:"5Y"`
	} `json:"total_return"`

	PE            data.Number `json:"pe"`
	DividendYield data.Number `json:"dividend_yield"`
	PBV           data.Number `json:"pbv"`
	EV            data.Number `json:"ev"`
	TotalDebt     data.Number `json:"total_debt"`
	Cash          data.Number `json:"cash"`
	Current       data.Number `json:"current"`

	MarketCap           data.Number `json:"market_cap"`
	Shares              data.Number `json:"shares"`
	FreeFloat           data.Number `json:"free_float"`
	FreeFloatPercentage data.Number `json:"free_float_percentage"`
	Change              data.Number `json:"change"`
	ChangeInPercentage  data.Number `json:"change_in_percentage"`

	Date string `json:"date"`
}

// Wire forms. Entry lists decode element by element so one malformed entry
// never aborts its siblings.

type rawPoint struct {
	Year  data.Year   `json:"year"`
	Value data.Number `json:"value"`
}

type rawSeries struct {
	Label string            `json:"label"`
	Data  []json.RawMessage `json:"data"`
}

type rawCategory struct {
	Label string            `json:"label"`
	Data  []json.RawMessage `json:"data"`
}

type rawChartSection struct {
	Graphs []json.RawMessage `json:"graphs"`
}

type rawStatement struct {
	Annual  []json.RawMessage `json:"annual"`
	Quarter []json.RawMessage `json:"quarter"`
}

// decodeEach unmarshals every element of raw into T, silently dropping
// elements that fail to decode.
func decodeEach[T any](raw []json.RawMessage) []T {
	out := make([]T, 0, len(raw))

	for _, msg := range raw {
		var v T
		if err := json.Unmarshal(msg, &v); err != nil {
			continue
		}

		out = append(out, v)
	}

	return out
}

func decodePoints(raw []json.RawMessage) []Point {
	points := make([]Point, 0, len(raw))

	for _, p := range decodeEach[rawPoint](raw) {
		points = append(points, Point{Year: int(p.Year), Value: float64(p.Value)})
	}

	return points
}

func decodeSeriesList(raw []json.RawMessage) []Series {
	series := make([]Series, 0, len(raw))

	for _, s := range decodeEach[rawSeries](raw) {
		series = append(series, Series{Label: s.Label, Points: decodePoints(s.Data)})
	}

	return series
}

func decodeCategoryList(raw []json.RawMessage) []Category {
	categories := make([]Category, 0, len(raw))

	for _, c := range decodeEach[rawCategory](raw) {
		categories = append(categories, Category{Label: c.Label, Series: decodeSeriesList(c.Data)})
	}

	return categories
}

func decodeChartSections(raw []json.RawMessage) []ChartSection {
	sections := make([]ChartSection, 0, len(raw))

	for _, s := range decodeEach[rawChartSection](raw) {
		sections = append(sections, ChartSection{Graphs: decodeSeriesList(s.Graphs)})
	}

	return sections
}
