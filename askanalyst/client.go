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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var (
	ErrInvalidStatusCode = errors.New("invalid status code received")
)

const (
	DefaultBaseURL = "https://api.askanalyst.com.pk/api"
	DefaultTimeout = 10 * time.Second
)

// Client talks to the AskAnalyst JSON endpoints. Every per-ticker method
// maps network failures, non-2xx responses, and decode failures to the
// empty value of its shape so that a single failing endpoint never aborts a
// foundation build. The company list is the one call that surfaces errors.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	baseURL string
}

// New creates a client against baseURL with a single finite timeout
// applied to every request. rateLimit is the maximum number of requests
// per minute; zero disables limiting.
func New(baseURL string, timeout time.Duration, rateLimit int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	limit := rate.Inf
	if rateLimit > 0 {
		limit = rate.Limit(float64(rateLimit) / 60.0)
	}

	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", "Mozilla/5.0"),
		limiter: rate.NewLimiter(limit, 1),
		baseURL: baseURL,
	}
}

// get fetches path and decodes the body into out. It reports false on any
// failure; callers fall back to their empty shape.
func (client *Client) get(ctx context.Context, path string, query map[string]string, out any) bool {
	logger := zerolog.Ctx(ctx)

	if err := client.limiter.Wait(ctx); err != nil {
		logger.Warn().Err(err).Str("Path", path).Msg("rate limit wait interrupted")
		return false
	}

	url := fmt.Sprintf("%s/%s", client.baseURL, path)

	resp, err := client.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(url)
	if err != nil {
		logger.Warn().Err(err).Str("URL", url).Msg("upstream request failed")
		return false
	}

	if resp.StatusCode() >= 300 {
		logger.Warn().Int("StatusCode", resp.StatusCode()).Str("URL", url).
			Msg("upstream returned an invalid HTTP response")
		return false
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		logger.Warn().Err(err).Str("URL", url).Msg("could not decode upstream response body")
		return false
	}

	return true
}

// Companies returns the company list. Unlike the per-ticker endpoints this
// lookup surfaces its failure: without it the user cannot resolve a ticker
// at all.
func (client *Client) Companies(ctx context.Context) ([]Company, error) {
	if err := client.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/companieslist", client.baseURL)

	var raw []json.RawMessage

	resp, err := client.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("%w (%d): %s", ErrInvalidStatusCode, resp.StatusCode(), url)
	}

	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, err
	}

	return decodeEach[Company](raw), nil
}

// CompanyFinancials returns the labeled ratio series for one ticker.
func (client *Client) CompanyFinancials(ctx context.Context, ticker string) []Series {
	var raw []json.RawMessage

	path := fmt.Sprintf("companyfinancialnew/%s", ticker)
	if !client.get(ctx, path, map[string]string{"companyfinancial": "true"}, &raw) {
		return nil
	}

	return decodeSeriesList(raw)
}

// MarketSnapshot returns the fixed-shape market data object, or nil when
// the endpoint is unavailable.
func (client *Client) MarketSnapshot(ctx context.Context, ticker string) *Snapshot {
	var snapshot Snapshot

	path := fmt.Sprintf("sharepricedatanew/%s", ticker)
	if !client.get(ctx, path, nil, &snapshot) {
		return nil
	}

	return &snapshot
}

// GrowthCharts returns the chart sections containing the growth graphs.
func (client *Client) GrowthCharts(ctx context.Context, ticker string) []ChartSection {
	var raw []json.RawMessage

	path := fmt.Sprintf("financialchartnew/%s", ticker)
	if !client.get(ctx, path, map[string]string{"financialchartnew": "true"}, &raw) {
		return nil
	}

	return decodeChartSections(raw)
}

// IndustryBenchmarks returns the labeled industry averages for the
// ticker's sector.
func (client *Client) IndustryBenchmarks(ctx context.Context, ticker string) []Benchmark {
	var raw []json.RawMessage

	path := fmt.Sprintf("industrynew/%s", ticker)
	if !client.get(ctx, path, nil, &raw) {
		return nil
	}

	return decodeEach[Benchmark](raw)
}

// StockPriceData returns the categorized price-history series.
func (client *Client) StockPriceData(ctx context.Context, ticker string) []Category {
	var raw []json.RawMessage

	path := fmt.Sprintf("stockpricedatanew/%s", ticker)
	if !client.get(ctx, path, nil, &raw) {
		return nil
	}

	return decodeCategoryList(raw)
}

// IncomeStatement returns the annual and quarterly income statement
// buckets.
func (client *Client) IncomeStatement(ctx context.Context, ticker string) Statement {
	var raw rawStatement

	path := fmt.Sprintf("is/%s", ticker)
	if !client.get(ctx, path, nil, &raw) {
		return Statement{}
	}

	return Statement{
		Annual:    decodeSeriesList(raw.Annual),
		Quarterly: decodeSeriesList(raw.Quarter),
	}
}

// BalanceSheet returns the annual and quarterly balance sheet buckets.
func (client *Client) BalanceSheet(ctx context.Context, ticker string) BalanceSheetDoc {
	var raw rawStatement

	path := fmt.Sprintf("bs/%s", ticker)
	if !client.get(ctx, path, nil, &raw) {
		return BalanceSheetDoc{}
	}

	return BalanceSheetDoc{
		Annual:    decodeCategoryList(raw.Annual),
		Quarterly: decodeCategoryList(raw.Quarter),
	}
}

// ValuationSeries returns the time-indexed valuation multiples.
func (client *Client) ValuationSeries(ctx context.Context, ticker string) []Series {
	var raw []json.RawMessage

	path := fmt.Sprintf("valuationnew/%s", ticker)
	if !client.get(ctx, path, nil, &raw) {
		return nil
	}

	return decodeSeriesList(raw)
}
