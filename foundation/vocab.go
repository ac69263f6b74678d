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

// vocabEntry maps an upstream label pattern to its canonical output name.
type vocabEntry struct {
	Pattern string
	Name    string
}

// ratioVocabulary matches per-company ratio labels by substring. Upstream
// labels carry decorative suffixes ("PER & PBV Ratio"), so one label can
// match several patterns and fan out into several canonical fields. The
// full vocabulary is tested against every label.
var ratioVocabulary = []vocabEntry{
	{Pattern: "PER", Name: "PE_Ratio"},
	{Pattern: "ROE", Name: "ROE"},
	{Pattern: "Net Margin", Name: "Net_Margin"},
	{Pattern: "BVPS", Name: "BVPS"},
	{Pattern: "EPS", Name: "EPS"},
	{Pattern: "DPS", Name: "DPS"},
	{Pattern: "Div Yield", Name: "Div_Yield"},
	{Pattern: "PBV", Name: "PBV"},
	{Pattern: "Price/Sales", Name: "Price/Sales"},
	{Pattern: "EV/Sales", Name: "EV/Sales"},
	{Pattern: "EV/EBITDA", Name: "EV/EBITDA"},
	{Pattern: "Gross Margin", Name: "Gross_Margin"},
	{Pattern: "EBITDA Margin", Name: "EBITDA_Margin"},
	{Pattern: "Operating Margin", Name: "Operating_Margin"},
}

// industryVocabulary matches industry benchmark labels exactly. Benchmark
// labels are canonicalized upstream, so each label maps to at most one
// output field. This asymmetry with ratioVocabulary is intentional.
var industryVocabulary = map[string]string{
	"Div Yield":        "Industry_Div_Yield",
	"PER":              "Industry_PE_Ratio",
	"PBV":              "Industry_PBV",
	"Price/Sales":      "Industry_Price_Sales",
	"EV/Sales":         "Industry_EV_Sales",
	"EV/EBITDA":        "Industry_EV_EBITDA",
	"ROE":              "Industry_ROE",
	"Gross Margin":     "Industry_Gross_Margin",
	"EBITDA Margin":    "Industry_EBITDA_Margin",
	"Operating Margin": "Industry_Operating_Margin",
	"Net Margin":       "Industry_Net_Margin",
}

// growthTargets are the two chart series kept from the growth endpoint.
var growthTargets = []string{"Revenue Growth", "Net Profit Growth"}
