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
package data

import (
	"strconv"
	"strings"
)

// Number is a float64 that tolerates the sloppy scalar encodings served by
// the upstream API: plain numbers, numbers quoted as strings with thousands
// separators or percent suffixes, null, and empty strings. Decoding never
// fails; anything unparseable becomes zero.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))

	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		*n = Number(CleanNumber(s[1 : len(s)-1]))
		return nil
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// objects, arrays, booleans -- treat as missing
		*n = 0
		return nil
	}

	*n = Number(val)
	return nil
}

// CleanNumber strips thousands-separator commas and percent signs from a
// string and parses the remainder as a float. Empty or malformed input
// yields zero.
func CleanNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "%", "")

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return val
}

// Coerce converts an arbitrary scalar into a float64 using the same rules
// as Number: nil and empty strings map to zero, strings are cleaned and
// parsed, numeric types are converted directly, and anything else is zero.
func Coerce(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case string:
		return CleanNumber(v)
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case Number:
		return float64(v)
	}

	return 0
}

// Year is an int that accepts both numeric and string-encoded period
// tokens. Values that are not entirely digits decode to zero so that
// extraction can skip them without aborting the surrounding record.
type Year int

func (y *Year) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))

	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		*y = 0
		return nil
	}

	*y = Year(val)
	return nil
}
