/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package table

import (
	"strconv"
	"strings"
)

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	KindMissing Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value is a single spreadsheet cell. The zero value is the missing marker.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

func Missing() Value {
	return Value{kind: KindMissing}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// String renders the value the way it is serialized to CSV. Missing values
// render as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// formatNumber renders a number in plain decimal form. The 'f' format never
// switches to scientific notation, so large integer keys and IDs round-trip
// through the CSV export unchanged: 1000000 stays "1000000", not "1e+06".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// CanonicalKey reduces a value to the form used for join-key equality.
// Spreadsheet data routinely mixes text and numeric representations of the
// same logical key, so numbers and numeric-looking strings canonicalize to the
// same token: text "42" matches number 42. Plain strings compare after
// trimming surrounding whitespace. Missing values never match anything, which
// the ok result signals.
func CanonicalKey(v Value) (key string, ok bool) {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.num), true
	case KindBool:
		return strconv.FormatBool(v.b), true
	case KindString:
		s := strings.TrimSpace(v.str)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return formatNumber(f), true
		}
		return s, true
	default:
		return "", false
	}
}
