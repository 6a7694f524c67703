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
package reader

import (
	"strconv"
	"strings"

	"github.com/spreadsheet-tools/lookup-automator/internal/table"
)

// SniffValue types a raw cell the way spreadsheet loaders do: blank cells are
// missing, numeric-looking cells become numbers, true/false become booleans,
// and everything else stays a string with its original spacing.
func SniffValue(raw string) table.Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return table.Missing()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return table.Number(f)
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return table.Bool(true)
	case "false":
		return table.Bool(false)
	}
	return table.String(raw)
}
