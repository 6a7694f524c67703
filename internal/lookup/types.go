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
package lookup

import "github.com/spreadsheet-tools/lookup-automator/internal/table"

// InsertAfter sentinels for edge placement. The parenthesized forms cannot be
// mistaken for spreadsheet column names; the bare aliases "begin" and "end"
// are also accepted for CLI convenience, but an actual base column with that
// name takes precedence over them.
const (
	InsertAtBeginning = "(at beginning)"
	InsertAtEnd       = "(at end)"

	insertBeginAlias = "begin"
	insertEndAlias   = "end"
)

// CollisionSuffix is appended to a fetched column whose name already exists in
// the base schema, repeatedly until the name is unique.
const CollisionSuffix = "_lookup"

// Params describes one merge request.
type Params struct {
	// BaseKey is the match column in the base table.
	BaseKey string
	// LookupKey is the match column in the lookup table.
	LookupKey string
	// ValueColumns are the lookup-table columns to append, in order.
	// Selecting the lookup key itself is permitted and copies matched keys.
	ValueColumns []string
	// InsertAfter controls where the fetched columns land in the result
	// schema. Empty means InsertAtEnd.
	InsertAfter string
}

// Report summarizes a completed merge.
type Report struct {
	// RowsProcessed is the base table's row count, which the result always
	// preserves.
	RowsProcessed int
	// RowsMatched counts base rows that found a lookup counterpart.
	RowsMatched int
	// EmptyInput is set when either input table had zero rows. The merge
	// still completes; this is informational only.
	EmptyInput bool
	// AppendedColumns are the result-schema names of the fetched columns,
	// after collision renaming.
	AppendedColumns []string
}

// Result is a completed merge: the enriched table plus its report.
type Result struct {
	Table  *table.Table
	Report Report
}
