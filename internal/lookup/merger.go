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

import (
	"github.com/spreadsheet-tools/lookup-automator/internal/table"
)

// Merge performs a left join of lookup columns onto the base table: every base
// row survives, in order, with the selected value columns appended. Rows match
// on canonical key equality; duplicate lookup keys resolve to the first
// occurrence, mirroring VLOOKUP's top-to-bottom search. Neither input is
// mutated.
//
// All parameter validation happens before any row work, so a returned error
// means no output was produced.
func Merge(base, lkp *table.Table, params Params) (*Result, error) {
	if base == nil || lkp == nil {
		return nil, &InvalidParamsError{Msg: "both tables are required"}
	}
	if !base.HasColumn(params.BaseKey) {
		return nil, &SchemaError{Column: params.BaseKey, Table: TableBase}
	}
	if !lkp.HasColumn(params.LookupKey) {
		return nil, &SchemaError{Column: params.LookupKey, Table: TableLookup}
	}

	valueCols := dedupeColumns(params.ValueColumns)
	if len(valueCols) == 0 {
		return nil, &InvalidParamsError{Msg: "no value columns selected"}
	}
	for _, col := range valueCols {
		if !lkp.HasColumn(col) {
			return nil, &SchemaError{Column: col, Table: TableLookup}
		}
	}

	insertPos, err := resolveInsertPos(base, params.InsertAfter)
	if err != nil {
		return nil, err
	}

	// First-occurrence index over the lookup key. Missing keys are never
	// matchable, so they are left out.
	index := make(map[string]int, lkp.NumRows())
	for i := 0; i < lkp.NumRows(); i++ {
		key, ok := table.CanonicalKey(lkp.Value(i, params.LookupKey))
		if !ok {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}

	appended := renameCollisions(base.Columns, valueCols)

	schema := make([]string, 0, len(base.Columns)+len(appended))
	schema = append(schema, base.Columns[:insertPos]...)
	schema = append(schema, appended...)
	schema = append(schema, base.Columns[insertPos:]...)

	out := &table.Table{Columns: schema}
	matched := 0
	for i := range base.Rows {
		row := make(table.Row, len(schema))
		for _, col := range base.Columns {
			if v, ok := base.Rows[i][col]; ok {
				row[col] = v
			}
		}

		src := -1
		if key, ok := table.CanonicalKey(base.Value(i, params.BaseKey)); ok {
			if j, hit := index[key]; hit {
				src = j
			}
		}
		if src >= 0 {
			matched++
		}
		for k, col := range valueCols {
			if src >= 0 {
				row[appended[k]] = lkp.Value(src, col)
			} else {
				row[appended[k]] = table.Missing()
			}
		}
		out.AppendRow(row)
	}

	return &Result{
		Table: out,
		Report: Report{
			RowsProcessed:   base.NumRows(),
			RowsMatched:     matched,
			EmptyInput:      base.NumRows() == 0 || lkp.NumRows() == 0,
			AppendedColumns: appended,
		},
	}, nil
}

// dedupeColumns drops repeated selections, first occurrence kept.
func dedupeColumns(cols []string) []string {
	seen := make(map[string]bool, len(cols))
	var out []string
	for _, c := range cols {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// resolveInsertPos maps the InsertAfter selector to a schema index in the base
// table. The parenthesized sentinels always mean edge placement; a base column
// match comes next, so that columns literally named "begin" or "end" stay
// usable as targets; the bare aliases apply only when no such column exists.
// Anything else is a SchemaError.
func resolveInsertPos(base *table.Table, insertAfter string) (int, error) {
	switch insertAfter {
	case "", InsertAtEnd:
		return len(base.Columns), nil
	case InsertAtBeginning:
		return 0, nil
	}
	if idx := base.ColumnIndex(insertAfter); idx >= 0 {
		return idx + 1, nil
	}
	switch insertAfter {
	case insertEndAlias:
		return len(base.Columns), nil
	case insertBeginAlias:
		return 0, nil
	}
	return 0, &SchemaError{Column: insertAfter, Table: TableBase}
}

// renameCollisions assigns result-schema names to the fetched columns,
// suffixing any name already taken by the base schema or an earlier selection.
func renameCollisions(baseCols, valueCols []string) []string {
	taken := make(map[string]bool, len(baseCols)+len(valueCols))
	for _, c := range baseCols {
		taken[c] = true
	}
	out := make([]string, len(valueCols))
	for i, col := range valueCols {
		name := col
		for taken[name] {
			name += CollisionSuffix
		}
		taken[name] = true
		out[i] = name
	}
	return out
}
