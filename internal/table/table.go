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

// Row maps column names to cell values. Columns absent from the map are
// treated as missing.
type Row map[string]Value

// Table is an ordered sequence of rows plus an ordered column schema. The
// schema may list columns that not every row populates.
type Table struct {
	Columns []string
	Rows    []Row
}

// New builds an empty table with the given schema. Duplicate column names are
// dropped, first occurrence kept, so later selectors are unambiguous.
func New(columns ...string) *Table {
	seen := make(map[string]bool, len(columns))
	var cols []string
	for _, c := range columns {
		if seen[c] {
			continue
		}
		seen[c] = true
		cols = append(cols, c)
	}
	return &Table{Columns: cols}
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}

func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// ColumnIndex returns the schema position of name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (t *Table) AppendRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// Value returns the cell at (row, column), or the missing marker when the row
// does not populate that column.
func (t *Table) Value(row int, column string) Value {
	v, ok := t.Rows[row][column]
	if !ok {
		return Missing()
	}
	return v
}
