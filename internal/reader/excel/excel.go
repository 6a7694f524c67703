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
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/spreadsheet-tools/lookup-automator/internal/reader"
	"github.com/spreadsheet-tools/lookup-automator/internal/table"
)

// excelReader implements reader.FormatReader for OOXML workbooks. Only the
// first sheet is read, matching the original tool's behavior. Legacy BIFF
// .xls is not registered: excelize cannot parse it, and a clear rejection
// beats a generic parse failure.
type excelReader struct{}

var _ reader.FormatReader = (*excelReader)(nil)

func (excelReader) Extensions() []string {
	return []string{".xlsx"}
}

func (excelReader) Read(r io.Reader) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.New(), nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return table.New(), nil
	}

	header := rows[0]
	t := table.New(header...)
	seen := make(map[string]bool, len(header))
	keep := make([]bool, len(header))
	for i, h := range header {
		if !seen[h] {
			seen[h] = true
			keep[i] = true
		}
	}

	for _, record := range rows[1:] {
		row := make(table.Row, len(t.Columns))
		for i, col := range header {
			if i >= len(record) {
				break
			}
			if !keep[i] {
				continue
			}
			if v := reader.SniffValue(record[i]); !v.IsMissing() {
				row[col] = v
			}
		}
		t.AppendRow(row)
	}
	return t, nil
}

func init() {
	reader.RegisterFormatReader(excelReader{})
}
