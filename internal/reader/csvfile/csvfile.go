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
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/spreadsheet-tools/lookup-automator/internal/reader"
	"github.com/spreadsheet-tools/lookup-automator/internal/table"
)

// csvReader implements reader.FormatReader for comma-separated files.
type csvReader struct{}

var _ reader.FormatReader = (*csvReader)(nil)

func (csvReader) Extensions() []string {
	return []string{".csv"}
}

// Read parses the stream. The first record is the header row and becomes the
// schema. Short records are tolerated; their trailing cells are missing.
func (csvReader) Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return table.New(), nil
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	// Duplicate header names are dropped, first occurrence kept, so the
	// cell loop below must skip the shadowed positions.
	t := table.New(header...)
	seen := make(map[string]bool, len(header))
	keep := make([]bool, len(header))
	for i, h := range header {
		if !seen[h] {
			seen[h] = true
			keep[i] = true
		}
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
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
	reader.RegisterFormatReader(csvReader{})
}
