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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/spreadsheet-tools/lookup-automator/internal/table"
)

// workbook builds an in-memory xlsx with the given rows on the first sheet.
func workbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestReadWorkbook(t *testing.T) {
	r := workbook(t, [][]interface{}{
		{"code", "dept"},
		{1, "Eng"},
		{3, "Ops"},
	})

	tab, err := excelReader{}.Read(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"code", "dept"}, tab.Columns)
	require.Equal(t, 2, tab.NumRows())
	assert.Equal(t, table.KindNumber, tab.Value(0, "code").Kind())
	assert.Equal(t, "Eng", tab.Value(0, "dept").String())
	assert.Equal(t, "3", tab.Value(1, "code").String())
}

func TestReadWorkbookRaggedRows(t *testing.T) {
	r := workbook(t, [][]interface{}{
		{"a", "b", "c"},
		{1},
		{1, 2, 3},
	})

	tab, err := excelReader{}.Read(r)
	require.NoError(t, err)
	require.Equal(t, 2, tab.NumRows())
	assert.True(t, tab.Value(0, "b").IsMissing())
	assert.Equal(t, "3", tab.Value(1, "c").String())
}

func TestReadNotAWorkbook(t *testing.T) {
	_, err := excelReader{}.Read(bytes.NewReader([]byte("this is not a zip archive")))
	assert.Error(t, err)
}
