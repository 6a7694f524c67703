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
package reader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spreadsheet-tools/lookup-automator/internal/reader"
	_ "github.com/spreadsheet-tools/lookup-automator/internal/reader/csvfile"
	_ "github.com/spreadsheet-tools/lookup-automator/internal/reader/excel"
)

func TestForFilePicksByExtension(t *testing.T) {
	for _, name := range []string{"data.csv", "DATA.CSV", "book.xlsx", "BOOK.XLSX"} {
		_, err := reader.ForFile(name)
		assert.NoError(t, err, name)
	}
}

func TestForFileUnsupported(t *testing.T) {
	_, err := reader.ForFile("notes.txt")
	var unsupported *reader.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "notes.txt", unsupported.Filename)
}

func TestForFileLegacyXLS(t *testing.T) {
	for _, name := range []string{"legacy.xls", "LEGACY.XLS"} {
		_, err := reader.ForFile(name)
		var unsupported *reader.UnsupportedFormatError
		require.ErrorAs(t, err, &unsupported, name)
		assert.Contains(t, err.Error(), "re-save it as .xlsx")
	}
}

func TestReadRejectsHeadersOnlyFile(t *testing.T) {
	_, err := reader.Read("empty.csv", strings.NewReader("id,name\n"))
	var empty *reader.EmptyFileError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "empty.csv", empty.Filename)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,name\n1,Alice\n"), 0o644))

	tab, err := reader.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, tab.Columns)
	assert.Equal(t, 1, tab.NumRows())
}

func TestReadFileMissing(t *testing.T) {
	_, err := reader.ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestSupportedExtensions(t *testing.T) {
	exts := reader.SupportedExtensions()
	assert.Contains(t, exts, ".csv")
	assert.Contains(t, exts, ".xlsx")
	assert.NotContains(t, exts, ".xls")
}
