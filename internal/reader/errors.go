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
	"fmt"
	"path/filepath"
	"strings"
)

// UnsupportedFormatError reports a file whose extension has no registered
// reader.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	// Legacy BIFF .xls gets a pointer at the fix instead of the generic line.
	if strings.EqualFold(filepath.Ext(e.Filename), ".xls") {
		return fmt.Sprintf("legacy .xls workbook %q is not supported: re-save it as .xlsx", e.Filename)
	}
	return fmt.Sprintf("unsupported file type %q: please upload CSV or .xlsx files", e.Filename)
}

// EmptyFileError reports a parsed file that contained no data rows.
type EmptyFileError struct {
	Filename string
}

func (e *EmptyFileError) Error() string {
	return fmt.Sprintf("uploaded file %q has no rows", e.Filename)
}
