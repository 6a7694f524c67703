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

import "fmt"

// Table names reported inside a SchemaError.
const (
	TableBase   = "base"
	TableLookup = "lookup"
)

// SchemaError reports a requested column that does not exist in the table it
// was selected from. It is raised before any row processing.
type SchemaError struct {
	Column string
	Table  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q not found in %s table", e.Column, e.Table)
}

// InvalidParamsError reports a structurally invalid merge request, such as an
// empty value-column selection.
type InvalidParamsError struct {
	Msg string
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("invalid merge parameters: %s", e.Msg)
}
