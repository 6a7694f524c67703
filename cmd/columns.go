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
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spreadsheet-tools/lookup-automator/internal/reader"
)

// columnsCmd prints a spreadsheet's schema, for picking keys before a merge.
var columnsCmd = &cobra.Command{
	Use:     "columns <file>",
	Short:   "List the columns of a spreadsheet",
	Example: `./lookup-automator columns departments.xlsx`,
	Args:    cobra.ExactArgs(1),
	RunE:    runColumns,
}

func runColumns(cmd *cobra.Command, args []string) error {
	t, err := reader.ReadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d rows, %d columns\n", args[0], t.NumRows(), len(t.Columns))
	for _, col := range t.Columns {
		fmt.Printf("  %s\n", col)
	}
	return nil
}
