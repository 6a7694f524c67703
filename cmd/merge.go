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
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spreadsheet-tools/lookup-automator/internal/lookup"
	"github.com/spreadsheet-tools/lookup-automator/internal/reader"
	"github.com/spreadsheet-tools/lookup-automator/internal/table"
	"github.com/spreadsheet-tools/lookup-automator/internal/utils"
)

var (
	mergeBaseFile    string
	mergeLookupFile  string
	mergeBaseKey     string
	mergeLookupKey   string
	mergeColumns     string
	mergeInsertAfter string
	mergeOutFile     string
	mergeForce       bool
)

// mergeCmd runs a one-shot lookup merge from the command line.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge lookup columns into a base spreadsheet",
	Long: `Reads the base and lookup spreadsheets, matches rows on the chosen key
columns, appends the selected lookup columns to every base row, and writes the
result as CSV.`,
	Example: `./lookup-automator merge --base people.csv --lookup departments.xlsx --base-key id --lookup-key code --columns "dept,location" --out_file enriched.csv`,
	RunE:    runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	valueColumns, err := utils.ParseColumnsFlag(mergeColumns)
	if err != nil {
		return err
	}
	if len(valueColumns) == 0 {
		return fmt.Errorf("no value columns selected (--columns)")
	}

	outputFile := mergeOutFile
	if outputFile == "" {
		outputFile = utils.GetDefaultOutputFilePath(mergeBaseFile)
	}

	logger.Info("starting merge",
		zap.String("base", mergeBaseFile),
		zap.String("lookup", mergeLookupFile),
		zap.Strings("columns", valueColumns),
	)

	base, err := reader.ReadFile(mergeBaseFile)
	if err != nil {
		return fmt.Errorf("base file: %w", err)
	}
	lkp, err := reader.ReadFile(mergeLookupFile)
	if err != nil {
		return fmt.Errorf("lookup file: %w", err)
	}

	res, err := lookup.Merge(base, lkp, lookup.Params{
		BaseKey:      mergeBaseKey,
		LookupKey:    mergeLookupKey,
		ValueColumns: valueColumns,
		InsertAfter:  mergeInsertAfter,
	})
	if err != nil {
		return err
	}

	if res.Report.EmptyInput {
		logger.Warn("one of the input tables has no rows; all fetched columns are empty")
	}

	if !mergeForce {
		if _, statErr := os.Stat(outputFile); statErr == nil {
			if !utils.ConfirmOverwrite(outputFile) {
				logger.Info("merge aborted by user")
				return nil
			}
		}
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := table.WriteCSV(file, res.Table); err != nil {
		return fmt.Errorf("failed to write result CSV: %w", err)
	}

	fmt.Printf("Lookup completed. %d rows processed, %d matched.\n",
		res.Report.RowsProcessed, res.Report.RowsMatched)
	fmt.Printf("Results written to: %s\n", outputFile)
	return nil
}

func init() {
	mergeCmd.Flags().StringVar(&mergeBaseFile, "base", "", "Base spreadsheet (receives the lookup values) - MANDATORY")
	mergeCmd.Flags().StringVar(&mergeLookupFile, "lookup", "", "Lookup spreadsheet (contains the reference values) - MANDATORY")
	mergeCmd.Flags().StringVar(&mergeBaseKey, "base-key", "", "Key column in the base file - MANDATORY")
	mergeCmd.Flags().StringVar(&mergeLookupKey, "lookup-key", "", "Key column in the lookup file - MANDATORY")
	mergeCmd.Flags().StringVar(&mergeColumns, "columns", "", `Comma-separated lookup columns to fetch (quote names containing commas: 'dept,"last, first"') - MANDATORY`)
	mergeCmd.Flags().StringVar(&mergeInsertAfter, "insert-after", lookup.InsertAtEnd, "Where the fetched columns land: a base column name, 'begin', or 'end' (a base column with the same name wins over the bare aliases)")
	mergeCmd.Flags().StringVarP(&mergeOutFile, "out_file", "o", "", "File path for the result CSV (defaults to <base>_lookup.csv)")
	mergeCmd.Flags().BoolVar(&mergeForce, "force", false, "Overwrite the output file without asking")

	_ = mergeCmd.MarkFlagRequired("base")
	_ = mergeCmd.MarkFlagRequired("lookup")
	_ = mergeCmd.MarkFlagRequired("base-key")
	_ = mergeCmd.MarkFlagRequired("lookup-key")
	_ = mergeCmd.MarkFlagRequired("columns")
}
