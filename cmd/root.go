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
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spreadsheet-tools/lookup-automator/internal/config"
	"github.com/spreadsheet-tools/lookup-automator/internal/logging"
	_ "github.com/spreadsheet-tools/lookup-automator/internal/reader/csvfile"
	_ "github.com/spreadsheet-tools/lookup-automator/internal/reader/excel"
)

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lookup-automator",
	Short: "A tool to merge lookup columns between spreadsheets",
	Long: `lookup-automator replicates Excel's VLOOKUP/XLOOKUP across two spreadsheet
files: rows from a base file are matched against a lookup file on a chosen key
column in each, and selected value columns are appended to the base file.`,
	PersistentPreRunE: initFlagsAndConfig,
	SilenceUsage:      true,
}

// initFlagsAndConfig builds the configuration and logger before any command runs.
func initFlagsAndConfig(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	cfg.Verbose = verbose
	config.SetConfig(cfg)

	logger = logging.New(cfg.Verbose)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(serveCmd)
}
