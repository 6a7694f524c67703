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
package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetDefaultOutputFilePath derives the result CSV path from the base file:
// "people.xlsx" becomes "people_lookup.csv" next to the working directory.
func GetDefaultOutputFilePath(basePath string) string {
	stem := strings.TrimSuffix(filepath.Base(basePath), filepath.Ext(basePath))
	return fmt.Sprintf("%s_lookup.csv", stem)
}

// ConfirmOverwrite prompts before clobbering an existing output file.
func ConfirmOverwrite(path string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("\nOutput file already exists: %s\n", path)
	fmt.Print("Do you want to overwrite it? (yes/no): ")
	text, _ := reader.ReadString('\n')
	action := strings.TrimSpace(strings.ToLower(text))
	return action == "yes" || action == "y"
}

// ParseColumnsFlag parses a comma-separated column list. Names containing
// commas can be double-quoted: `dept,"last, first"`.
func ParseColumnsFlag(flag string) ([]string, error) {
	if strings.TrimSpace(flag) == "" {
		return nil, nil
	}

	parts, err := SplitOutsideQuotes(flag)
	if err != nil {
		return nil, err
	}

	var columns []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, `"`) && strings.HasSuffix(part, `"`) && len(part) >= 2 {
			part = part[1 : len(part)-1]
		}
		if part != "" {
			columns = append(columns, part)
		}
	}
	return columns, nil
}

// SplitOutsideQuotes splits s on commas that are not within double quotes.
func SplitOutsideQuotes(s string) ([]string, error) {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, char := range s {
		switch char {
		case '"':
			inQuotes = !inQuotes
			current.WriteRune(char)
		case ',':
			if inQuotes {
				current.WriteRune(char)
			} else {
				result = append(result, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(char)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("unterminated quote in column list: %s", s)
	}

	// Add the last part
	if current.Len() > 0 {
		result = append(result, current.String())
	}

	return result, nil
}
