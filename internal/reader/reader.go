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
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spreadsheet-tools/lookup-automator/internal/table"
)

// FormatReader parses one spreadsheet interchange format into a Table.
// Implementations register themselves by file extension; see the csvfile and
// excel subpackages.
type FormatReader interface {
	Read(r io.Reader) (*table.Table, error)
	Extensions() []string
}

var (
	formatReaders = make(map[string]FormatReader)
	mu            sync.RWMutex
)

func RegisterFormatReader(fr FormatReader) {
	mu.Lock()
	defer mu.Unlock()
	for _, ext := range fr.Extensions() {
		ext = strings.ToLower(ext)
		if _, exists := formatReaders[ext]; exists {
			log.Printf("WARN: Format reader for '%s' is being overwritten.", ext)
		}
		formatReaders[ext] = fr
	}
}

// ForFile picks a reader by the file name's extension, case-insensitively.
func ForFile(filename string) (FormatReader, error) {
	mu.RLock()
	defer mu.RUnlock()
	ext := strings.ToLower(filepath.Ext(filename))
	fr, ok := formatReaders[ext]
	if !ok {
		return nil, &UnsupportedFormatError{Filename: filename}
	}
	return fr, nil
}

// SupportedExtensions lists registered extensions, for error messages and UI.
func SupportedExtensions() []string {
	mu.RLock()
	defer mu.RUnlock()
	exts := make([]string, 0, len(formatReaders))
	for ext := range formatReaders {
		exts = append(exts, ext)
	}
	return exts
}

// Read parses a named stream. The name only selects the format; the content
// comes from r. A table without data rows is rejected so the caller never has
// to special-case a headers-only upload.
func Read(name string, r io.Reader) (*table.Table, error) {
	fr, err := ForFile(name)
	if err != nil {
		return nil, err
	}
	t, err := fr.Read(r)
	if err != nil {
		return nil, fmt.Errorf("could not read file %q: %w", name, err)
	}
	if t.NumRows() == 0 {
		return nil, &EmptyFileError{Filename: name}
	}
	return t, nil
}

// ReadFile parses a spreadsheet from disk.
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return Read(filepath.Base(path), f)
}
