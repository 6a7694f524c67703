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
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/spreadsheet-tools/lookup-automator/internal/lookup"
	"github.com/spreadsheet-tools/lookup-automator/internal/reader"
	"github.com/spreadsheet-tools/lookup-automator/internal/table"
)

type tableInfo struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
}

type createSessionResponse struct {
	SessionID string    `json:"session_id"`
	Base      tableInfo `json:"base"`
	Lookup    tableInfo `json:"lookup"`
}

// CreateSession accepts a multipart upload with "base" and "lookup" files,
// parses both, and opens a session holding them.
func (s *Server) CreateSession(c echo.Context) error {
	base, baseName, err := s.formTable(c, "base")
	if err != nil {
		return err
	}
	lkp, lookupName, err := s.formTable(c, "lookup")
	if err != nil {
		return err
	}

	sess := s.sessions.Create(base, lkp, baseName, lookupName)
	s.log.Info("session created",
		zap.String("session_id", sess.ID),
		zap.String("base", baseName),
		zap.String("lookup", lookupName),
		zap.Int("base_rows", base.NumRows()),
		zap.Int("lookup_rows", lkp.NumRows()),
	)

	return c.JSON(http.StatusOK, createSessionResponse{
		SessionID: sess.ID,
		Base:      tableInfo{Name: baseName, Columns: base.Columns, Rows: base.NumRows()},
		Lookup:    tableInfo{Name: lookupName, Columns: lkp.Columns, Rows: lkp.NumRows()},
	})
}

func (s *Server) formTable(c echo.Context, field string) (*table.Table, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("missing %q file", field))
	}
	if s.cfg.MaxUploadBytes > 0 && fh.Size > s.cfg.MaxUploadBytes {
		return nil, "", echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("%q file exceeds the %d byte upload limit", field, s.cfg.MaxUploadBytes))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("could not open %q file", field))
	}
	defer src.Close()

	t, err := reader.Read(fh.Filename, src)
	if err != nil {
		var unsupported *reader.UnsupportedFormatError
		var empty *reader.EmptyFileError
		if errors.As(err, &unsupported) || errors.As(err, &empty) {
			return nil, "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		s.log.Warn("file parse failed", zap.String("field", field), zap.String("file", fh.Filename), zap.Error(err))
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("could not read %q file: %s", field, fh.Filename))
	}
	return t, fh.Filename, nil
}

type mergeRequest struct {
	BaseKey      string   `json:"base_key" validate:"required"`
	LookupKey    string   `json:"lookup_key" validate:"required"`
	ValueColumns []string `json:"value_columns" validate:"required,min=1"`
	InsertAfter  string   `json:"insert_after"`
}

type mergeResponse struct {
	RowsProcessed   int        `json:"rows_processed"`
	RowsMatched     int        `json:"rows_matched"`
	EmptyInput      bool       `json:"empty_input"`
	Columns         []string   `json:"columns"`
	AppendedColumns []string   `json:"appended_columns"`
	Preview         [][]string `json:"preview"`
}

// RunMerge executes the lookup for a session and stores the result for
// download. Schema violations come back as 422 with the offending column so
// the page can point the user at the bad selection.
func (s *Server) RunMerge(c echo.Context) error {
	sess, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}

	var req mergeRequest
	if err := ValidateRequest(c, &req); err != nil {
		return err
	}

	res, err := lookup.Merge(sess.Base, sess.Lookup, lookup.Params{
		BaseKey:      req.BaseKey,
		LookupKey:    req.LookupKey,
		ValueColumns: req.ValueColumns,
		InsertAfter:  req.InsertAfter,
	})
	if err != nil {
		var schemaErr *lookup.SchemaError
		if errors.As(err, &schemaErr) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, map[string]string{
				"error":  schemaErr.Error(),
				"column": schemaErr.Column,
				"table":  schemaErr.Table,
			})
		}
		var paramsErr *lookup.InvalidParamsError
		if errors.As(err, &paramsErr) {
			return echo.NewHTTPError(http.StatusBadRequest, paramsErr.Error())
		}
		s.log.Error("merge failed", zap.String("session_id", sess.ID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "merge failed")
	}

	sess.SetResult(res)
	s.log.Info("merge completed",
		zap.String("session_id", sess.ID),
		zap.Int("rows_processed", res.Report.RowsProcessed),
		zap.Int("rows_matched", res.Report.RowsMatched),
	)

	return c.JSON(http.StatusOK, mergeResponse{
		RowsProcessed:   res.Report.RowsProcessed,
		RowsMatched:     res.Report.RowsMatched,
		EmptyInput:      res.Report.EmptyInput,
		Columns:         res.Table.Columns,
		AppendedColumns: res.Report.AppendedColumns,
		Preview:         previewRows(res.Table, s.cfg.PreviewRows),
	})
}

// Download streams the stored result as a CSV attachment.
func (s *Server) Download(c echo.Context) error {
	sess, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	res := sess.Result()
	if res == nil {
		return echo.NewHTTPError(http.StatusConflict, "no merge has been run for this session")
	}

	h := c.Response().Header()
	h.Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	h.Set(echo.HeaderContentDisposition, `attachment; filename="lookup_results.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return table.WriteCSV(c.Response(), res.Table)
}

func previewRows(t *table.Table, limit int) [][]string {
	n := t.NumRows()
	if limit > 0 && n > limit {
		n = limit
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		record := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			record[j] = t.Value(i, col).String()
		}
		rows = append(rows, record)
	}
	return rows
}
