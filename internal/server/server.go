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
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/net/http2"

	"github.com/spreadsheet-tools/lookup-automator/internal/config"
)

// Server is the web mode: a single-page lookup tool backed by a small
// session API.
type Server struct {
	Echo     *echo.Echo
	log      *zap.Logger
	cfg      config.ServerConfig
	sessions *SessionStore
}

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// ValidateRequest binds and validates a request payload in one step.
func ValidateRequest(c echo.Context, s interface{}) error {
	if err := c.Bind(s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(s); err != nil {
		return err
	}
	return nil
}

func New(cfg config.ServerConfig, log *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}

	s := &Server{
		Echo:     e,
		log:      log,
		cfg:      cfg,
		sessions: NewSessionStore(cfg.SessionTTL),
	}

	e.Use(s.loggerMiddleware)
	e.Use(middleware.CORS())

	e.GET("/hc", s.HealthCheck)
	e.GET("/", s.Index)

	api := e.Group("/api")
	api.POST("/sessions", s.CreateSession)
	api.POST("/sessions/:id/merge", s.RunMerge)
	api.GET("/sessions/:id/download", s.Download)

	return s
}

// Start blocks serving h2c until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.Echo.Listener = listener
	s.log.Info("starting h2c server", zap.String("addr", listener.Addr().String()))
	if err := s.Echo.StartH2CServer("", &http2.Server{}); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

func (*Server) HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// loggerMiddleware tags each request with an id and logs the outcome.
func (s *Server) loggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set("reqID", reqID)

		if err := next(c); err != nil {
			c.Error(err)
		}

		req := c.Request()
		res := c.Response()
		s.log.Debug("request handled",
			zap.String("reqID", reqID),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("remote_ip", c.RealIP()),
			zap.Int("status", res.Status),
			zap.Int64("bytes_out", res.Size),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}
