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
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spreadsheet-tools/lookup-automator/internal/config"
	"github.com/spreadsheet-tools/lookup-automator/internal/server"
)

var serveListenAddr string

// serveCmd starts the single-page web tool.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Start the web UI for interactive lookups",
	Example: `./lookup-automator serve --listen :8080`,
	RunE:    runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.GetGlobalConfig()
	if serveListenAddr != "" {
		cfg.Server.ListenAddr = serveListenAddr
	}

	srv := server.New(cfg.Server, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Server.ListenAddr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveListenAddr, "listen", "", "Listen address (defaults to :8080, or LOOKUP_SERVER_LISTEN_ADDR)")
}
