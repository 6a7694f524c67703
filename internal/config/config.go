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
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Verbose bool
}

// ServerConfig holds the web-mode settings.
type ServerConfig struct {
	ListenAddr string
	// PreviewRows bounds the number of result rows returned in a merge
	// response; the full result is only available via download.
	PreviewRows int
	// SessionTTL is how long an uploaded pair of tables is kept before the
	// session is swept.
	SessionTTL time.Duration
	// MaxUploadBytes bounds a single uploaded file.
	MaxUploadBytes int64
}

var globalConfig *Config

// GetConfig returns the configuration with defaults applied, overridable via
// LOOKUP_* environment variables (e.g. LOOKUP_SERVER_LISTEN_ADDR). Flags set
// in cmd take precedence on top.
func GetConfig() *Config {
	v := viper.New()
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.preview_rows", 20)
	v.SetDefault("server.session_ttl", "30m")
	v.SetDefault("server.max_upload_bytes", int64(64<<20))

	v.SetEnvPrefix("LOOKUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			ListenAddr:     v.GetString("server.listen_addr"),
			PreviewRows:    v.GetInt("server.preview_rows"),
			SessionTTL:     v.GetDuration("server.session_ttl"),
			MaxUploadBytes: v.GetInt64("server.max_upload_bytes"),
		},
	}
}

// SetConfig sets the global configuration.
func SetConfig(cfg *Config) {
	globalConfig = cfg
}

// GetGlobalConfig returns the configuration set by the CLI layer, or defaults
// when none was set.
func GetGlobalConfig() *Config {
	if globalConfig == nil {
		return GetConfig()
	}
	return globalConfig
}
