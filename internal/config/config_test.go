package config

import (
	"testing"
	"time"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig()
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.Server.ListenAddr)
	}
	if cfg.Server.PreviewRows != 20 {
		t.Errorf("PreviewRows = %d, want 20", cfg.Server.PreviewRows)
	}
	if cfg.Server.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.Server.SessionTTL)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestGetConfigEnvOverride(t *testing.T) {
	t.Setenv("LOOKUP_SERVER_LISTEN_ADDR", ":9999")
	cfg := GetConfig()
	if cfg.Server.ListenAddr != ":9999" {
		t.Errorf("ListenAddr = %q, want :9999", cfg.Server.ListenAddr)
	}
}

func TestSetConfigRoundTrip(t *testing.T) {
	cfg := GetConfig()
	cfg.Verbose = true
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(nil) })

	got := GetGlobalConfig()
	if !got.Verbose {
		t.Error("GetGlobalConfig lost the Verbose flag")
	}
}
