package config

import "testing"

// --- Load ---

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("UMX_OUTPUT", "")
	t.Setenv("UMX_FALLBACK_OUTPUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")

	cfg := Load()

	if cfg.OutputRoot != DefaultOutputRoot {
		t.Errorf("OutputRoot = %s, want %s", cfg.OutputRoot, DefaultOutputRoot)
	}
	if cfg.FallbackRoot != DefaultFallbackRoot {
		t.Errorf("FallbackRoot = %s, want %s", cfg.FallbackRoot, DefaultFallbackRoot)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("UMX_OUTPUT", "/srv/docs")
	t.Setenv("UMX_FALLBACK_OUTPUT", "/var/tmp/docs")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DEBUG", "")

	cfg := Load()

	if cfg.OutputRoot != "/srv/docs" {
		t.Errorf("OutputRoot = %s, want /srv/docs", cfg.OutputRoot)
	}
	if cfg.FallbackRoot != "/var/tmp/docs" {
		t.Errorf("FallbackRoot = %s, want /var/tmp/docs", cfg.FallbackRoot)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", cfg.LogLevel)
	}
}

func TestLoad_DebugFlagWins(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DEBUG", "1")

	if cfg := Load(); cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug when DEBUG=1", cfg.LogLevel)
	}
}
