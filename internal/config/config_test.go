package config

import (
	"os"
	"path/filepath"
	"testing"
)

// unset clears key for the duration of the test.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{EnvPreset, EnvPresetsFile, EnvOutputDir, EnvAddr, EnvHoneycombAPIKey, EnvHoneycombDataset} {
		unset(t, key)
	}

	s := FromEnv()
	if s.Preset != "" || s.PresetsFile != "" {
		t.Errorf("Expected empty preset settings, got %+v", s)
	}
	if s.OutputDir != defaultOutputDir || s.Addr != defaultAddr || s.HoneycombDataset != defaultDataset {
		t.Errorf("Defaults not applied: %+v", s)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvPreset, "sprawl")
	t.Setenv(EnvAddr, "127.0.0.1:9000")
	t.Setenv(EnvOutputDir, "/tmp/levels")

	s := FromEnv()
	if s.Preset != "sprawl" || s.Addr != "127.0.0.1:9000" || s.OutputDir != "/tmp/levels" {
		t.Errorf("Environment not read: %+v", s)
	}
}

func TestLoadDotEnv(t *testing.T) {
	unset(t, EnvPreset)
	t.Setenv(EnvAddr, ":7000")

	path := filepath.Join(t.TempDir(), ".env")
	content := EnvPreset + "=terminal\n" + EnvAddr + "=:1234\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	s := FromEnv()
	if s.Preset != "terminal" {
		t.Errorf("Expected preset from .env, got %q", s.Preset)
	}
	if s.Addr != ":7000" {
		t.Errorf("Existing variables must win over .env, got %q", s.Addr)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestApplyOTelEnv(t *testing.T) {
	unset(t, "OTEL_EXPORTER_OTLP_ENDPOINT")
	unset(t, "OTEL_EXPORTER_OTLP_HEADERS")

	Settings{}.ApplyOTelEnv()
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		t.Error("No API key should leave the exporter unconfigured")
	}

	s := Settings{HoneycombAPIKey: "key", HoneycombDataset: "levels"}
	if !s.TelemetryEnabled() {
		t.Error("An API key should enable telemetry")
	}
	s.ApplyOTelEnv()
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombURL {
		t.Errorf("Endpoint = %q", got)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "x-honeycomb-team=key,x-honeycomb-dataset=levels" {
		t.Errorf("Headers = %q", got)
	}
}
