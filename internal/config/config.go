// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvPreset           = "BSPDUNGEON_PRESET"
	EnvPresetsFile      = "BSPDUNGEON_PRESETS_FILE"
	EnvOutputDir        = "BSPDUNGEON_OUTPUT_DIR"
	EnvAddr             = "BSPDUNGEON_ADDR"
	EnvHoneycombAPIKey  = "HONEYCOMB_BSPDUNGEON_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_BSPDUNGEON_DATASET"

	defaultOutputDir = "."
	defaultAddr      = ":8080"
	defaultDataset   = "bspdungeon"
	honeycombURL     = "https://api.honeycomb.io"
)

// Settings holds values that flags may override.
type Settings struct {
	Preset      string
	PresetsFile string
	OutputDir   string
	Addr        string

	HoneycombAPIKey  string
	HoneycombDataset string
}

// LoadDotEnv loads variables from the given files, or ./.env when none are
// named. Variables already set in the environment are kept.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// FromEnv reads settings from the environment, applying defaults.
func FromEnv() Settings {
	return Settings{
		Preset:           os.Getenv(EnvPreset),
		PresetsFile:      os.Getenv(EnvPresetsFile),
		OutputDir:        getenv(EnvOutputDir, defaultOutputDir),
		Addr:             getenv(EnvAddr, defaultAddr),
		HoneycombAPIKey:  os.Getenv(EnvHoneycombAPIKey),
		HoneycombDataset: getenv(EnvHoneycombDataset, defaultDataset),
	}
}

// TelemetryEnabled reports whether an exporter has somewhere to send spans.
func (s Settings) TelemetryEnabled() bool {
	return s.HoneycombAPIKey != "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
}

// ApplyOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured. An explicit OTEL_EXPORTER_OTLP_ENDPOINT is left untouched.
func (s Settings) ApplyOTelEnv() {
	if s.HoneycombAPIKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombURL)
	}
	// Build headers here; a .env reference to another variable is not expanded.
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", s.HoneycombAPIKey, s.HoneycombDataset))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
