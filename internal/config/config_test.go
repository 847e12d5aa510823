package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all ASTRA_ env vars to test pure defaults
	envVars := []string{
		"ASTRA_PORT", "ASTRA_METRICS_PORT", "ASTRA_ADMIN_TOKEN",
		"ASTRA_DATABASE_URL", "ASTRA_EVENTS_URL", "ASTRA_BASELINE_RATING",
		"ASTRA_TRIP_VOLUME_FROM_POOL", "ASTRA_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}

	// Scoring defaults
	if cfg.Scoring.BaselineRating != 3.0 {
		t.Errorf("expected baseline 3.0, got %f", cfg.Scoring.BaselineRating)
	}
	if cfg.Scoring.TenureDomain.Min != 2 || cfg.Scoring.TenureDomain.Max != 18 {
		t.Errorf("unexpected tenure domain [%g,%g]", cfg.Scoring.TenureDomain.Min, cfg.Scoring.TenureDomain.Max)
	}
	if cfg.Scoring.TripVolumeDomain.Min != 0 || cfg.Scoring.TripVolumeDomain.Max != 50 {
		t.Errorf("unexpected trip volume domain [%g,%g]", cfg.Scoring.TripVolumeDomain.Min, cfg.Scoring.TripVolumeDomain.Max)
	}
	if !cfg.Scoring.TripVolumeFromPool {
		t.Error("expected trip_volume_from_pool=true by default")
	}
	if math.Abs(cfg.Scoring.Weights.Sum()-1.0) > 1e-9 {
		t.Errorf("default weights sum to %f, expected 1.0", cfg.Scoring.Weights.Sum())
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ASTRA_PORT", "9100")
	t.Setenv("ASTRA_METRICS_PORT", "9101")
	t.Setenv("ASTRA_ADMIN_TOKEN", "secret-token")
	t.Setenv("ASTRA_DATABASE_URL", "postgres://localhost/astra_test")
	t.Setenv("ASTRA_EVENTS_URL", "nats://nats:4222")
	t.Setenv("ASTRA_BASELINE_RATING", "2.5")
	t.Setenv("ASTRA_TRIP_VOLUME_FROM_POOL", "false")
	t.Setenv("ASTRA_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9101 {
		t.Errorf("expected metrics port 9101, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("unexpected admin token %q", cfg.Server.AdminToken)
	}
	if cfg.Database.URL != "postgres://localhost/astra_test" {
		t.Errorf("unexpected database URL %q", cfg.Database.URL)
	}
	if cfg.Events.URL != "nats://nats:4222" {
		t.Errorf("unexpected events URL %q", cfg.Events.URL)
	}
	if cfg.Scoring.BaselineRating != 2.5 {
		t.Errorf("expected baseline 2.5, got %f", cfg.Scoring.BaselineRating)
	}
	if cfg.Scoring.TripVolumeFromPool {
		t.Error("expected trip_volume_from_pool=false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Alternate weight regime: tenure dropped, redistributed to volume.
	content := `
server:
  port: 8800
scoring:
  weights:
    overall_rating: 0.35
    lead_source: 0.15
    destination: 0.15
    communication: 0.10
    service_years: 0.00
    trip_volume: 0.25
  baseline_rating: 3.0
  tenure_domain: {min: 1, max: 20}
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800, got %d", cfg.Server.Port)
	}
	if cfg.Scoring.Weights.ServiceYears != 0 {
		t.Errorf("expected service_years weight 0, got %f", cfg.Scoring.Weights.ServiceYears)
	}
	if cfg.Scoring.TenureDomain.Min != 1 || cfg.Scoring.TenureDomain.Max != 20 {
		t.Errorf("unexpected tenure domain [%g,%g]", cfg.Scoring.TenureDomain.Min, cfg.Scoring.TenureDomain.Max)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("alternate weight regime must validate: %v", err)
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Scoring.Weights.OverallRating = 0.5 // sum now 1.2
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for weights not summing to 1.0")
	}
}

func TestValidateRejectsDegenerateDomain(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Scoring.TenureDomain.Max = cfg.Scoring.TenureDomain.Min
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for min == max domain")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
