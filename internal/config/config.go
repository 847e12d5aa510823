package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/acbryeans/astra-space-assignment/internal/scoring"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Events   EventsConfig   `yaml:"events"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type ScoringConfig struct {
	Weights            scoring.WeightSet `yaml:"weights"`
	BaselineRating     float64           `yaml:"baseline_rating"`
	TenureDomain       scoring.Domain    `yaml:"tenure_domain"`
	TripVolumeDomain   scoring.Domain    `yaml:"trip_volume_domain"`
	TripVolumeFromPool bool              `yaml:"trip_volume_from_pool"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Params assembles the explicit scoring configuration passed to the engine.
func (c *Config) Params() scoring.Params {
	return scoring.Params{
		Weights:            c.Scoring.Weights,
		BaselineRating:     c.Scoring.BaselineRating,
		TenureDomain:       c.Scoring.TenureDomain,
		TripVolumeDomain:   c.Scoring.TripVolumeDomain,
		TripVolumeFromPool: c.Scoring.TripVolumeFromPool,
	}
}

// Validate runs all configuration-time checks. Called once at startup;
// a failing config never serves a request.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("scoring config: %w", err)
	}
	return nil
}

func Load(path string) (*Config, error) {
	defaults := scoring.DefaultParams()
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Scoring: ScoringConfig{
			Weights:            defaults.Weights,
			BaselineRating:     defaults.BaselineRating,
			TenureDomain:       defaults.TenureDomain,
			TripVolumeDomain:   defaults.TripVolumeDomain,
			TripVolumeFromPool: defaults.TripVolumeFromPool,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ASTRA_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("ASTRA_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("ASTRA_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("ASTRA_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("ASTRA_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("ASTRA_BASELINE_RATING"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.BaselineRating = f
		}
	}
	if v := os.Getenv("ASTRA_TRIP_VOLUME_FROM_POOL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Scoring.TripVolumeFromPool = b
		}
	}
	if v := os.Getenv("ASTRA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
