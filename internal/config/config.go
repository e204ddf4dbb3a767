package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Events  EventsConfig  `yaml:"events"`
	Session SessionConfig `yaml:"session"`
	Scoring ScoringConfig `yaml:"scoring"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

// EventsConfig points at the NATS server for lifecycle events. An empty
// URL disables eventing entirely.
type EventsConfig struct {
	URL string `yaml:"url"`
}

type SessionConfig struct {
	IdleTimeoutMs     int      `yaml:"idle_timeout_ms"`
	ReapIntervalMs    int      `yaml:"reap_interval_ms"`
	MaxSessions       int      `yaml:"max_sessions"`
	DefaultCategories []string `yaml:"default_categories"`
	ExampleProgram    string   `yaml:"example_program"`
}

type ScoringConfig struct {
	DefaultWeight int `yaml:"default_weight"`
	WeightMin     int `yaml:"weight_min"`
	WeightMax     int `yaml:"weight_max"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Session.IdleTimeoutMs) * time.Millisecond
}

func (c *Config) ReapInterval() time.Duration {
	return time.Duration(c.Session.ReapIntervalMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Session: SessionConfig{
			IdleTimeoutMs:  1800000,
			ReapIntervalMs: 60000,
			MaxSessions:    256,
			DefaultCategories: []string{
				"Resident Happiness",
				"Case Exposure",
				"Schedule",
				"Fellowship Match Strength",
				"Location Fit",
				"Faculty Culture/Feedback",
				"Salary:COL",
				"Research Support",
				"Program Reputation",
			},
			ExampleProgram: "Example Hospital",
		},
		Scoring: ScoringConfig{
			DefaultWeight: 10,
			WeightMin:     0,
			WeightMax:     50,
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
	if v := os.Getenv("SHORTLIST_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("SHORTLIST_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("SHORTLIST_NATS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("SHORTLIST_IDLE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.IdleTimeoutMs = n
		}
	}
	if v := os.Getenv("SHORTLIST_REAP_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.ReapIntervalMs = n
		}
	}
	if v := os.Getenv("SHORTLIST_MAX_SESSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.MaxSessions = n
		}
	}
	if v := os.Getenv("SHORTLIST_DEFAULT_WEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scoring.DefaultWeight = n
		}
	}
	if v := os.Getenv("SHORTLIST_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
