// Package config loads the toolkit's configuration from
// ~/Dexter/config/camb.json. A missing file is created with defaults on
// first load, so a fresh install only needs an API key dropped into the
// file or exported as CAMB_API_KEY. Environment variables override the
// file, which keeps containers and CI free of config files entirely.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Environment overrides.
const (
	EnvAPIKey  = "CAMB_API_KEY"
	EnvBaseURL = "CAMB_BASE_URL"
)

// osUserHomeDir is swapped out by tests to point at a temp home.
var osUserHomeDir = os.UserHomeDir

// Config is the toolkit's configuration file shape.
type Config struct {
	APIKey              string      `json:"api_key"`
	BaseURL             string      `json:"base_url"`
	TimeoutSeconds      float64     `json:"timeout_seconds"`
	MaxPollAttempts     int         `json:"max_poll_attempts"`
	PollIntervalSeconds float64     `json:"poll_interval_seconds"`
	ArtifactDir         string      `json:"artifact_dir"`
	Redis               RedisConfig `json:"redis"`
}

// RedisConfig wires the optional artifact cache. Disabled by default; the
// toolkit works fully without it.
type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	TTLHours int    `json:"ttl_hours"`
}

// Default returns the configuration written on first run.
func Default() *Config {
	return &Config{
		BaseURL:             "https://client.camb.ai/apis",
		TimeoutSeconds:      60,
		MaxPollAttempts:     60,
		PollIntervalSeconds: 2,
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			TTLHours: 24,
		},
	}
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}

// PollInterval returns the pause between poll attempts as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds * float64(time.Second))
}

// Path returns the location of the config file.
func Path() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, "Dexter", "config", "camb.json"), nil
}

// Load reads the config file, creating it with defaults when missing, then
// applies environment overrides.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefault(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	// Unmarshal over the defaults so keys absent from an old file keep
	// their default values.
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not decode config file at %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	data, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write default config to %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
}
