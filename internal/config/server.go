package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rpgo/fedcalc/internal/calculation"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds the web server settings.
type ServerConfig struct {
	Addr string `yaml:"addr" env:"FEDCALC_ADDR"`

	RateLimit struct {
		Requests  int           `yaml:"requests" env:"FEDCALC_RATE_LIMIT"`
		Window    time.Duration `yaml:"window" env:"FEDCALC_RATE_WINDOW"`
		RedisAddr string        `yaml:"redis_addr" env:"FEDCALC_REDIS_ADDR"`
	} `yaml:"rate_limit"`

	Recorder struct {
		SQLitePath string        `yaml:"sqlite_path" env:"FEDCALC_SQLITE_PATH"`
		Retention  time.Duration `yaml:"retention" env:"FEDCALC_RETENTION"`
		PruneCron  string        `yaml:"prune_cron" env:"FEDCALC_PRUNE_CRON"`
	} `yaml:"recorder"`

	Calculation struct {
		Multiplier string `yaml:"multiplier" env:"FEDCALC_MULTIPLIER"`
	} `yaml:"calculation"`

	Log struct {
		Verbose bool `yaml:"verbose" env:"FEDCALC_VERBOSE"`
	} `yaml:"log"`
}

// Default server settings.
const (
	DefaultAddr       = ":8080"
	DefaultRateLimit  = 60
	DefaultRateWindow = time.Minute
	DefaultRetention  = 30 * 24 * time.Hour
	DefaultPruneCron  = "0 0 3 * * *"
)

// LoadServerConfig reads path (a missing file is not an error), loads a .env
// file from the working directory if present, then applies FEDCALC_*
// environment overrides and fills defaults.
func LoadServerConfig(path string) (*ServerConfig, error) {
	cfg := &ServerConfig{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read server config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse server config: %w", err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ServerConfig) applyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = DefaultRateLimit
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = DefaultRateWindow
	}
	if c.Recorder.Retention == 0 {
		c.Recorder.Retention = DefaultRetention
	}
	if c.Recorder.PruneCron == "" {
		c.Recorder.PruneCron = DefaultPruneCron
	}
	if c.Calculation.Multiplier == "" {
		c.Calculation.Multiplier = string(calculation.MultiplierFlat)
	}
}

// Validate checks the settings after defaults are applied.
func (c *ServerConfig) Validate() error {
	if c.RateLimit.Requests < 0 {
		return fmt.Errorf("rate_limit.requests cannot be negative")
	}
	if c.RateLimit.Window < 0 {
		return fmt.Errorf("rate_limit.window cannot be negative")
	}
	if c.Recorder.Retention < 0 {
		return fmt.Errorf("recorder.retention cannot be negative")
	}
	if _, err := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow).Parse(c.Recorder.PruneCron); err != nil {
		return fmt.Errorf("recorder.prune_cron: %w", err)
	}
	if _, err := calculation.ParseMultiplierPolicy(c.Calculation.Multiplier); err != nil {
		return fmt.Errorf("calculation.multiplier: %w", err)
	}
	return nil
}

// MultiplierPolicy returns the parsed pension multiplier policy.
func (c *ServerConfig) MultiplierPolicy() calculation.MultiplierPolicy {
	p, err := calculation.ParseMultiplierPolicy(c.Calculation.Multiplier)
	if err != nil {
		return calculation.MultiplierFlat
	}
	return p
}
