// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token        string `yaml:"token"`
	Workers      int    `yaml:"workers"` // polling workers
	AdminGroupID int64  `yaml:"admin_group_id"`
}

type APIConfig struct {
	BaseURL    string `yaml:"base_url"`
	AdminToken string `yaml:"admin_token"`
}

type WebhookConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SentryConfig struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
}

type FormatConfig struct {
	Currency string `yaml:"currency"`
	SiteURL  string `yaml:"site_url"`
	Support  string `yaml:"support"`
}

type HealthConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// UnmarshalYAML accepts the interval in time.ParseDuration notation ("5m",
// "90s"); yaml.v3 has no native duration handling.
func (h *HealthConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Interval string `yaml:"interval"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Interval == "" {
		return nil
	}
	d, err := time.ParseDuration(raw.Interval)
	if err != nil {
		return fmt.Errorf("health.interval: %w", err)
	}
	h.Interval = d
	return nil
}

type Config struct {
	Bot     BotConfig     `yaml:"bot"`
	API     APIConfig     `yaml:"api"`
	Webhook WebhookConfig `yaml:"webhook"`
	Log     LogConfig     `yaml:"log"`
	Redis   RedisConfig   `yaml:"redis"`
	Sentry  SentryConfig  `yaml:"sentry"`
	Format  FormatConfig  `yaml:"format"`
	Health  HealthConfig  `yaml:"health"`

	Runtime RuntimeConfig `yaml:"-"`
}

// LoadConfig reads the YAML config, overlays secrets from the environment
// (a local .env file is honored when present) and applies defaults.
func LoadConfig(path string, dev bool) (*Config, error) {
	_ = godotenv.Load()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Secrets from the environment take precedence over the file.
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.Bot.Token = v
	}
	if v := os.Getenv("ADMIN_API_TOKEN"); v != "" {
		cfg.API.AdminToken = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.Sentry.DSN = v
	}
	if v := os.Getenv("ADMIN_GROUP_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ADMIN_GROUP_ID: %w", err)
		}
		cfg.Bot.AdminGroupID = id
	}

	// defaults
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 8
	}
	if cfg.Webhook.Port == 0 {
		cfg.Webhook.Port = 5001
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Format.Currency == "" {
		cfg.Format.Currency = "сом"
	}
	if cfg.Health.Interval <= 0 {
		cfg.Health.Interval = 5 * time.Minute
	}

	// Minimal validation
	if cfg.Bot.Token == "" {
		return nil, errors.New("bot.token is required")
	}
	if cfg.API.BaseURL == "" {
		return nil, errors.New("api.base_url is required")
	}
	if cfg.Bot.AdminGroupID == 0 {
		return nil, errors.New("bot.admin_group_id is required")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
