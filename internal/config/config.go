package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	Catalog CatalogConfig
	Log     LogConfig
	Sim     SimConfig
	Discord DiscordConfig
	Notify  NotifyConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is a redis:// URL. Empty means characters are kept in memory.
	URL string `env:"REDIS_URL"`
}

// CatalogConfig points at the game data file
type CatalogConfig struct {
	// Path to a YAML catalog. Empty means the embedded default.
	Path string `env:"CATALOG_PATH"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// SimConfig holds simulation configuration
type SimConfig struct {
	// Seed makes every roll reproducible. Nil means a random seed.
	Seed *int64 `env:"RNG_SEED"`

	TickInterval int `env:"TICK_INTERVAL" envDefault:"1"`
	Workers      int `env:"SIM_WORKERS" envDefault:"0"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token     string `env:"DISCORD_TOKEN"`
	ChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// Enabled reports whether heal notifications should be posted to Discord
func (c DiscordConfig) Enabled() bool {
	return c.Token != ""
}

// NotifyConfig holds notification configuration
type NotifyConfig struct {
	Locale   string `env:"NOTIFY_LOCALE" envDefault:"en"`
	Everyone bool   `env:"NOTIFY_EVERYONE" envDefault:"false"`
}

// Load loads configuration from environment variables. Every malformed value
// is reported, none falls back to its default.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate
	if cfg.Sim.TickInterval < 1 {
		return nil, fmt.Errorf("TICK_INTERVAL must be at least 1, got %d", cfg.Sim.TickInterval)
	}
	if cfg.Sim.Workers < 0 {
		return nil, fmt.Errorf("SIM_WORKERS must not be negative, got %d", cfg.Sim.Workers)
	}
	if cfg.Discord.Enabled() && cfg.Discord.ChannelID == "" {
		return nil, fmt.Errorf("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}

	return cfg, nil
}
