// Package config loads application configuration from environment variables
// and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// configPathEnv names the optional YAML file. Environment variables always
// take priority over values in the file.
const configPathEnv = "RECIPES_CONFIG_PATH"

// Config holds the application configuration.
type Config struct {
	ListenAddr      string        `yaml:"listen_addr"      env:"RECIPES_LISTEN_ADDR"      env-default:"127.0.0.1:8080"`
	DBPath          string        `yaml:"db_path"          env:"RECIPES_DB_PATH"          env-default:"recipes.db"`
	ListingDelay    time.Duration `yaml:"listing_delay"    env:"RECIPES_LISTING_DELAY"    env-default:"24h"`
	ListingLimit    int           `yaml:"listing_limit"    env:"RECIPES_LISTING_LIMIT"    env-default:"50"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"RECIPES_SHUTDOWN_TIMEOUT" env-default:"10s"`
	LogLevel        string        `yaml:"log_level"        env:"RECIPES_LOG_LEVEL"        env-default:"info"`
	LogFormat       string        `yaml:"log_format"       env:"RECIPES_LOG_FORMAT"       env-default:"text"`
}

// Load reads configuration and returns a validated Config.
// When RECIPES_CONFIG_PATH is set the YAML file it names must exist; values
// from the environment override the file. Without it, configuration comes
// from the environment and env-default tags only.
func Load() (*Config, error) {
	var cfg Config

	if path, ok := os.LookupEnv(configPathEnv); ok && path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate rejects values the service cannot run with.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("RECIPES_LISTEN_ADDR must not be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("RECIPES_DB_PATH must not be empty")
	}
	if c.ListingDelay < 0 {
		return fmt.Errorf("RECIPES_LISTING_DELAY must not be negative, got %s", c.ListingDelay)
	}
	if c.ListingLimit <= 0 {
		return fmt.Errorf("RECIPES_LISTING_LIMIT must be positive, got %d", c.ListingLimit)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("RECIPES_SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("RECIPES_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}
