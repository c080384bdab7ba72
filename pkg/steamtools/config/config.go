// Package config carries environment-derived settings for the steam-tools
// server and CLI.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime settings. Every field has an env binding with a
// sensible default; functional options may override after Load.
type Config struct {
	Port           string        `env:"PORT" env-default:"8765"`
	AppID          uint32        `env:"STEAM_APP_ID" env-default:"394360"`
	SteamRoot      string        `env:"STEAM_ROOT" env-default:""`
	QueryTimeout   time.Duration `env:"QUERY_TIMEOUT" env-default:"30s"`
	TickInterval   time.Duration `env:"TICK_INTERVAL" env-default:"16ms"`
	GameExecutable string        `env:"GAME_EXECUTABLE" env-default:"hoi4.exe"`
}

// Option represents a functional option for overriding loaded config
type Option func(*Config) error

// WithPort sets the HTTP listen port.
func WithPort(port string) Option {
	return func(c *Config) error {
		if port == "" {
			return fmt.Errorf("port cannot be empty")
		}
		c.Port = port
		return nil
	}
}

// WithAppID sets the Steam application id the adapter serves.
func WithAppID(id uint32) Option {
	return func(c *Config) error {
		if id == 0 {
			return fmt.Errorf("app id cannot be zero")
		}
		c.AppID = id
		return nil
	}
}

// WithSteamRoot pins a single steamapps directory instead of probing the
// platform-conventional Steam installs.
func WithSteamRoot(root string) Option {
	return func(c *Config) error {
		c.SteamRoot = root
		return nil
	}
}

// WithQueryTimeout bounds the blocking item-query wait. Zero disables the
// bound.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *Config) error {
		if d < 0 {
			return fmt.Errorf("query timeout cannot be negative")
		}
		c.QueryTimeout = d
		return nil
	}
}

// Load reads the environment and applies any overrides.
func Load(options ...Option) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	for _, option := range options {
		if err := option(&cfg); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}
