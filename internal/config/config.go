package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"skirmish/internal/game"
)

// Config holds the process settings read from the environment.
type Config struct {
	Addr           string        `env:"SKIRMISH_ADDR" envDefault:":8080"`
	StaticDir      string        `env:"SKIRMISH_STATIC_DIR"`
	AllowedOrigins []string      `env:"SKIRMISH_ALLOWED_ORIGINS" envSeparator:","`
	SnapshotRate   int           `env:"SKIRMISH_SNAPSHOT_HZ" envDefault:"20"`
	KillLimit      int           `env:"SKIRMISH_KILL_LIMIT" envDefault:"25"`
	RespawnDelay   time.Duration `env:"SKIRMISH_RESPAWN_DELAY" envDefault:"3s"`
	MaxPlayers     int           `env:"SKIRMISH_MAX_PLAYERS" envDefault:"32"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the given dotenv files (".env" when none are named) into the
// process environment, then parses and validates the config. Missing dotenv
// files are not an error; variables already set win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the room cannot run with.
func (c Config) Validate() error {
	if c.SnapshotRate <= 0 {
		return fmt.Errorf("SKIRMISH_SNAPSHOT_HZ must be positive, got %d", c.SnapshotRate)
	}
	if c.KillLimit <= 0 {
		return fmt.Errorf("SKIRMISH_KILL_LIMIT must be positive, got %d", c.KillLimit)
	}
	if c.RespawnDelay < 0 {
		return fmt.Errorf("SKIRMISH_RESPAWN_DELAY must not be negative, got %s", c.RespawnDelay)
	}
	if c.MaxPlayers < 0 {
		return fmt.Errorf("SKIRMISH_MAX_PLAYERS must not be negative, got %d", c.MaxPlayers)
	}
	return nil
}

// Rules returns the stock game rules with the configured session tuning.
func (c Config) Rules() game.Rules {
	rules := game.DefaultRules()
	rules.SnapshotRate = c.SnapshotRate
	rules.KillLimit = c.KillLimit
	rules.RespawnDelay = c.RespawnDelay
	rules.MaxPlayers = c.MaxPlayers
	return rules
}
