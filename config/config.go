package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Token            string        `env:"DISCORD_TOKEN,required,notEmpty"`
	AppID            string        `env:"CLIENT_ID,required,notEmpty"`
	GuildID          string        `env:"GUILD_ID"`
	ReactionInterval time.Duration `env:"REACTION_INTERVAL" envDefault:"250ms"`
	AbsentCaption    string        `env:"ABSENT_CAPTION" envDefault:"私は今シンガポールにいます"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env files if present and then parses the environment. A
// missing file is expected under a process manager and is not reported.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file, using process environment", "err", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ReactionInterval < 0 {
		return nil, fmt.Errorf("parse config: REACTION_INTERVAL must not be negative, got %s", cfg.ReactionInterval)
	}

	return &cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
