package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Env holds all process configuration. It is read once at startup and passed
// into the Kanboard client and the gateway; nothing reads the environment
// after that.
type Env struct {
	Env      string `envconfig:"ENV" default:"local"`
	HTTPHost string `envconfig:"HTTP_HOST" default:""`
	HTTPPort string `envconfig:"HTTP_PORT" default:"3000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	KanboardURL      string `envconfig:"KANBOARD_URL" default:"http://localhost:8080"`
	KanboardUsername string `envconfig:"KANBOARD_USERNAME" default:"jsonrpc"`
	KanboardPassword string `envconfig:"KANBOARD_PASSWORD" default:""`
}

func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	return &env, nil
}

func (e *Env) SlogLevel() slog.Level {
	if e == nil {
		return slog.LevelInfo
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
