package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "3000", env.HTTPPort)
	assert.Equal(t, "http://localhost:8080", env.KanboardURL)
	assert.Equal(t, "jsonrpc", env.KanboardUsername)
	assert.Equal(t, slog.LevelInfo, env.SlogLevel())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KANBOARD_URL", "https://kanboard.example.com")
	t.Setenv("KANBOARD_PASSWORD", "secret")
	t.Setenv("HTTP_PORT", "8090")
	t.Setenv("LOG_LEVEL", "debug")

	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://kanboard.example.com", env.KanboardURL)
	assert.Equal(t, "secret", env.KanboardPassword)
	assert.Equal(t, "8090", env.HTTPPort)
	assert.Equal(t, slog.LevelDebug, env.SlogLevel())
}

func TestSlogLevelFallback(t *testing.T) {
	env := &Env{LogLevel: "nonsense"}
	assert.Equal(t, slog.LevelInfo, env.SlogLevel())
}
