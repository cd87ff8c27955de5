package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drogueria/m/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.SeedPath)
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite:///from-env.db")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite:///from-env.db", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)

	cfg, err = config.Load([]string{"--db", "sqlite:///from-flag.db", "--seed", "catalog.csv"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite:///from-flag.db", cfg.DatabaseURL)
	assert.Equal(t, "catalog.csv", cfg.SeedPath)
}

func TestLoadRejectsUnknownFlag(t *testing.T) {
	_, err := config.Load([]string{"--port", "8080"})
	assert.Error(t, err)
}
