package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "srd", cfg.Database.Name)
	assert.Equal(t, "https://www.dnd5eapi.co", cfg.Remote.BaseURL)
	assert.Equal(t, 8, cfg.Sync.Concurrency)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("DATABASE_NAME", "srd_test")
	t.Setenv("SYNC_CONCURRENCY", "2")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "srd_test", cfg.Database.Name)
	assert.Equal(t, 2, cfg.Sync.Concurrency)
	assert.True(t, cfg.Storage.Enabled)
}
