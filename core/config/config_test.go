package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Grid.Rows)
	assert.Equal(t, 5, cfg.Grid.Columns)
	assert.Equal(t, 250, cfg.Grid.AnimationMS)
	assert.Equal(t, "simulated", cfg.Catalog.Provider)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GRID_ROWS", "2")
	t.Setenv("GRID_COLUMNS", "3")
	t.Setenv("CATALOG_PROVIDER", "database")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Grid.Rows)
	assert.Equal(t, 3, cfg.Grid.Columns)
	assert.Equal(t, "database", cfg.Catalog.Provider)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GRID_ANIMATION_MS=40\nSERVER_PORT=9090\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("GRID_ANIMATION_MS")
		os.Unsetenv("SERVER_PORT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Grid.AnimationMS)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"ZeroColumns", "GRID_COLUMNS", "0"},
		{"NegativeRows", "GRID_ROWS", "-2"},
		{"UnknownProvider", "CATALOG_PROVIDER", "ftp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}
