package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, DriverPostgres, config.Database.Driver)
	assert.Equal(t, "session_token", config.Session.CookieName)
	assert.Equal(t, 24, config.Session.ExpiryHours)
	assert.True(t, config.Database.AutoMigrate)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := "PORT=9090\nDB_DRIVER=Memory\nDB_MAX_CONNS=4\nADMIN_USERNAME=root\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, DriverMemory, config.Database.Driver)
	assert.Equal(t, int32(4), config.Database.MaxConns)
	assert.Equal(t, "root", config.Admin.Username)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\n"), 0o600))
	t.Setenv("PORT", "7070")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", config.App.Port)
}
