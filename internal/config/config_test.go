package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"save": { "backend": "sqlite", "sqlitePath": "/tmp/x.db" },
		"world": { "seed": 1234 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, "sqlite", GetString("save.backend"))
	assert.Equal(t, "/tmp/x.db", GetString("save.sqlitePath"))
	assert.Equal(t, int64(1234), GetInt64("world.seed"))
	// Defaults still apply to keys the file omits
	assert.Equal(t, 1280, GetInt("window.width"))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, "console", GetString("logFormat"))
	assert.Equal(t, 1280, GetInt("window.width"))
	assert.Equal(t, 800, GetInt("window.height"))
	assert.Equal(t, "file", GetString("save.backend"))
	assert.Equal(t, "./saves", GetString("save.dir"))
	assert.Equal(t, "slot1", GetString("save.slot"))
	assert.Equal(t, false, GetBool("telemetry.enabled"))
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
