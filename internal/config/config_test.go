package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	carve "github.com/bglenden/carving-designer-sub000"
)

func TestConfigDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":3004", cfg.Addr)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, carve.HandleHitRadius, cfg.Interaction.HandleHitRadius)
	assert.Equal(t, carve.ActiveHandleHitRadius, cfg.Interaction.ActiveHandleHitRadius)
	assert.Equal(t, carve.MinZoom, cfg.Interaction.MinZoom)
	assert.Equal(t, carve.MaxZoom, cfg.Interaction.MaxZoom)
	assert.Equal(t, carve.DefaultJiggleParams().Position, cfg.Interaction.JigglePosition)
}

func TestConfigLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carved.toml")
	data := `
addr = ":9000"
db_path = "/tmp/designs/carve.db"

[interaction]
max_zoom = 80.0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/tmp/designs/carve.db", cfg.DBPath)
	assert.Equal(t, 80.0, cfg.Interaction.MaxZoom)
	assert.Equal(t, 10, cfg.ReadTimeout)
	assert.Equal(t, carve.HandleHitRadius, cfg.Interaction.HandleHitRadius)
}

func TestConfigLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestConfigEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carved.toml")
	require.NoError(t, os.WriteFile(path, []byte(`addr = ":9000"`), 0o644))

	t.Setenv("CARVED_ADDR", ":7777")
	t.Setenv("CARVED_READ_TIMEOUT", "30")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Addr)
	assert.Equal(t, 30, cfg.ReadTimeout)
}

func TestConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carved.toml")
	require.NoError(t, os.WriteFile(path, []byte("addr = [:::"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfigBadEnvInt(t *testing.T) {
	t.Setenv("CARVED_READ_TIMEOUT", "soon")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.ReadTimeout)
}
