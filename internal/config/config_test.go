package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 1280
height = 720

[camera]
offset = [0.0, -5.0, -20.0]

[scene]
helicopters = 5

[log]
level = "debug"
`)
	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "mini-scene", cfg.Window.Title)
	assert.Equal(t, [3]float32{0, -5, -20}, cfg.Camera.Offset)
	assert.Equal(t, 5, cfg.Scene.Helicopters)
	assert.Equal(t, float32(40), cfg.Controls.MoveSpeed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[window]\nwidht = 10\n")
	_, err := Load(path, false)
	assert.ErrorContains(t, err, "widht")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "[camera]\nnear = 10.0\nfar = 1.0\n\n[log]\nlevel = \"loud\"\n")
	_, err := Load(path, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "clip planes")
	assert.ErrorContains(t, err, "loud")
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWireframeToggle(t *testing.T) {
	SetWireframeMode(false)
	t.Cleanup(func() { SetWireframeMode(false) })

	assert.True(t, ToggleWireframeMode())
	assert.True(t, IsWireframeMode())
	assert.False(t, ToggleWireframeMode())
	assert.False(t, IsWireframeMode())
}

func TestBundledConfigFileLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.toml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
