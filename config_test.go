package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := readConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestReadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "Test"
width = 800
height = 600
tps = 60
map = "other.json"
dead-zone-pad = 100
`), 0o644))

	cfg, err := readConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, "other.json", cfg.Map)
	assert.Equal(t, 100, cfg.DeadZonePad)
}

func TestReadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("wdith = 800\n"), 0o644))

	_, err := readConfig(path)
	assert.ErrorContains(t, err, "wdith")
}

func TestDeadZoneRect(t *testing.T) {
	r := deadZoneRect(640, 480, 160)
	assert.Equal(t, 160, r.X)
	assert.Equal(t, 320, r.Width)
	assert.Equal(t, 160, r.Height)

	// a pad larger than the viewport collapses to a full-view zone
	r = deadZoneRect(100, 100, 160)
	assert.Equal(t, 0, r.X)
	assert.Equal(t, 100, r.Width)
}
