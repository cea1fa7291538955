package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePreset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFullPreset(t *testing.T) {
	path := writePreset(t, `
sim = "reiter"
size = 33
margin = 1
alpha = 2.0
beta = 0.6
gamma = 0.05
`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "reiter", p.Sim)
	assert.Equal(t, "33", p.Values["size"])
	assert.Equal(t, "1", p.Values["margin"])
	assert.Equal(t, "2", p.Values["alpha"])
	assert.Equal(t, "0.6", p.Values["beta"])
	assert.Equal(t, "0.05", p.Values["gamma"])
}

func TestLoadPartialPresetOmitsUndefinedKeys(t *testing.T) {
	path := writePreset(t, `
sim = "stochastic"
chance = 0.2
`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "stochastic", p.Sim)
	assert.Equal(t, "0.2", p.Values["chance"])
	assert.NotContains(t, p.Values, "size")
	assert.NotContains(t, p.Values, "alpha")
	assert.NotContains(t, p.Values, "seed")
}

func TestLoadRejectsBadGeometry(t *testing.T) {
	_, err := Load(writePreset(t, "size = 0\n"))
	assert.Error(t, err)

	_, err = Load(writePreset(t, "margin = -1\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadMalformedTOML(t *testing.T) {
	_, err := Load(writePreset(t, "size = [oops\n"))
	assert.Error(t, err)
}
