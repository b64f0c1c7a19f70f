package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"confirm_each_preference": true,
		"allow_restart": true,
		"informal_phrasing": false,
		"random_slot_order": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	opts := Load(path)
	assert.True(t, opts.ConfirmPreferences)
	assert.True(t, opts.AllowRestart)
	assert.False(t, opts.InformalPhrasing)
	assert.True(t, opts.RandomSlotOrder)
}

func TestLoadMissingFileDefaults(t *testing.T) {
	opts := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, Options{}, opts)
}

func TestLoadMalformedFileDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	opts := Load(path)
	assert.Equal(t, Options{}, opts)
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"allow_restart": true}`), 0o644))

	opts := Load(path)
	assert.True(t, opts.AllowRestart)
	assert.False(t, opts.ConfirmPreferences)
	assert.False(t, opts.InformalPhrasing)
	assert.False(t, opts.RandomSlotOrder)
}
