package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	assert.Empty(t, s.APIKey)
	assert.Empty(t, s.DefaultClient)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcpctl", "settings.json")

	s := &Settings{APIKey: "sk-test", DefaultClient: "cursor"}
	require.NoError(t, s.Save(path))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", loaded.APIKey)
	assert.Equal(t, "cursor", loaded.DefaultClient)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestResolveKeyFlagWins(t *testing.T) {
	s := &Settings{APIKey: "saved-key"}

	assert.Equal(t, "flag-key", s.ResolveKey("flag-key"))
	assert.Equal(t, "saved-key", s.ResolveKey(""))

	// Resolving with a flag key must never touch the saved one.
	assert.Equal(t, "saved-key", s.APIKey)
}

func TestResolveKeyNoSavedKey(t *testing.T) {
	s := &Settings{}
	assert.Equal(t, "", s.ResolveKey(""))
	assert.Equal(t, "flag-key", s.ResolveKey("flag-key"))
}
