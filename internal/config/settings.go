package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings is the persisted per-user state, stored as a small JSON file
// under the user config directory. It survives across invocations; the
// environment-sourced Config above does not.
type Settings struct {
	// APIKey is the registry API key saved by `mcpctl login`
	APIKey string `json:"apiKey,omitempty"`

	// DefaultClient is used when --client is not passed
	DefaultClient string `json:"defaultClient,omitempty"`
}

// SettingsPath returns the default location of the settings file.
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}
	return filepath.Join(dir, "mcpctl", "settings.json"), nil
}

// LoadSettings reads the settings file at path. A missing file yields
// zero-valued settings rather than an error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the settings to path, creating parent directories as needed.
// The file carries the API key, so it is written user-only.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// ResolveKey picks the API key for one invocation. A key passed on the
// command line wins and is used as-is; it is never written back into the
// settings file. Only `mcpctl login` persists keys.
func (s *Settings) ResolveKey(flagKey string) string {
	if flagKey != "" {
		return flagKey
	}
	return s.APIKey
}
