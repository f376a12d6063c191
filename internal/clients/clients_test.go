package clients

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	def, err := Lookup("cursor")
	require.NoError(t, err)
	assert.Equal(t, "Cursor", def.DisplayName)

	def, err = Lookup("CLAUDE")
	require.NoError(t, err)
	assert.Equal(t, "claude", def.Name)

	_, err = Lookup("zed")
	assert.ErrorContains(t, err, "not supported")
}

func TestAllSorted(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}
}

func TestConfigPaths(t *testing.T) {
	testCases := []struct {
		client string
		goos   string
		want   []string
	}{
		{"claude", "darwin", []string{"home", "Library", "Application Support", "Claude", "claude_desktop_config.json"}},
		{"claude", "linux", []string{"home", ".config", "Claude", "claude_desktop_config.json"}},
		{"claude-code", "linux", []string{"home", ".claude.json"}},
		{"cursor", "darwin", []string{"home", ".cursor", "mcp.json"}},
		{"windsurf", "linux", []string{"home", ".codeium", "windsurf", "mcp_config.json"}},
		{"vscode", "linux", []string{"home", ".config", "Code", "User", "mcp.json"}},
	}

	for _, tc := range testCases {
		def, err := Lookup(tc.client)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tc.want...), def.configPath(tc.goos, "home", "appdata"), "%s on %s", tc.client, tc.goos)
	}
}

func TestConfigPathWindowsUsesAppData(t *testing.T) {
	def, err := Lookup("claude")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("appdata", "Claude", "claude_desktop_config.json"), def.configPath("windows", "home", "appdata"))
}

func TestNormalizeServerName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"io.github.example/fetch", "fetch"},
		{"io.example/Weather_Server", "weather-server"},
		{"@scope/server-name", "server-name"},
		{"plain", "plain"},
		{"Spaces And.Dots", "spaces-and-dots"},
		{"trailing-", "trailing"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, NormalizeServerName(tc.in), "input %q", tc.in)
	}
}
