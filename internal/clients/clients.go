// Package clients knows the supported AI clients and how to read and
// write each client's MCP server configuration file.
package clients

import (
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"sort"
	"strings"
)

// Definition describes one supported AI client.
type Definition struct {
	// Name is the canonical identifier used with --client
	Name string
	// DisplayName is the human-readable client name
	DisplayName string

	// configPath returns the client's config file for the given OS and
	// home/config directories.
	configPath func(goos, home, appData string) string
}

var definitions = []Definition{
	{
		Name:        "claude",
		DisplayName: "Claude Desktop",
		configPath: func(goos, home, appData string) string {
			switch goos {
			case "darwin":
				return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
			case "windows":
				return filepath.Join(appData, "Claude", "claude_desktop_config.json")
			default:
				return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json")
			}
		},
	},
	{
		Name:        "claude-code",
		DisplayName: "Claude Code",
		configPath: func(goos, home, appData string) string {
			return filepath.Join(home, ".claude.json")
		},
	},
	{
		Name:        "cursor",
		DisplayName: "Cursor",
		configPath: func(goos, home, appData string) string {
			return filepath.Join(home, ".cursor", "mcp.json")
		},
	},
	{
		Name:        "windsurf",
		DisplayName: "Windsurf",
		configPath: func(goos, home, appData string) string {
			return filepath.Join(home, ".codeium", "windsurf", "mcp_config.json")
		},
	},
	{
		Name:        "vscode",
		DisplayName: "Visual Studio Code",
		configPath: func(goos, home, appData string) string {
			switch goos {
			case "darwin":
				return filepath.Join(home, "Library", "Application Support", "Code", "User", "mcp.json")
			case "windows":
				return filepath.Join(appData, "Code", "User", "mcp.json")
			default:
				return filepath.Join(home, ".config", "Code", "User", "mcp.json")
			}
		},
	},
	{
		Name:        "cline",
		DisplayName: "Cline",
		configPath: func(goos, home, appData string) string {
			storage := []string{"Code", "User", "globalStorage", "saoudrizwan.claude-dev", "settings", "cline_mcp_settings.json"}
			switch goos {
			case "darwin":
				return filepath.Join(append([]string{home, "Library", "Application Support"}, storage...)...)
			case "windows":
				return filepath.Join(append([]string{appData}, storage...)...)
			default:
				return filepath.Join(append([]string{home, ".config"}, storage...)...)
			}
		},
	},
}

// DefaultClient is used when neither --client nor a saved default is set.
const DefaultClient = "claude"

// Lookup finds a client definition by name.
func Lookup(name string) (*Definition, error) {
	for i := range definitions {
		if definitions[i].Name == strings.ToLower(name) {
			return &definitions[i], nil
		}
	}
	return nil, fmt.Errorf("client %q is not supported; run 'mcpctl list clients' to see supported clients", name)
}

// All returns the supported client definitions sorted by name.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ConfigPath returns the client's config file path on this host.
func (d *Definition) ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	appData := os.Getenv("APPDATA")
	return d.configPath(goruntime.GOOS, home, appData), nil
}

// NormalizeServerName turns a registry server name into a config key:
// the namespace prefix is dropped and anything outside [a-z0-9-] collapses
// to a single dash.
func NormalizeServerName(name string) string {
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		name = name[idx+1:]
	}
	name = strings.ToLower(name)

	var b strings.Builder
	lastDash := true // trims leading dashes
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
