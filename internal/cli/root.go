package cli

import (
	"os"

	"github.com/mcpctl-dev/mcpctl/internal/config"
	"github.com/mcpctl-dev/mcpctl/internal/registry"
	"github.com/mcpctl-dev/mcpctl/pkg/printer"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags
var version = "dev"

var (
	cfg      *config.Config
	verbose  bool
	apiKey   string
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "mcpctl",
	Short: "Install and manage MCP servers",
	Long: `mcpctl resolves Model Context Protocol servers from a registry and
writes their launch configuration into the config files of supported AI
clients (Claude Desktop, Claude Code, Cursor, Windsurf, VS Code, Cline).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.New()
		if verbose {
			cfg.Verbose = true
		}

		path, err := settingsPath()
		if err != nil {
			return err
		}
		settings, err = config.LoadSettings(path)
		return err
	},
}

func settingsPath() (string, error) {
	if cfg != nil && cfg.SettingsPath != "" {
		return cfg.SettingsPath, nil
	}
	return config.SettingsPath()
}

// newRegistryClient builds a registry client for this invocation. A key
// passed via --key takes precedence over the saved one and is never
// persisted.
func newRegistryClient() *registry.Client {
	return registry.NewClient(cfg.RegistryURL, settings.ResolveKey(apiKey), cfg.RequestTimeout)
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&apiKey, "key", "", "Registry API key for this invocation (not persisted)")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(loginCmd)
}
