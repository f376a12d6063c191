package cli

import (
	"fmt"

	"github.com/mcpctl-dev/mcpctl/internal/cli/prompt"
	"github.com/mcpctl-dev/mcpctl/internal/clients"
	"github.com/mcpctl-dev/mcpctl/internal/runtime"
	"github.com/mcpctl-dev/mcpctl/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	installClient     string
	installVersion    string
	installConfigJSON string
	installEnvVars    []string
	installArgVars    []string
	installHeaders    []string
	installRemote     bool
	installYes        bool
)

var installCmd = &cobra.Command{
	Use:   "install <server>",
	Short: "Install an MCP server for an AI client",
	Long: `Resolve a server from the registry and write its launch configuration
into the target client's config file.

Servers backed by an npm or PyPI package are installed as local stdio
servers; if the launch command needs uv or Bun and the runtime is missing,
mcpctl offers to install it. Hosted servers are installed as remote URL
entries.`,
	Example: `  mcpctl install io.github.example/fetch
  mcpctl install fetch --client cursor
  mcpctl install fetch --config '{"API_TOKEN":"abc123"}'`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installClient, "client", "", "Target client (default: saved default, then claude)")
	installCmd.Flags().StringVar(&installVersion, "server-version", "", "Install a specific server version (default: latest)")
	installCmd.Flags().StringVar(&installConfigJSON, "config", "", "Server configuration values as a JSON object, applied as environment variables")
	installCmd.Flags().StringArrayVarP(&installEnvVars, "env", "e", nil, "Environment variable in KEY=VALUE format (repeatable)")
	installCmd.Flags().StringArrayVar(&installArgVars, "arg", nil, "Launch argument override in KEY=VALUE format (repeatable)")
	installCmd.Flags().StringArrayVar(&installHeaders, "header", nil, "Header for remote servers in KEY=VALUE format (repeatable)")
	installCmd.Flags().BoolVar(&installRemote, "remote", false, "Prefer the hosted remote connection when the server offers both")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Automatically accept all prompts")
}

func runInstall(cmd *cobra.Command, args []string) error {
	serverName := args[0]

	client, err := resolveClient(installClient)
	if err != nil {
		return err
	}

	ov, err := buildOverrides(installConfigJSON, installEnvVars, installArgVars, installHeaders)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintInfo(fmt.Sprintf("Resolving %s from %s...", serverName, cfg.RegistryURL))
	}
	entry, err := newRegistryClient().ResolveServer(serverName, installVersion)
	if err != nil {
		return err
	}

	launch, err := runtime.Translate(&entry.Server, ov, installRemote)
	if err != nil {
		return err
	}

	if !launch.IsRemote() {
		installer := runtime.NewInstaller(installYes, cfg.Verbose, prompt.Confirm)
		if err := installer.Ensure(runtime.DetectPrerequisite(launch)); err != nil {
			return err
		}
	}

	configPath, err := client.ConfigPath()
	if err != nil {
		return err
	}
	doc, err := clients.LoadDocument(configPath)
	if err != nil {
		return err
	}

	key := clients.NormalizeServerName(entry.Server.Name)
	if err := doc.Set(key, launch); err != nil {
		return err
	}
	if err := doc.Save(); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Installed %s for %s", entry.Server.Name, client.DisplayName))
	printer.PrintInfo(fmt.Sprintf("Restart %s to load the new server.", client.DisplayName))
	return nil
}
