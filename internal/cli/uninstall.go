package cli

import (
	"fmt"

	"github.com/mcpctl-dev/mcpctl/internal/clients"
	"github.com/mcpctl-dev/mcpctl/pkg/printer"
	"github.com/spf13/cobra"
)

var uninstallClient string

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <server>",
	Short: "Remove an installed MCP server from an AI client",
	Args:  cobra.ExactArgs(1),
	RunE:  runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVar(&uninstallClient, "client", "", "Target client (default: saved default, then claude)")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	serverName := args[0]

	client, err := resolveClient(uninstallClient)
	if err != nil {
		return err
	}

	configPath, err := client.ConfigPath()
	if err != nil {
		return err
	}
	doc, err := clients.LoadDocument(configPath)
	if err != nil {
		return err
	}

	// Accept the registry name, a namespaced name, or the config key.
	key := clients.NormalizeServerName(serverName)
	if err := doc.Remove(key); err != nil {
		if _, ok := doc.Get(serverName); !ok {
			return err
		}
		key = serverName
		if err := doc.Remove(key); err != nil {
			return err
		}
	}

	if err := doc.Save(); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Removed %s from %s", key, client.DisplayName))
	printer.PrintInfo(fmt.Sprintf("Restart %s to apply the change.", client.DisplayName))
	return nil
}
