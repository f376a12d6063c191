package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mcpctl-dev/mcpctl/internal/clients"
	"github.com/mcpctl-dev/mcpctl/internal/registry"
	"github.com/mcpctl-dev/mcpctl/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	listServersClient string
	listOutput        string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients or servers",
}

var listClientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List supported AI clients",
	Args:  cobra.NoArgs,
	RunE:  runListClients,
}

var listServersCmd = &cobra.Command{
	Use:   "servers",
	Short: "List MCP servers",
	Long: `Without --client, lists the registry catalog. With --client, lists the
servers installed in that client's config file.`,
	Args: cobra.NoArgs,
	RunE: runListServers,
}

func init() {
	listServersCmd.Flags().StringVar(&listServersClient, "client", "", "List servers installed for this client instead of the registry catalog")
	listServersCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format: table, json, or yaml")

	listCmd.AddCommand(listClientsCmd)
	listCmd.AddCommand(listServersCmd)
}

func runListClients(cmd *cobra.Command, args []string) error {
	table := printer.NewTablePrinter(os.Stdout)
	table.SetHeaders("name", "client", "servers", "config path")

	for _, def := range clients.All() {
		configPath, err := def.ConfigPath()
		if err != nil {
			return err
		}

		installed := "-"
		doc, err := clients.LoadDocument(configPath)
		if err == nil {
			installed = fmt.Sprintf("%d", len(doc.ServerNames()))
		}

		table.AddRow(def.Name, def.DisplayName, installed, configPath)
	}
	return table.Render()
}

func runListServers(cmd *cobra.Command, args []string) error {
	if listServersClient != "" {
		return listInstalledServers(listServersClient)
	}
	return listCatalogServers()
}

// listInstalledServers lists the mcpServers entries of one client config.
func listInstalledServers(clientName string) error {
	client, err := clients.Lookup(clientName)
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

	names := doc.ServerNames()
	if len(names) == 0 {
		printer.PrintInfo(fmt.Sprintf("No MCP servers installed for %s", client.DisplayName))
		return nil
	}

	type installedServer struct {
		Name    string            `json:"name" yaml:"name"`
		Command string            `json:"command,omitempty" yaml:"command,omitempty"`
		Args    []string          `json:"args,omitempty" yaml:"args,omitempty"`
		URL     string            `json:"url,omitempty" yaml:"url,omitempty"`
		Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	}

	servers := make([]installedServer, 0, len(names))
	for _, name := range names {
		raw, _ := doc.Get(name)
		s := installedServer{Name: name}
		// Entries are loosely typed; ignore fields we do not model.
		_ = json.Unmarshal(raw, &s)
		servers = append(servers, s)
	}

	switch listOutput {
	case "json":
		return printer.New(printer.OutputTypeJSON).Print(servers)
	case "yaml":
		return printer.New(printer.OutputTypeYAML).Print(servers)
	case "table", "":
		table := printer.NewTablePrinter(os.Stdout)
		table.SetHeaders("name", "type", "target")
		for _, s := range servers {
			if s.URL != "" {
				table.AddRow(s.Name, "remote", s.URL)
			} else {
				line := s.Command
				for _, a := range s.Args {
					line += " " + a
				}
				table.AddRow(s.Name, "stdio", printer.TruncateString(line, 80))
			}
		}
		return table.Render()
	default:
		return fmt.Errorf("unsupported output format: %s", listOutput)
	}
}

// listCatalogServers lists the registry catalog.
func listCatalogServers() error {
	servers, err := newRegistryClient().FetchAllServers(registry.FetchOptions{
		ShowProgress: listOutput == "table" || listOutput == "",
		Verbose:      cfg.Verbose,
	})
	if err != nil {
		return err
	}

	switch listOutput {
	case "json":
		return printer.New(printer.OutputTypeJSON).Print(servers)
	case "yaml":
		return printer.New(printer.OutputTypeYAML).Print(servers)
	case "table", "":
		if len(servers) == 0 {
			printer.PrintInfo("No MCP servers available")
			return nil
		}
		table := printer.NewTablePrinter(os.Stdout)
		table.SetHeaders("name", "version", "type", "description")
		for _, entry := range servers {
			serverType := "stdio"
			if entry.Server.IsRemote() {
				serverType = "remote"
			}
			table.AddRow(
				entry.Server.Name,
				printer.EmptyValueOrDefault(entry.Server.Version, "-"),
				serverType,
				printer.TruncateString(entry.Server.Description, 60),
			)
		}
		return table.Render()
	default:
		return fmt.Errorf("unsupported output format: %s", listOutput)
	}
}
