package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mcpctl-dev/mcpctl/internal/registry"
	"github.com/mcpctl-dev/mcpctl/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	inspectVersion string
	inspectOutput  string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <server>",
	Short: "Show registry details for an MCP server",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectVersion, "server-version", "", "Inspect a specific server version (default: latest)")
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", "table", "Output format: table, json, or yaml")
}

func runInspect(cmd *cobra.Command, args []string) error {
	entry, err := newRegistryClient().ResolveServer(args[0], inspectVersion)
	if err != nil {
		return err
	}

	switch inspectOutput {
	case "json":
		return printer.New(printer.OutputTypeJSON).Print(entry)
	case "yaml":
		return printer.New(printer.OutputTypeYAML).Print(entry)
	case "table", "":
		printServerDetails(&entry.Server)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", inspectOutput)
	}
}

func printServerDetails(spec *registry.ServerSpec) {
	table := printer.NewTablePrinter(os.Stdout, printer.WithNoHeaders())
	table.AddRow("Name:", spec.Name)
	if spec.Title != "" {
		table.AddRow("Title:", spec.Title)
	}
	table.AddRow("Version:", printer.EmptyValueOrDefault(spec.Version, "<none>"))
	table.AddRow("Description:", printer.EmptyValueOrDefault(spec.Description, "<none>"))
	if spec.Repository.URL != "" {
		table.AddRow("Repository:", spec.Repository.URL)
	}
	if spec.WebsiteURL != "" {
		table.AddRow("Website:", spec.WebsiteURL)
	}
	table.AddRow("Remote:", fmt.Sprintf("%t", spec.IsRemote()))
	_ = table.Render()

	if len(spec.Packages) > 0 {
		printer.PrintInfo("\nPackages:")
		pkgTable := printer.NewTablePrinter(os.Stdout)
		pkgTable.SetHeaders("registry", "identifier", "version", "runtime hint")
		for _, pkg := range spec.Packages {
			pkgTable.AddRow(
				string(pkg.RegistryType),
				pkg.Identifier,
				printer.EmptyValueOrDefault(pkg.Version, "latest"),
				printer.EmptyValueOrDefault(pkg.RunTimeHint, "-"),
			)
		}
		_ = pkgTable.Render()

		if required := requiredEnvVars(spec); len(required) > 0 {
			printer.PrintInfo(fmt.Sprintf("\nRequired configuration: %s", strings.Join(required, ", ")))
		}
	}

	if len(spec.Remotes) > 0 {
		printer.PrintInfo("\nRemotes:")
		remoteTable := printer.NewTablePrinter(os.Stdout)
		remoteTable.SetHeaders("type", "url")
		for _, remote := range spec.Remotes {
			remoteTable.AddRow(remote.Type, remote.URL)
		}
		_ = remoteTable.Render()
	}
}

func requiredEnvVars(spec *registry.ServerSpec) []string {
	var required []string
	for _, pkg := range spec.Packages {
		for _, env := range pkg.EnvironmentVariables {
			if env.IsRequired && env.Value == "" && env.Default == "" {
				required = append(required, env.Name)
			}
		}
	}
	return required
}
