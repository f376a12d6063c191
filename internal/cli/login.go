package cli

import (
	"fmt"

	"github.com/mcpctl-dev/mcpctl/internal/cli/prompt"
	"github.com/mcpctl-dev/mcpctl/internal/clients"
	"github.com/mcpctl-dev/mcpctl/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	loginKey           string
	loginDefaultClient string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Validate and save a registry API key",
	Long: `Validates an API key against the registry and saves it to the local
settings file. This is the only command that persists a key; --key on
other commands applies to that invocation only.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginKey, "api-key", "", "API key to validate and save (prompted for if omitted)")
	loginCmd.Flags().StringVar(&loginDefaultClient, "default-client", "", "Also save a default client for install/uninstall")
}

func runLogin(cmd *cobra.Command, args []string) error {
	key := loginKey
	if key == "" {
		var err error
		key, err = prompt.Input("Registry API key: ")
		if err != nil {
			return err
		}
	}
	if key == "" {
		return fmt.Errorf("no API key provided")
	}

	if err := newRegistryClient().ValidateKey(key); err != nil {
		return fmt.Errorf("API key validation failed: %w", err)
	}

	path, err := settingsPath()
	if err != nil {
		return err
	}
	settings.APIKey = key
	if loginDefaultClient != "" {
		def, err := clients.Lookup(loginDefaultClient)
		if err != nil {
			return err
		}
		settings.DefaultClient = def.Name
	}
	if err := settings.Save(path); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("API key validated and saved to %s", path))
	return nil
}
