package cli

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/mcpctl-dev/mcpctl/internal/cli/prompt"
	"github.com/mcpctl-dev/mcpctl/internal/runtime"
	"github.com/mcpctl-dev/mcpctl/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	runVersion    string
	runConfigJSON string
	runEnvVars    []string
	runArgVars    []string
	runYes        bool
)

var runCmd = &cobra.Command{
	Use:   "run <server>",
	Short: "Run an MCP server over stdio",
	Long: `Resolve a server from the registry and launch its stdio process in the
foreground, with standard input and output attached. Useful for testing a
server before installing it into a client.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runVersion, "server-version", "", "Run a specific server version (default: latest)")
	runCmd.Flags().StringVar(&runConfigJSON, "config", "", "Server configuration values as a JSON object, applied as environment variables")
	runCmd.Flags().StringArrayVarP(&runEnvVars, "env", "e", nil, "Environment variable in KEY=VALUE format (repeatable)")
	runCmd.Flags().StringArrayVar(&runArgVars, "arg", nil, "Launch argument override in KEY=VALUE format (repeatable)")
	runCmd.Flags().BoolVarP(&runYes, "yes", "y", false, "Automatically accept all prompts")
}

func runRun(cmd *cobra.Command, args []string) error {
	serverName := args[0]

	ov, err := buildOverrides(runConfigJSON, runEnvVars, runArgVars, nil)
	if err != nil {
		return err
	}

	entry, err := newRegistryClient().ResolveServer(serverName, runVersion)
	if err != nil {
		return err
	}

	launch, err := runtime.Translate(&entry.Server, ov, false)
	if err != nil {
		return err
	}
	if launch.IsRemote() {
		return fmt.Errorf("%s is a remote server; install it into a client instead of running it locally", entry.Server.Name)
	}

	installer := runtime.NewInstaller(runYes, cfg.Verbose, prompt.Confirm)
	if err := installer.Ensure(runtime.DetectPrerequisite(launch)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Verbose {
		printer.PrintInfo(fmt.Sprintf("Running: %s", launch.CommandLine()))
	}

	proc := exec.CommandContext(ctx, launch.Command, launch.Args...)
	proc.Stdin = os.Stdin
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr
	proc.Env = os.Environ()
	for key, value := range launch.Env {
		proc.Env = append(proc.Env, fmt.Sprintf("%s=%s", key, value))
	}

	if err := proc.Run(); err != nil {
		if ctx.Err() != nil {
			// Interrupted by the user; not a failure.
			return nil
		}
		return fmt.Errorf("server exited with error: %w", err)
	}
	return nil
}
