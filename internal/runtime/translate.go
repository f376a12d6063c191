package runtime

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mcpctl-dev/mcpctl/internal/registry"
	"github.com/modelcontextprotocol/registry/pkg/model"
)

// LaunchConfig is the client-facing launch configuration for one MCP server.
// Exactly one of Command (stdio) or URL (remote) is set.
type LaunchConfig struct {
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
	URL     string            `json:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// IsRemote reports whether the config points at a hosted remote server.
func (c *LaunchConfig) IsRemote() bool {
	return c.URL != ""
}

// CommandLine returns the full stdio command line as a single string.
func (c *LaunchConfig) CommandLine() string {
	if c.Command == "" {
		return ""
	}
	return strings.Join(append([]string{c.Command}, c.Args...), " ")
}

// Overrides carries user-supplied values (from --config and the repeatable
// --env/--arg/--header flags) applied on top of the registry metadata.
type Overrides struct {
	Env     map[string]string
	Args    map[string]string
	Headers map[string]string
}

// Translate converts a registry server spec into a launch config.
// Remote servers translate to a URL entry; package-backed servers translate
// to a stdio command built from the package's registry type.
func Translate(spec *registry.ServerSpec, ov Overrides, preferRemote bool) (*LaunchConfig, error) {
	if len(spec.Remotes) == 0 && len(spec.Packages) == 0 {
		return nil, fmt.Errorf("server %q has no remotes or packages", spec.Name)
	}

	useRemote := spec.IsRemote() && (preferRemote || !spec.HasPackages())
	if useRemote {
		var remote *model.Transport
		for i := range spec.Remotes {
			if spec.Remotes[i].URL != "" {
				remote = &spec.Remotes[i]
				break
			}
		}
		if remote == nil {
			return nil, fmt.Errorf("server %q has no remote with a URL", spec.Name)
		}

		headers, err := processHeaders(remote.Headers, ov.Headers)
		if err != nil {
			return nil, err
		}
		return &LaunchConfig{
			URL:     remote.URL,
			Headers: headers,
		}, nil
	}

	if !spec.HasPackages() {
		return nil, fmt.Errorf("server %q has no launchable package", spec.Name)
	}
	pkg := spec.Packages[0]

	args := processArguments(nil, pkg.RuntimeArguments, ov.Args)

	command, args, err := packageCommand(pkg, args)
	if err != nil {
		return nil, err
	}

	args = processArguments(args, pkg.PackageArguments, ov.Args)

	env, err := processEnvironment(pkg.EnvironmentVariables, ov.Env)
	if err != nil {
		return nil, err
	}

	return &LaunchConfig{
		Command: command,
		Args:    args,
		Env:     env,
	}, nil
}

// packageCommand returns the launch command for a package and appends the
// package identifier to args, based on the package registry type.
func packageCommand(pkg model.Package, args []string) (string, []string, error) {
	command := pkg.RunTimeHint

	switch strings.ToLower(string(pkg.RegistryType)) {
	case strings.ToLower(string(model.RegistryTypeNPM)):
		if command == "" {
			command = "npx"
		}
		if !slices.Contains(args, "-y") {
			args = append(args, "-y")
		}
		if pkg.Version != "" {
			args = append(args, pkg.Identifier+"@"+pkg.Version)
		} else {
			args = append(args, pkg.Identifier)
		}

	case strings.ToLower(string(model.RegistryTypePyPI)):
		if command == "" {
			command = "uvx"
		}
		if pkg.Version != "" {
			args = append(args, pkg.Identifier+"=="+pkg.Version)
		} else {
			args = append(args, pkg.Identifier)
		}

	case strings.ToLower(string(model.RegistryTypeOCI)):
		if command == "" {
			command = "docker"
		}
		image := pkg.Identifier
		if pkg.Version != "" {
			image = image + ":" + pkg.Version
		}
		args = append(args, "run", "--rm", "-i", image)

	default:
		return "", nil, fmt.Errorf("unsupported package registry type: %s", string(pkg.RegistryType))
	}

	return command, args, nil
}

// processArguments processes model.Argument slices into []string args,
// positional arguments first, then named ones, allowing for overrides.
func processArguments(args []string, modelArgs []model.Argument, overrides map[string]string) []string {
	getArgValue := func(arg model.Argument) string {
		if overrides != nil {
			if v, exists := overrides[arg.Name]; exists {
				return v
			}
		}
		if arg.Value != "" {
			return arg.Value
		}
		return arg.Default
	}

	for _, arg := range modelArgs {
		if arg.Type == model.ArgumentTypePositional {
			if value := getArgValue(arg); value != "" {
				args = append(args, value)
			}
		}
	}

	for _, arg := range modelArgs {
		if arg.Type == model.ArgumentTypeNamed {
			// The name is always emitted; flag-style args may carry no value.
			args = append(args, arg.Name)
			if value := getArgValue(arg); value != "" {
				args = append(args, value)
			}
		}
	}

	return args
}

// processEnvironment resolves environment variables against overrides,
// values, and defaults. Required variables left unset are an error.
func processEnvironment(envVars []model.KeyValueInput, overrides map[string]string) (map[string]string, error) {
	result := make(map[string]string)
	var missingRequired []string

	for _, env := range envVars {
		var value string
		if override, exists := overrides[env.Name]; exists {
			value = override
		} else if env.Value != "" {
			value = env.Value
		} else if env.Default != "" {
			value = env.Default
		}

		if env.IsRequired && value == "" {
			missingRequired = append(missingRequired, env.Name)
		}
		if value != "" {
			result[env.Name] = value
		}
	}

	if len(missingRequired) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missingRequired, ", "))
	}

	// Pass through override vars the package does not declare.
	for key, value := range overrides {
		if _, exists := result[key]; !exists {
			result[key] = value
		}
	}

	if len(result) == 0 {
		return nil, nil
	}
	return result, nil
}

// processHeaders resolves remote headers the same way as environment
// variables. Required headers left unset are an error.
func processHeaders(headers []model.KeyValueInput, overrides map[string]string) (map[string]string, error) {
	result := make(map[string]string)
	var missingRequired []string

	for _, h := range headers {
		var value string
		if override, exists := overrides[h.Name]; exists {
			value = override
		} else if h.Value != "" {
			value = h.Value
		} else if h.Default != "" {
			value = h.Default
		}

		if h.IsRequired && value == "" {
			missingRequired = append(missingRequired, h.Name)
		}
		if value != "" {
			result[h.Name] = value
		}
	}

	if len(missingRequired) > 0 {
		return nil, fmt.Errorf("missing required headers: %s", strings.Join(missingRequired, ", "))
	}

	if len(result) == 0 {
		return nil, nil
	}
	return result, nil
}
