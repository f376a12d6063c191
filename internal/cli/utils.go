package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcpctl-dev/mcpctl/internal/clients"
	"github.com/mcpctl-dev/mcpctl/internal/runtime"
)

// parseKeyValuePairs parses key=value pairs from command line flags
func parseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, pair := range pairs {
		idx := strings.Index(pair, "=")
		if idx == -1 {
			return nil, fmt.Errorf("invalid key=value pair (missing =): %s", pair)
		}
		result[pair[:idx]] = pair[idx+1:]
	}
	return result, nil
}

// parseConfigJSON parses a --config JSON object into string values.
// Non-string scalars are stringified; nested values are rejected.
func parseConfigJSON(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var values map[string]any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("invalid --config JSON: %w", err)
	}

	result := make(map[string]string, len(values))
	for key, value := range values {
		switch v := value.(type) {
		case string:
			result[key] = v
		case bool:
			result[key] = fmt.Sprintf("%t", v)
		case float64:
			result[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			result[key] = ""
		default:
			return nil, fmt.Errorf("--config value for %q must be a scalar", key)
		}
	}
	return result, nil
}

// resolveClient picks the target client: the --client flag, then the
// saved default, then claude.
func resolveClient(flagValue string) (*clients.Definition, error) {
	name := flagValue
	if name == "" && settings != nil {
		name = settings.DefaultClient
	}
	if name == "" {
		name = clients.DefaultClient
	}
	return clients.Lookup(name)
}

// buildOverrides assembles translation overrides from --config (applied
// as environment values) and the repeatable --env/--arg/--header flags.
func buildOverrides(configJSON string, envFlags, argFlags, headerFlags []string) (runtime.Overrides, error) {
	var ov runtime.Overrides

	configValues, err := parseConfigJSON(configJSON)
	if err != nil {
		return ov, err
	}
	ov.Env = configValues

	envValues, err := parseKeyValuePairs(envFlags)
	if err != nil {
		return ov, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	if ov.Env == nil {
		ov.Env = envValues
	} else {
		for k, v := range envValues {
			ov.Env[k] = v
		}
	}

	if ov.Args, err = parseKeyValuePairs(argFlags); err != nil {
		return ov, fmt.Errorf("failed to parse arguments: %w", err)
	}
	if ov.Headers, err = parseKeyValuePairs(headerFlags); err != nil {
		return ov, fmt.Errorf("failed to parse headers: %w", err)
	}
	return ov, nil
}
