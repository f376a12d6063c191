package config

import (
	"log"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the CLI configuration sourced from the environment
type Config struct {
	// RegistryURL is the base URL of the MCP registry API
	RegistryURL string `env:"REGISTRY_URL" envDefault:"https://registry.modelcontextprotocol.io"`

	// RequestTimeout bounds each registry HTTP request
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// SettingsPath overrides the default settings file location
	SettingsPath string `env:"SETTINGS_PATH" envDefault:""`

	Verbose bool `env:"VERBOSE" envDefault:"false"`
}

// New loads configuration from the environment, honoring a .env file if present.
// Environment variables are prefixed with MCPCTL_ (e.g. MCPCTL_REGISTRY_URL).
func New() *Config {
	// A missing .env file is the common case for an installed CLI.
	_ = godotenv.Load()
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "MCPCTL_"}); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return &cfg
}
