package runtime

import "strings"

// Prerequisite identifies a runtime a stdio server needs on the host
// before it can launch.
type Prerequisite string

const (
	// PrereqNone means the launch command manages its own runtime
	PrereqNone Prerequisite = ""
	// PrereqUV is the uv Python package runner (provides uvx)
	PrereqUV Prerequisite = "uv"
	// PrereqBun is the Bun JavaScript runtime (provides bunx)
	PrereqBun Prerequisite = "bun"
)

// Binary returns the executable probed to decide whether the
// prerequisite is already installed.
func (p Prerequisite) Binary() string {
	switch p {
	case PrereqUV:
		return "uvx"
	case PrereqBun:
		return "bun"
	default:
		return ""
	}
}

// DisplayName returns the human-readable name used in prompts.
func (p Prerequisite) DisplayName() string {
	switch p {
	case PrereqUV:
		return "uv (Python package runner)"
	case PrereqBun:
		return "Bun (JavaScript runtime)"
	default:
		return ""
	}
}

// DetectPrerequisite inspects a stdio launch config and reports which
// runtime it depends on. A command line containing "uvx" needs uv; one
// containing "bunx" (or launching bun directly) needs Bun. Remote configs
// and everything else need neither.
func DetectPrerequisite(cfg *LaunchConfig) Prerequisite {
	if cfg == nil || cfg.IsRemote() {
		return PrereqNone
	}

	line := cfg.CommandLine()
	if strings.Contains(line, "uvx") {
		return PrereqUV
	}
	if strings.Contains(line, "bunx") || cfg.Command == "bun" {
		return PrereqBun
	}
	return PrereqNone
}
