package runtime

import (
	"fmt"
	"os"
	"os/exec"
	goruntime "runtime"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mcpctl-dev/mcpctl/pkg/printer"
)

// Installer checks for and installs runtime prerequisites.
type Installer struct {
	// AssumeYes skips the confirmation prompt
	AssumeYes bool
	Verbose   bool

	// Confirm asks the user a yes/no question. Required unless AssumeYes.
	Confirm func(question string) (bool, error)

	// goos is overridable in tests; defaults to runtime.GOOS
	goos string
}

// NewInstaller returns an installer using the host OS.
func NewInstaller(assumeYes, verbose bool, confirm func(string) (bool, error)) *Installer {
	return &Installer{
		AssumeYes: assumeYes,
		Verbose:   verbose,
		Confirm:   confirm,
		goos:      goruntime.GOOS,
	}
}

// Ensure makes sure the prerequisite is available, prompting before any
// install. Installer failures are non-fatal: the user is warned and the
// surrounding flow continues, since the server may still launch if the
// runtime is present under a different name or path.
func (i *Installer) Ensure(pre Prerequisite) error {
	if pre == PrereqNone {
		return nil
	}

	if i.installed(pre) {
		if i.Verbose {
			printer.PrintInfo(fmt.Sprintf("%s is already installed", pre.Binary()))
		}
		return nil
	}

	if !i.AssumeYes {
		ok, err := i.Confirm(fmt.Sprintf("This server requires %s, which is not installed. Install it now?", pre.DisplayName()))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			printer.PrintWarning(fmt.Sprintf("%s was not installed; the server might fail to launch", pre.Binary()))
			return nil
		}
	}

	if err := i.install(pre); err != nil {
		printer.PrintWarning(fmt.Sprintf("failed to install %s: %v; the server might fail to launch", pre.Binary(), err))
		return nil
	}

	printer.PrintSuccess(fmt.Sprintf("Installed %s", pre.DisplayName()))
	return nil
}

// installed probes the prerequisite binary with --version.
func (i *Installer) installed(pre Prerequisite) bool {
	bin := pre.Binary()
	if _, err := exec.LookPath(bin); err != nil {
		return false
	}
	return exec.Command(bin, "--version").Run() == nil
}

// install runs the platform installer candidates in order until one
// succeeds.
func (i *Installer) install(pre Prerequisite) error {
	candidates := installCommands(pre, i.goos, brewAvailable())
	if len(candidates) == 0 {
		return fmt.Errorf("no installer available for %s on %s", pre.Binary(), i.goos)
	}

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = fmt.Sprintf(" Installing %s...", pre.DisplayName())
	sp.Start()
	defer sp.Stop()

	var lastErr error
	for _, argv := range candidates {
		cmd := exec.Command(argv[0], argv[1:]...)
		if i.Verbose {
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
		}
		if err := cmd.Run(); err != nil {
			lastErr = fmt.Errorf("%s failed: %w", argv[0], err)
			continue
		}
		return nil
	}
	return lastErr
}

// installCommands returns the ordered installer command lines for a
// prerequisite on the given OS. On windows the official PowerShell
// script is used; on darwin Homebrew is preferred when present; the
// fallback everywhere else is curl piped to a shell, then wget.
func installCommands(pre Prerequisite, goos string, haveBrew bool) [][]string {
	var script, brewPkg string
	switch pre {
	case PrereqUV:
		script = "https://astral.sh/uv/install.sh"
		brewPkg = "uv"
	case PrereqBun:
		script = "https://bun.sh/install"
		brewPkg = "oven-sh/bun/bun"
	default:
		return nil
	}

	if goos == "windows" {
		var psScript string
		switch pre {
		case PrereqUV:
			psScript = "https://astral.sh/uv/install.ps1"
		case PrereqBun:
			psScript = "https://bun.sh/install.ps1"
		}
		return [][]string{
			{"powershell", "-ExecutionPolicy", "ByPass", "-c", fmt.Sprintf("irm %s | iex", psScript)},
		}
	}

	var cmds [][]string
	if goos == "darwin" && haveBrew {
		cmds = append(cmds, []string{"brew", "install", brewPkg})
	}
	cmds = append(cmds,
		[]string{"sh", "-c", fmt.Sprintf("curl -fsSL %s | sh", script)},
		[]string{"sh", "-c", fmt.Sprintf("wget -qO- %s | sh", script)},
	)
	return cmds
}

func brewAvailable() bool {
	_, err := exec.LookPath("brew")
	return err == nil
}
