package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	successMark = color.New(color.FgGreen).Sprint("✓")
	warnLabel   = color.New(color.FgYellow).Sprint("Warning:")
	errLabel    = color.New(color.FgRed).Sprint("Error:")
)

// Printer handles structured output in the requested format
type Printer struct {
	out        io.Writer
	outputType OutputType
}

// New creates a new printer with the specified output type
func New(outputType OutputType) *Printer {
	return &Printer{
		out:        os.Stdout,
		outputType: outputType,
	}
}

// SetOutput sets the output writer
func (p *Printer) SetOutput(out io.Writer) {
	p.out = out
}

// Print renders data in the printer's configured format (json or yaml)
func (p *Printer) Print(data any) error {
	switch p.outputType {
	case OutputTypeYAML:
		return p.PrintYAML(data)
	default:
		return p.PrintJSON(data)
	}
}

// PrintJSON prints data in JSON format
func (p *Printer) PrintJSON(data any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data in YAML format
func (p *Printer) PrintYAML(data any) error {
	encoder := yaml.NewEncoder(p.out)
	encoder.SetIndent(2)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(data)
}

// PrintSuccess prints a success message with a checkmark prefix
func PrintSuccess(message string) {
	_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", successMark, message)
}

// PrintError prints an error message to stderr
func PrintError(message string) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", errLabel, message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", warnLabel, message)
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	_, _ = fmt.Fprintf(os.Stdout, "%s\n", message)
}
