// Package prompt provides small helpers for interactive stdin input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// In and Out are swappable for tests.
var (
	In  io.Reader = os.Stdin
	Out io.Writer = os.Stdout
)

// Input displays a prompt and reads one line from stdin.
func Input(promptText string) (string, error) {
	fmt.Fprint(Out, promptText)
	reader := bufio.NewReader(In)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// Confirm asks a yes/no question, defaulting to yes on an empty answer.
func Confirm(question string) (bool, error) {
	response, err := Input(question + " [Y/n]: ")
	if err != nil {
		return false, err
	}

	response = strings.ToLower(response)
	return response == "" || response == "y" || response == "yes", nil
}
