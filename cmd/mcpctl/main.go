package main

import "github.com/mcpctl-dev/mcpctl/internal/cli"

func main() {
	cli.Execute()
}
