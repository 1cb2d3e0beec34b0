package main

import "github.com/bnema/dockspace/internal/cli/cmd"

func main() {
	cmd.Execute()
}
