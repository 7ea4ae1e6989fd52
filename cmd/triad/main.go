package main

import (
	"os"

	"github.com/aetheric-labs/triad-cli/internal/adapters/driving/cli"
)

// main is the entrypoint for the triad CLI.
// Error messages are printed by the command layer; main only maps
// failure onto a non-zero exit status.
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
