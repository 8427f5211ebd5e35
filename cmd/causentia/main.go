package main

import (
	"os"

	"github.com/causentia/backend/cmd/causentia/commands"
)

// main is the entry point for the CAUSENTIA CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
