package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd is the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "causentia",
	Short: "CAUSENTIA - sovereign risk scoring backend",
	Long: `CAUSENTIA sovereign risk backend

Ingests macroeconomic, market and news-sentiment data for monitored
countries and reduces it to a Collapse Index per country plus the
global Fracture and Causal Entropy indices.

Examples:
  go run ./cmd/causentia api
  go run ./cmd/causentia fetch
  go run ./cmd/causentia scenario --shock inflation=10
  go run ./cmd/causentia montecarlo VE --scenarios 20000
  go run ./cmd/causentia cache clear`,
}

// Execute runs the CLI. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}
