package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/causentia/backend/internal/montecarlo"
	"github.com/causentia/backend/pkg/config"
	"github.com/causentia/backend/pkg/logger"
)

// montecarloCmd simulates randomized trajectories for one country
var montecarloCmd = &cobra.Command{
	Use:   "montecarlo [country code]",
	Short: "Run a Monte Carlo simulation for one country",
	Long: `Simulates randomized Collapse Index trajectories around a country's
current score. Requires a cached snapshot; run "fetch" first.

Example:
  go run ./cmd/causentia montecarlo VE
  go run ./cmd/causentia montecarlo AR --scenarios 20000 --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runMonteCarlo,
}

var (
	mcScenarios int
	mcSeed      int64
)

func init() {
	rootCmd.AddCommand(montecarloCmd)

	montecarloCmd.Flags().IntVar(&mcScenarios, "scenarios", montecarlo.DefaultScenarios,
		"number of simulated trajectories")
	montecarloCmd.Flags().Int64Var(&mcSeed, "seed", 0,
		"random seed, 0 for system entropy")
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	eng, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}
	eng.WithSeed(mcSeed)

	report, err := eng.RunMonteCarlo(cmd.Context(), strings.ToUpper(args[0]), mcScenarios)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s): %d scenarios around CI %.1f\n",
		report.Name, report.Country, report.Scenarios, report.CurrentCI)
	fmt.Printf("  mean=%.1f  best(p5)=%.1f  worst(p95)=%.1f  p(crisis)=%.1f%%\n",
		report.Results.Mean, report.Results.P5, report.Results.P95, report.Results.CrisisProb)

	return nil
}
