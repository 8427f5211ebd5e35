package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/causentia/backend/internal/indicator"
	"github.com/causentia/backend/pkg/config"
	"github.com/causentia/backend/pkg/logger"
)

// scenarioCmd re-scores every country under shock deltas
var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Run a what-if scenario against the cached snapshot",
	Long: `Applies shock deltas to every country's indicators and reports the
re-scored Collapse Index ranking. Requires a cached snapshot; run
"fetch" first.

Example:
  go run ./cmd/causentia scenario --shock inflation=10 --shock debt_gdp=20`,
	RunE: runScenario,
}

var scenarioShocks []string

func init() {
	rootCmd.AddCommand(scenarioCmd)

	scenarioCmd.Flags().StringArrayVar(&scenarioShocks, "shock", nil,
		"indicator shock as name=delta, repeatable")
}

func runScenario(cmd *cobra.Command, args []string) error {
	shocks, err := parseShocks(scenarioShocks)
	if err != nil {
		return err
	}
	if len(shocks) == 0 {
		return fmt.Errorf("at least one --shock is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	eng, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}

	report, err := eng.RunScenario(cmd.Context(), shocks, nil)
	if err != nil {
		return err
	}

	fmt.Printf("Scenario across %d countries (avg delta %+.1f)\n",
		report.Summary.Total, report.Summary.AvgDelta)
	fmt.Printf("  critical %d -> %d, downgrades %d, beneficiaries %d\n",
		report.Summary.OldCritical, report.Summary.Critical,
		report.Summary.Downgrades, report.Summary.Beneficiaries)

	limit := 10
	if len(report.Results) < limit {
		limit = len(report.Results)
	}
	fmt.Println("Most affected:")
	for _, res := range report.Results[:limit] {
		fmt.Printf("  %-4s %-24s %5.1f -> %5.1f (%+.1f) %s\n",
			res.Code, res.Name, res.OriginalCI, res.NewCI, res.Delta, res.NewLevel)
	}

	return nil
}

// parseShocks turns repeated name=delta flags into a shock map
func parseShocks(raw []string) (map[string]float64, error) {
	shocks := make(map[string]float64, len(raw))

	for _, s := range raw {
		name, value, found := strings.Cut(s, "=")
		if !found {
			return nil, fmt.Errorf("invalid shock %q, want name=delta", s)
		}
		if !indicator.Known(name) {
			return nil, fmt.Errorf("unknown indicator %q", name)
		}
		delta, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid shock delta %q: %w", value, err)
		}
		shocks[name] = delta
	}

	return shocks, nil
}
