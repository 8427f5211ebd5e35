package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/causentia/backend/pkg/config"
	"github.com/causentia/backend/pkg/logger"
)

// fetchCmd runs one fetch cycle and caches the snapshot
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Run one fetch cycle and cache the snapshot",
	Long: `Fetches every upstream source, scores all countries and writes the
snapshot to the cache. Useful for warming the cache before starting
the API server.

Example:
  go run ./cmd/causentia fetch`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	eng, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}

	snap, err := eng.Refresh(cmd.Context())
	if err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}

	fmt.Printf("Snapshot built: %d countries\n", len(snap.Countries))
	fmt.Printf("  critical=%d danger=%d caution=%d safe=%d\n",
		snap.Counts.Critical, snap.Counts.Danger, snap.Counts.Caution, snap.Counts.Safe)
	fmt.Printf("  fracture=%.1f (%s)  entropy=%.1f (%s)\n",
		snap.Fracture.Score, snap.Fracture.Status,
		snap.Entropy.Score, snap.Entropy.Status)

	return nil
}
