package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/causentia/backend/internal/cache"
	"github.com/causentia/backend/pkg/config"
	"github.com/causentia/backend/pkg/logger"
)

// cacheCmd groups cache maintenance subcommands
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Cache maintenance",
}

// cacheClearCmd drops every cached entry
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all cached data",
	RunE:  runCacheClear,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	store, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, log)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	fmt.Printf("Cache cleared: %s\n", cfg.Cache.Dir)
	return nil
}
