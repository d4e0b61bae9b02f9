package app

import (
	"fmt"

	"github.com/QinCai-rui/WakaTerm-NG/internal/config"
	"github.com/QinCai-rui/WakaTerm-NG/internal/store"
	"github.com/spf13/cobra"
)

var cleanupDays int

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Prune old activity log files",
	Long: `Remove day files from the activity log directory older than the
retention period. This is the only way records leave the store; individual
records are never rewritten.`,
	RunE: runCleanup,
}

func init() {
	cleanupCmd.Flags().IntVar(&cleanupDays, "days", 0, "Days of logs to keep (default: retention_days from config)")
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	days := cleanupDays
	if days <= 0 {
		days = cfg.RetentionDays
	}

	removed, err := store.New(cfg.LogDir).Cleanup(days)
	if err != nil {
		return fmt.Errorf("cleaning up logs: %w", err)
	}
	fmt.Printf("Removed %d log file(s) older than %d days from %s\n", removed, days, cfg.LogDir)
	return nil
}
