// Package app contains the Cobra command tree for wakaterm.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/QinCai-rui/WakaTerm-NG/internal/config"
	"github.com/QinCai-rui/WakaTerm-NG/internal/output"
	"github.com/QinCai-rui/WakaTerm-NG/internal/stats"
	"github.com/QinCai-rui/WakaTerm-NG/internal/store"
	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

// pluginID returns the plugin identifier/version string carried in records
// and heartbeats.
func pluginID() string {
	return "wakaterm-ng/" + appVersion
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "wakaterm",
	Short: "Terminal activity tracking for WakaTime",
	Long: `wakaterm records every command your shell runs, keeps a local queryable
activity log, and reports heartbeats to WakaTime via wakatime-cli.

Run 'wakaterm' with no arguments for a quick summary of today's activity.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		setupColor(cfg)

		window, err := stats.WindowFromRange(stats.RangeToday, time.Now())
		if err != nil {
			return err
		}

		st := store.New(cfg.LogDir)
		records, err := st.Scan(window.Start, window.End)
		if err != nil {
			// An unreadable store degrades to an empty report.
			records = nil
		}
		report := stats.Summarize(records, window)

		fmt.Println(output.Section("wakaterm " + appVersion))
		fmt.Println()
		fmt.Printf(" Today: %s across %d commands\n",
			output.FormatDuration(report.TotalSeconds), report.CommandCount)
		if top := report.TopLabels(1); len(top) > 0 {
			fmt.Printf(" Most active: %s (%s)\n",
				top[0].Name, output.FormatDuration(top[0].Seconds))
		}
		fmt.Println()
		fmt.Println(" Subcommands:")
		fmt.Println("   track     Record one completed shell command")
		fmt.Println("   stats     Windowed activity report")
		fmt.Println("   trend     Snapshot aggregates and compare over time")
		fmt.Println("   ignore    Manage ignore patterns")
		fmt.Println("   cleanup   Prune old activity log files")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupColor applies the configured and flagged color preferences.
func setupColor(cfg *config.Config) {
	output.AutoColor()
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/wakaterm/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
