package app

import (
	"context"
	"strings"

	"github.com/QinCai-rui/WakaTerm-NG/internal/config"
	"github.com/QinCai-rui/WakaTerm-NG/internal/heartbeat"
	"github.com/QinCai-rui/WakaTerm-NG/internal/ignore"
	"github.com/QinCai-rui/WakaTerm-NG/internal/recorder"
	"github.com/QinCai-rui/WakaTerm-NG/internal/store"
	"github.com/spf13/cobra"
)

var (
	trackCwd       string
	trackTimestamp float64
	trackDuration  float64
	trackDebug     bool
	trackNoSend    bool
)

var trackCmd = &cobra.Command{
	Use:   "track [command...]",
	Short: "Record one completed shell command",
	Long: `Record a command the shell just finished running. Invoked by the shell
hook once per completed interactive command; the hook spawns this detached so
the prompt returns immediately.

Tracking is best-effort: failures never produce a non-zero exit and are only
reported to stderr with --debug.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&trackCwd, "cwd", "", "Working directory the command ran in (default: current)")
	trackCmd.Flags().Float64Var(&trackTimestamp, "timestamp", 0, "Command start time as unix seconds (default: now)")
	trackCmd.Flags().Float64Var(&trackDuration, "duration", 2.0, "Command execution duration in seconds")
	trackCmd.Flags().BoolVar(&trackDebug, "debug", false, "Enable debug output")
	trackCmd.Flags().BoolVar(&trackNoSend, "no-send", false, "Skip the external heartbeat")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	// Config problems degrade to defaults: the shell hook must never see a
	// failure from here.
	cfg, err := config.Load(flagConfig)
	if err != nil {
		cfg = config.Defaults()
	}

	var sender recorder.Sender
	if cfg.Reporter.Enabled && !trackNoSend {
		sender = heartbeat.NewClient(cfg.Reporter.CLIPath, cfg.Reporter.Timeout())
	}

	rec := recorder.New(
		store.New(cfg.LogDir),
		ignore.Load(cfg.IgnoreFile),
		sender,
		pluginID(),
		cfg.Reporter.CLIPath,
	)

	rec.Record(context.Background(), recorder.Input{
		Command:   strings.Join(args, " "),
		Cwd:       trackCwd,
		Timestamp: trackTimestamp,
		Duration:  trackDuration,
		Debug:     trackDebug,
	})
	return nil
}
