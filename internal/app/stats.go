package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/QinCai-rui/WakaTerm-NG/internal/config"
	"github.com/QinCai-rui/WakaTerm-NG/internal/output"
	"github.com/QinCai-rui/WakaTerm-NG/internal/stats"
	"github.com/QinCai-rui/WakaTerm-NG/internal/store"
	"github.com/spf13/cobra"
)

var (
	statsRange string
	statsStart string
	statsEnd   string
	statsTop   int
	statsJSON  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Windowed activity report",
	Long: `Aggregate the local activity log into a report for a time window:
total tracked time, per-language and per-project breakdowns, and the most
frequent commands.

Select the window with --range (today, yesterday, last_7_days, last_30_days,
last_6_months, last_year) or explicit --start/--end dates.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsRange, "range", stats.RangeToday, "Named time window")
	statsCmd.Flags().StringVar(&statsStart, "start", "", "Explicit window start (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsEnd, "end", "", "Explicit window end, exclusive (YYYY-MM-DD)")
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "How many entries per ranking")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupColor(cfg)

	window, err := resolveWindow()
	if err != nil {
		return err
	}

	st := store.New(cfg.LogDir)
	records, err := st.Scan(window.Start, window.End)
	if err != nil {
		// An unreadable store yields an empty report, not a failure.
		records = nil
	}
	report := stats.Summarize(records, window)

	if statsJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	renderStats(report)
	return nil
}

// resolveWindow builds the stats window from the --start/--end pair when
// given, falling back to the named --range.
func resolveWindow() (stats.Window, error) {
	if statsStart == "" && statsEnd == "" {
		return stats.WindowFromRange(statsRange, time.Now())
	}

	start, err := parseDay(statsStart)
	if err != nil {
		return stats.Window{}, fmt.Errorf("invalid --start: %w", err)
	}
	end, err := parseDay(statsEnd)
	if err != nil {
		return stats.Window{}, fmt.Errorf("invalid --end: %w", err)
	}
	if !start.Before(end) {
		return stats.Window{}, fmt.Errorf("--start must be before --end")
	}
	return stats.WindowBetween(start, end), nil
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func renderStats(report stats.Report) {
	fmt.Println(output.Section("Activity: " + report.Window.Label()))
	fmt.Println()

	fmt.Printf(" Total time      %s\n", output.FormatDuration(report.TotalSeconds))
	fmt.Printf(" Commands        %d\n", report.CommandCount)
	fmt.Printf(" Daily average   %s\n", output.FormatDuration(report.DailyAverageSeconds))
	fmt.Printf(" Writing         %s (%.1f%%)\n",
		output.FormatDuration(report.WriteSeconds), report.WritePercent())

	if report.CommandCount == 0 {
		fmt.Println()
		fmt.Println(" No activity recorded in this window.")
		return
	}

	fmt.Println()
	fmt.Println(output.StyleBold.Render(" Languages"))
	for _, b := range report.TopLabels(statsTop) {
		fmt.Printf(" %-18s %s %s\n", b.Name,
			output.ShareBar(report.Percent(b.Seconds), 20),
			output.StyleMuted.Render(output.FormatDuration(b.Seconds)))
	}

	fmt.Println()
	fmt.Println(output.StyleBold.Render(" Projects"))
	tbl := output.NewTable("Project", "Time", "Share").AlignRight(1, 2)
	for _, b := range report.TopProjects(statsTop) {
		tbl.AddRow(b.Name,
			output.FormatDuration(b.Seconds),
			fmt.Sprintf("%.1f%%", report.Percent(b.Seconds)))
	}
	tbl.Print()

	fmt.Println()
	fmt.Println(output.StyleBold.Render(" Top commands"))
	cmds := output.NewTable("Command", "Count").AlignRight(1)
	for _, c := range report.TopCommands(statsTop) {
		cmds.AddRow(c.Command, fmt.Sprintf("%d", c.Count))
	}
	cmds.Print()
}
