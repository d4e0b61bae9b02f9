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
	"github.com/QinCai-rui/WakaTerm-NG/internal/trend"
	"github.com/spf13/cobra"
)

var (
	trendRange   string
	trendCompare int
	trendHistory int
	trendJSON    bool
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Snapshot aggregates and compare over time",
	Long: `Aggregate the current window, store the result as a snapshot in the
trend database, and compare against the most recent previous snapshot to show
deltas with trend arrows. Use --history to see metrics across several
snapshots instead.`,
	RunE: runTrend,
}

func init() {
	trendCmd.Flags().StringVar(&trendRange, "range", stats.RangeLast7Days, "Named time window to aggregate")
	trendCmd.Flags().IntVar(&trendCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trendCmd.Flags().IntVar(&trendHistory, "history", 0, "Show metric trends across N most recent snapshots")
	trendCmd.Flags().BoolVar(&trendJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(trendCmd)
}

// trendMetricDirection maps metric names to whether higher values are better.
var trendMetricDirection = map[string]bool{
	"total_seconds":         true,
	"command_count":         true,
	"daily_average_seconds": true,
	"write_ratio":           true, // more time mutating than inspecting
	"distinct_projects":     true,
	"distinct_commands":     true,
}

// trendMetricOrder defines the display order in history output.
var trendMetricOrder = []string{
	"total_seconds",
	"daily_average_seconds",
	"command_count",
	"write_ratio",
	"distinct_projects",
	"distinct_commands",
}

func runTrend(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupColor(cfg)

	window, err := stats.WindowFromRange(trendRange, time.Now())
	if err != nil {
		return err
	}

	st := store.New(cfg.LogDir)
	records, err := st.Scan(window.Start, window.End)
	if err != nil {
		records = nil
	}
	report := stats.Summarize(records, window)

	db, err := trend.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening trend database: %w", err)
	}
	defer func() { _ = db.Close() }()

	snapshotID, err := db.CreateSnapshot(window.Name, window.Start, window.End, appVersion)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	for name, value := range trendMetrics(report) {
		if err := db.InsertMetric(snapshotID, name, value); err != nil {
			return fmt.Errorf("inserting metric %s: %w", name, err)
		}
	}

	if trendHistory > 0 {
		if trendJSON || flagJSON {
			return outputTrendHistoryJSON(db, trendHistory)
		}
		return renderTrendHistory(db, trendHistory)
	}

	current, err := db.GetSnapshot(snapshotID)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	// trendCompare=1 compares against the immediate predecessor (offset 2
	// from newest, since the new snapshot is already stored).
	previous, err := db.GetSnapshotN(trendCompare + 1)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	var deltas []trend.MetricDelta
	if previous != nil {
		prevMetrics, err := db.GetMetrics(previous.ID)
		if err != nil {
			return fmt.Errorf("loading previous metrics: %w", err)
		}
		currMetrics, err := db.GetMetrics(snapshotID)
		if err != nil {
			return fmt.Errorf("loading current metrics: %w", err)
		}
		deltas = trend.ComputeDeltas(prevMetrics, currMetrics, trendMetricDirection)
	}

	if trendJSON || flagJSON {
		result := map[string]any{"snapshot": current}
		if previous != nil {
			result["previous"] = previous
			result["deltas"] = deltas
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	renderTrend(current, previous, deltas)
	return nil
}

// trendMetrics flattens a stats report into the named values stored per
// snapshot.
func trendMetrics(report stats.Report) map[string]float64 {
	return map[string]float64{
		"total_seconds":         report.TotalSeconds,
		"command_count":         float64(report.CommandCount),
		"daily_average_seconds": report.DailyAverageSeconds,
		"write_ratio":           report.WritePercent(),
		"distinct_projects":     float64(report.DistinctProjects()),
		"distinct_commands":     float64(report.DistinctCommands()),
	}
}

// trendMetricShortName returns a compact label for table display.
func trendMetricShortName(name string) string {
	short := map[string]string{
		"total_seconds":         "Total Time (s)",
		"command_count":         "Commands",
		"daily_average_seconds": "Daily Avg (s)",
		"write_ratio":           "Write %",
		"distinct_projects":     "Projects",
		"distinct_commands":     "Distinct Cmds",
	}
	if s, ok := short[name]; ok {
		return s
	}
	return name
}

func renderTrend(current, previous *trend.Snapshot, deltas []trend.MetricDelta) {
	fmt.Println(output.Section("Trend: Snapshot Comparison"))
	fmt.Println()
	fmt.Printf(" Snapshot #%d (%s) taken at %s\n\n",
		current.ID, current.WindowName, current.TakenAt.Format("2006-01-02 15:04:05"))

	if previous == nil {
		fmt.Println(" First snapshot recorded. Run 'wakaterm trend' again later to see trends.")
		return
	}

	fmt.Printf(" Comparing against snapshot #%d (%s)\n\n",
		previous.ID, previous.TakenAt.Format("2006-01-02 15:04:05"))

	tbl := output.NewTable("Metric", "Previous", "Current", "Delta", "Trend").AlignRight(1, 2, 3)
	for _, d := range deltas {
		higherIsBetter, known := trendMetricDirection[d.Name]
		if !known {
			higherIsBetter = true
		}
		tbl.AddRow(
			trendMetricShortName(d.Name),
			fmt.Sprintf("%.1f", d.Previous),
			fmt.Sprintf("%.1f", d.Current),
			fmt.Sprintf("%+.1f", d.Delta),
			output.TrendArrow(d.Delta, higherIsBetter),
		)
	}
	tbl.Print()
}

// renderTrendHistory shows a multi-snapshot timeline table.
func renderTrendHistory(db *trend.DB, n int) error {
	snapshots, err := db.GetRecentSnapshots(n)
	if err != nil {
		return fmt.Errorf("loading snapshots: %w", err)
	}
	if len(snapshots) == 0 {
		fmt.Println(" No snapshots found. Run 'wakaterm trend' to create one.")
		return nil
	}

	// Reverse so oldest is first (left to right = chronological).
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	type snapshotMetrics struct {
		snapshot trend.Snapshot
		metrics  map[string]float64
	}
	var timeline []snapshotMetrics
	for _, s := range snapshots {
		metrics, err := db.GetMetrics(s.ID)
		if err != nil {
			return fmt.Errorf("loading metrics for snapshot #%d: %w", s.ID, err)
		}
		timeline = append(timeline, snapshotMetrics{snapshot: s, metrics: metrics})
	}

	fmt.Println(output.Section("Trend: Metric History"))
	fmt.Println()
	fmt.Printf(" Showing %d most recent snapshots\n\n", len(timeline))

	headers := []string{"Metric"}
	for _, sm := range timeline {
		headers = append(headers, fmt.Sprintf("#%d %s", sm.snapshot.ID, sm.snapshot.TakenAt.Format("Jan 02")))
	}
	headers = append(headers, "Trend")
	tbl := output.NewTable(headers...)

	for _, name := range trendMetricOrder {
		row := []string{trendMetricShortName(name)}
		var vals []float64
		for _, sm := range timeline {
			v := sm.metrics[name]
			vals = append(vals, v)
			row = append(row, fmt.Sprintf("%.1f", v))
		}

		trendCell := ""
		if len(vals) >= 2 {
			delta := vals[len(vals)-1] - vals[0]
			higherIsBetter, known := trendMetricDirection[name]
			if !known {
				higherIsBetter = true
			}
			trendCell = output.TrendArrow(delta, higherIsBetter)
		}
		row = append(row, trendCell)
		tbl.AddRow(row...)
	}

	tbl.Print()
	return nil
}

func outputTrendHistoryJSON(db *trend.DB, n int) error {
	snapshots, err := db.GetRecentSnapshots(n)
	if err != nil {
		return fmt.Errorf("loading snapshots: %w", err)
	}

	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	type snapshotEntry struct {
		Snapshot trend.Snapshot     `json:"snapshot"`
		Metrics  map[string]float64 `json:"metrics"`
	}
	var entries []snapshotEntry
	for _, s := range snapshots {
		metrics, err := db.GetMetrics(s.ID)
		if err != nil {
			return fmt.Errorf("loading metrics for snapshot #%d: %w", s.ID, err)
		}
		entries = append(entries, snapshotEntry{Snapshot: s, Metrics: metrics})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"history": entries})
}
