// Package stats aggregates stored activity records into time-windowed
// summary statistics: totals, per-label and per-project breakdowns, and
// command rankings.
package stats

import (
	"sort"

	"github.com/QinCai-rui/WakaTerm-NG/internal/store"
)

// Report summarizes the activity inside one window. Percentages are derived
// at presentation time via Percent, never stored.
type Report struct {
	Window              Window             `json:"window"`
	TotalSeconds        float64            `json:"total_seconds"`
	CommandCount        int                `json:"command_count"`
	WriteSeconds        float64            `json:"write_seconds"`
	ByLabel             map[string]float64 `json:"by_label"`
	ByProject           map[string]float64 `json:"by_project"`
	ByCommand           map[string]int     `json:"by_command"`
	DailyAverageSeconds float64            `json:"daily_average_seconds"`
}

// Bucket is a named duration sum used in rankings.
type Bucket struct {
	Name    string  `json:"name"`
	Seconds float64 `json:"seconds"`
}

// CommandRank is a base command with its occurrence count.
type CommandRank struct {
	Command string `json:"command"`
	Count   int    `json:"count"`
}

// Summarize aggregates the records that fall inside the window. An empty
// input produces a zero report with all maps allocated.
func Summarize(records []store.Record, w Window) Report {
	r := Report{
		Window:    w,
		ByLabel:   make(map[string]float64),
		ByProject: make(map[string]float64),
		ByCommand: make(map[string]int),
	}

	for _, rec := range records {
		if !w.Contains(rec.Timestamp) {
			continue
		}
		r.TotalSeconds += rec.Duration
		r.CommandCount++
		r.ByLabel[rec.Language] += rec.Duration
		r.ByProject[rec.Project] += rec.Duration
		r.ByCommand[rec.BaseCommand]++
		if rec.IsWrite {
			r.WriteSeconds += rec.Duration
		}
	}

	days := w.Days()
	if days < 1 {
		days = 1
	}
	r.DailyAverageSeconds = r.TotalSeconds / float64(days)
	return r
}

// Percent returns seconds as a percentage of the report total, or 0 when the
// total is zero.
func (r Report) Percent(seconds float64) float64 {
	if r.TotalSeconds == 0 {
		return 0
	}
	return seconds / r.TotalSeconds * 100
}

// WritePercent returns the share of time spent in write operations.
func (r Report) WritePercent() float64 {
	return r.Percent(r.WriteSeconds)
}

// TopCommands ranks base commands by occurrence count, descending, ties
// broken by command name ascending. n <= 0 returns the full ranking.
func (r Report) TopCommands(n int) []CommandRank {
	ranks := make([]CommandRank, 0, len(r.ByCommand))
	for cmd, count := range r.ByCommand {
		ranks = append(ranks, CommandRank{Command: cmd, Count: count})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Count != ranks[j].Count {
			return ranks[i].Count > ranks[j].Count
		}
		return ranks[i].Command < ranks[j].Command
	})
	return truncateRanks(ranks, n)
}

// TopLabels ranks labels by accumulated seconds, descending, ties broken by
// name ascending.
func (r Report) TopLabels(n int) []Bucket {
	return rankBuckets(r.ByLabel, n)
}

// TopProjects ranks projects by accumulated seconds, descending, ties broken
// by name ascending.
func (r Report) TopProjects(n int) []Bucket {
	return rankBuckets(r.ByProject, n)
}

func rankBuckets(m map[string]float64, n int) []Bucket {
	buckets := make([]Bucket, 0, len(m))
	for name, secs := range m {
		buckets = append(buckets, Bucket{Name: name, Seconds: secs})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Seconds != buckets[j].Seconds {
			return buckets[i].Seconds > buckets[j].Seconds
		}
		return buckets[i].Name < buckets[j].Name
	})
	if n > 0 && len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

func truncateRanks(ranks []CommandRank, n int) []CommandRank {
	if n > 0 && len(ranks) > n {
		return ranks[:n]
	}
	return ranks
}

// DistinctProjects returns the number of distinct projects in the report.
func (r Report) DistinctProjects() int {
	return len(r.ByProject)
}

// DistinctCommands returns the number of distinct base commands.
func (r Report) DistinctCommands() int {
	return len(r.ByCommand)
}
