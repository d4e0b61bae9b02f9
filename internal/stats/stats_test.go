package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QinCai-rui/WakaTerm-NG/internal/store"
)

func rec(ts time.Time, duration float64, base, language, project string, write bool) store.Record {
	return store.Record{
		Timestamp:   float64(ts.Unix()),
		Command:     base,
		BaseCommand: base,
		Project:     project,
		Language:    language,
		Duration:    duration,
		IsWrite:     write,
	}
}

func TestSummarize(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	w := WindowBetween(day, day.AddDate(0, 0, 1))

	records := []store.Record{
		rec(day.Add(9*time.Hour), 10, "python3", "Python", "api", false),
		rec(day.Add(10*time.Hour), 20, "python3", "Python", "api", true),
		rec(day.Add(11*time.Hour), 30, "git", "Git", "api", false),
		rec(day.Add(26*time.Hour), 99, "vim", "Vim", "other", true), // outside window
	}

	r := Summarize(records, w)

	assert.Equal(t, 60.0, r.TotalSeconds)
	assert.Equal(t, 3, r.CommandCount)
	assert.Equal(t, 20.0, r.WriteSeconds)
	assert.Equal(t, 30.0, r.ByLabel["Python"])
	assert.Equal(t, 30.0, r.ByLabel["Git"])
	assert.Equal(t, 60.0, r.ByProject["api"])
	assert.Equal(t, 2, r.ByCommand["python3"])
	assert.Equal(t, 1, r.ByCommand["git"])
	assert.Equal(t, 60.0, r.DailyAverageSeconds)

	assert.InDelta(t, 50.0, r.Percent(r.ByLabel["Python"]), 1e-9)
	assert.InDelta(t, 33.333, r.WritePercent(), 0.001)
	assert.Equal(t, 1, r.DistinctProjects())
	assert.Equal(t, 3, r.DistinctCommands())
}

func TestSummarize_Empty(t *testing.T) {
	w := WindowBetween(time.Now().Add(-time.Hour), time.Now())
	r := Summarize(nil, w)

	assert.Zero(t, r.TotalSeconds)
	assert.Zero(t, r.CommandCount)
	assert.Zero(t, r.DailyAverageSeconds)
	assert.NotNil(t, r.ByLabel)
	assert.NotNil(t, r.ByProject)
	assert.NotNil(t, r.ByCommand)
	assert.Zero(t, r.Percent(0))
	assert.Zero(t, r.WritePercent())
}

func TestSummarize_DailyAverage(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	w := WindowBetween(day, day.AddDate(0, 0, 7))

	records := []store.Record{
		rec(day.Add(12*time.Hour), 350, "go", "Go", "cli", false),
	}
	r := Summarize(records, w)
	assert.InDelta(t, 50.0, r.DailyAverageSeconds, 1e-9)
}

func TestTopCommands_Ordering(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	w := WindowBetween(day, day.AddDate(0, 0, 1))

	var records []store.Record
	add := func(base string, n int) {
		for i := 0; i < n; i++ {
			records = append(records, rec(day.Add(time.Duration(i)*time.Minute), 1, base, "X", "p", false))
		}
	}
	add("git", 3)
	add("vim", 3)
	add("go", 5)
	add("ls", 1)

	top := Summarize(records, w).TopCommands(3)
	require.Len(t, top, 3)
	assert.Equal(t, CommandRank{Command: "go", Count: 5}, top[0])
	// Tie between git and vim resolves alphabetically.
	assert.Equal(t, CommandRank{Command: "git", Count: 3}, top[1])
	assert.Equal(t, CommandRank{Command: "vim", Count: 3}, top[2])

	all := Summarize(records, w).TopCommands(0)
	assert.Len(t, all, 4)
}

func TestTopLabels_Ordering(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	w := WindowBetween(day, day.AddDate(0, 0, 1))

	records := []store.Record{
		rec(day.Add(time.Hour), 30, "go", "Go", "p", false),
		rec(day.Add(time.Hour), 10, "python3", "Python", "p", false),
		rec(day.Add(time.Hour), 10, "ruby", "Ruby", "p", false),
	}

	top := Summarize(records, w).TopLabels(0)
	require.Len(t, top, 3)
	assert.Equal(t, "Go", top[0].Name)
	assert.Equal(t, "Python", top[1].Name) // 10s tie, name ascending
	assert.Equal(t, "Ruby", top[2].Name)
}

func TestWindowFromRange(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	midnight := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	tomorrow := midnight.AddDate(0, 0, 1)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		days  int
	}{
		{"today", midnight, tomorrow, 1},
		{"yesterday", midnight.AddDate(0, 0, -1), midnight, 1},
		{"last_7_days", midnight.AddDate(0, 0, -6), tomorrow, 7},
		{"last_30_days", midnight.AddDate(0, 0, -29), tomorrow, 30},
		{"last_6_months", midnight.AddDate(0, -6, 0), tomorrow, 182},
		{"last_year", midnight.AddDate(-1, 0, 0), tomorrow, 366},
	}
	for _, tc := range tests {
		w, err := WindowFromRange(tc.name, now)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.start, w.Start, tc.name)
		assert.Equal(t, tc.end, w.End, tc.name)
		assert.Equal(t, tc.name, w.Name)
		assert.Equal(t, tc.days, w.Days(), tc.name)
	}

	// Keywords are case-insensitive.
	w, err := WindowFromRange("TODAY", now)
	require.NoError(t, err)
	assert.Equal(t, RangeToday, w.Name)

	_, err = WindowFromRange("fortnight", now)
	assert.Error(t, err)
}

func TestWindowContains(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 1)
	w := WindowBetween(start, end)

	assert.True(t, w.Contains(float64(start.Unix())), "start is inclusive")
	assert.True(t, w.Contains(float64(start.Unix())+3600))
	assert.False(t, w.Contains(float64(end.Unix())), "end is exclusive")
	assert.False(t, w.Contains(float64(start.Unix())-1))
}

func TestWindowDays_Partial(t *testing.T) {
	// 23:00 to 01:00 the next day touches two calendar days.
	start := time.Date(2026, 3, 1, 23, 0, 0, 0, time.Local)
	w := WindowBetween(start, start.Add(2*time.Hour))
	assert.Equal(t, 2, w.Days())

	assert.Equal(t, 0, WindowBetween(start, start).Days())
}

func TestWindowLabel(t *testing.T) {
	w, err := WindowFromRange(RangeLast7Days, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "last 7 days", w.Label())

	explicit := WindowBetween(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),
		time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local),
	)
	assert.Equal(t, "2026-03-01 to 2026-03-08", explicit.Label())
}
