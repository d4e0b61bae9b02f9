package trend

import (
	"database/sql"
	"sort"
	"time"
)

// Snapshot is one stored capture of windowed activity aggregates.
type Snapshot struct {
	ID          int64     `json:"id"`
	TakenAt     time.Time `json:"taken_at"`
	WindowName  string    `json:"window_name"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Version     string    `json:"version"`
}

// MetricDelta is the change in a single metric between two snapshots.
type MetricDelta struct {
	Name      string  `json:"name"`
	Previous  float64 `json:"previous"`
	Current   float64 `json:"current"`
	Delta     float64 `json:"delta"`
	Direction string  `json:"direction"` // "improved", "regressed", "unchanged"
}

// CreateSnapshot inserts a new snapshot and returns its ID.
func (db *DB) CreateSnapshot(windowName string, windowStart, windowEnd time.Time, version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, window_name, window_start, window_end, version) VALUES (?, ?, ?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), windowName,
		windowStart.UTC().Format(time.RFC3339), windowEnd.UTC().Format(time.RFC3339),
		version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertMetric stores one named metric value for a snapshot.
func (db *DB) InsertMetric(snapshotID int64, name string, value float64) error {
	_, err := db.conn.Exec(
		"INSERT INTO snapshot_metrics (snapshot_id, metric_name, metric_value) VALUES (?, ?, ?)",
		snapshotID, name, value,
	)
	return err
}

// GetSnapshot returns a snapshot by ID.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, window_name, window_start, window_end, version FROM snapshots WHERE id = ?", id)
	return scanSnapshot(row)
}

// GetSnapshotN returns the Nth most recent snapshot (1 = latest, 2 = previous,
// etc.), or nil if it does not exist.
func (db *DB) GetSnapshotN(n int) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, window_name, window_start, window_end, version FROM snapshots ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanSnapshot(row)
}

// GetRecentSnapshots returns up to n most recent snapshots, newest first.
func (db *DB) GetRecentSnapshots(n int) ([]Snapshot, error) {
	rows, err := db.conn.Query(
		"SELECT id, taken_at, window_name, window_start, window_end, version FROM snapshots ORDER BY id DESC LIMIT ?",
		n,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		var takenAt, start, end string
		if err := rows.Scan(&s.ID, &takenAt, &s.WindowName, &start, &end, &s.Version); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		s.WindowStart, _ = time.Parse(time.RFC3339, start)
		s.WindowEnd, _ = time.Parse(time.RFC3339, end)
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// GetMetrics returns the metric map for a snapshot.
func (db *DB) GetMetrics(snapshotID int64) (map[string]float64, error) {
	rows, err := db.conn.Query(
		"SELECT metric_name, metric_value FROM snapshot_metrics WHERE snapshot_id = ?",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	metrics := make(map[string]float64)
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metrics[name] = value
	}
	return metrics, rows.Err()
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt, start, end string
	err := row.Scan(&s.ID, &takenAt, &s.WindowName, &start, &end, &s.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	s.WindowStart, _ = time.Parse(time.RFC3339, start)
	s.WindowEnd, _ = time.Parse(time.RFC3339, end)
	return &s, nil
}

// ComputeDeltas compares two metric maps and returns per-metric deltas in
// deterministic (name-sorted) order. higherIsBetter decides the direction
// shown for a non-zero delta; unknown metrics default to higher-is-better.
func ComputeDeltas(prev, curr map[string]float64, higherIsBetter map[string]bool) []MetricDelta {
	names := make([]string, 0, len(curr))
	for name := range curr {
		names = append(names, name)
	}
	sort.Strings(names)

	var deltas []MetricDelta
	for _, name := range names {
		prevVal := prev[name]
		currVal := curr[name]
		delta := currVal - prevVal

		direction := "unchanged"
		if delta != 0 {
			better, known := higherIsBetter[name]
			if !known {
				better = true
			}
			isPositive := delta > 0
			if (isPositive && better) || (!isPositive && !better) {
				direction = "improved"
			} else {
				direction = "regressed"
			}
		}

		deltas = append(deltas, MetricDelta{
			Name:      name,
			Previous:  prevVal,
			Current:   currVal,
			Delta:     delta,
			Direction: direction,
		})
	}
	return deltas
}
