// Package store persists activity records as an append-only log: one JSON
// record per line, one file per local calendar day. Appends are single writes
// on an O_APPEND handle so concurrent recorder processes interleave at line
// granularity without coordination.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	filePrefix = "wakaterm-"
	fileSuffix = ".jsonl"
	dayFormat  = "2006-01-02"

	// scanParallelism bounds how many day files are parsed at once.
	scanParallelism = 4
)

// Record is one persisted observation of a tracked command. Records are
// immutable once written; the store only ever appends.
type Record struct {
	Timestamp   float64 `json:"timestamp"`
	Datetime    string  `json:"datetime"`
	Command     string  `json:"command"`
	BaseCommand string  `json:"base_command"`
	Cwd         string  `json:"cwd"`
	Project     string  `json:"project"`
	Branch      string  `json:"branch,omitempty"`
	Language    string  `json:"language"`
	Category    string  `json:"category"`
	IsWrite     bool    `json:"is_write"`
	Entity      string  `json:"entity"`
	Duration    float64 `json:"duration"`
	Plugin      string  `json:"plugin"`
}

// Time returns the record timestamp as a time.Time in the local zone.
func (r Record) Time() time.Time {
	sec := int64(r.Timestamp)
	nsec := int64((r.Timestamp - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// Store is a directory of per-day JSONL log files.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is created on first append.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the log directory.
func (s *Store) Dir() string {
	return s.dir
}

// Append serializes the record and appends it to the day file for its
// timestamp. The payload is written in a single Write call.
func (s *Store) Append(r Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	path := filepath.Join(s.dir, fileForDay(r.Time()))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = f.Write(data)
	return err
}

// Scan reads all records whose timestamp falls within [start, end), sorted by
// timestamp. Day files are parsed concurrently; malformed or truncated lines
// (for example a partial line from an in-progress append) are skipped. A
// missing log directory yields an empty result.
func (s *Store) Scan(start, end time.Time) ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	startF := float64(start.UnixNano()) / 1e9
	endF := float64(end.UnixNano()) / 1e9

	var (
		mu      sync.Mutex
		records []Record
	)
	g := new(errgroup.Group)
	g.SetLimit(scanParallelism)

	for _, entry := range entries {
		day, ok := dayFromFile(entry.Name())
		if !ok || !dayOverlaps(day, start, end) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		g.Go(func() error {
			recs, err := scanFile(path, startF, endF)
			if err != nil {
				return err
			}
			mu.Lock()
			records = append(records, recs...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
	return records, nil
}

// Cleanup removes day files older than daysToKeep days. It returns the number
// of files removed.
func (s *Store) Cleanup(daysToKeep int) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().AddDate(0, 0, -daysToKeep)
	removed := 0
	for _, entry := range entries {
		day, ok := dayFromFile(entry.Name())
		if !ok || !day.Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func scanFile(path string, startF, endF float64) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var r Record
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			// Malformed or truncated line; skip it rather than failing
			// the whole scan.
			continue
		}
		if r.Timestamp >= startF && r.Timestamp < endF {
			records = append(records, r)
		}
	}
	// A read error mid-file still returns what parsed so far.
	_ = scanner.Err()
	return records, nil
}

func fileForDay(t time.Time) string {
	return fmt.Sprintf("%s%s%s", filePrefix, t.Format(dayFormat), fileSuffix)
}

func dayFromFile(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return time.Time{}, false
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	day, err := time.ParseInLocation(dayFormat, raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// dayOverlaps reports whether the calendar day starting at day intersects
// [start, end).
func dayOverlaps(day time.Time, start, end time.Time) bool {
	next := day.AddDate(0, 0, 1)
	return day.Before(end) && next.After(start)
}
