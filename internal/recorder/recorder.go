// Package recorder orchestrates the capture of one completed shell command:
// ignore filtering, classification, project resolution, durable local
// persistence, and the best-effort external heartbeat.
package recorder

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/QinCai-rui/WakaTerm-NG/internal/classify"
	"github.com/QinCai-rui/WakaTerm-NG/internal/heartbeat"
	"github.com/QinCai-rui/WakaTerm-NG/internal/ignore"
	"github.com/QinCai-rui/WakaTerm-NG/internal/project"
	"github.com/QinCai-rui/WakaTerm-NG/internal/store"
)

// Outcome is the result of recording one command.
type Outcome int

const (
	// Tracked: the command was persisted and reported.
	Tracked Outcome = iota
	// Ignored: an ignore pattern matched; nothing was written or sent.
	Ignored
	// Skipped: empty input or the tracker's own invocation.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Tracked:
		return "tracked"
	case Ignored:
		return "ignored"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Duration clamp bounds: anything outside this band is a reporting artifact
// and is normalized, never dropped.
const (
	MinDuration = 0.1
	MaxDuration = 3600.0
)

// selfNames are front-end names whose invocations must never be tracked, to
// avoid feedback loops when the shell hook shells out to the tracker itself.
var selfNames = map[string]bool{
	"wakaterm":    true,
	"wakaterm-ng": true,
}

// Sender delivers the external heartbeat for a tracked command.
type Sender interface {
	Send(ctx context.Context, hb heartbeat.Heartbeat) error
}

// Input is one captured command from the shell hook.
type Input struct {
	Command   string
	Cwd       string
	Timestamp float64 // unix seconds; <= 0 means now
	Duration  float64 // seconds; clamped before persistence
	Debug     bool
}

// Recorder wires the capture pipeline together.
type Recorder struct {
	store  *store.Store
	rules  *ignore.RuleSet
	sender Sender // nil disables reporting
	plugin string
	self   map[string]bool
	debugW io.Writer
}

// New builds a Recorder. sender may be nil to disable external reporting;
// reporterPath (the external client binary, if any) is added to the
// self-recursion guard.
func New(st *store.Store, rules *ignore.RuleSet, sender Sender, plugin, reporterPath string) *Recorder {
	self := make(map[string]bool, len(selfNames)+1)
	for name := range selfNames {
		self[name] = true
	}
	if reporterPath != "" {
		self[strings.ToLower(filepath.Base(reporterPath))] = true
	}
	return &Recorder{
		store:  st,
		rules:  rules,
		sender: sender,
		plugin: plugin,
		self:   self,
		debugW: os.Stderr,
	}
}

// SetDebugWriter redirects debug diagnostics (used by tests).
func (r *Recorder) SetDebugWriter(w io.Writer) {
	r.debugW = w
}

// Record processes one captured command. It never returns an error: every
// failure inside the pipeline degrades (and is reported on stderr in debug
// mode) so tracking can never interfere with normal shell usage.
func (r *Recorder) Record(ctx context.Context, in Input) Outcome {
	command := strings.TrimSpace(in.Command)
	if command == "" {
		r.debugf(in.Debug, "skipping empty command")
		return Skipped
	}

	base := classify.BaseCommand(command)
	if r.self[strings.ToLower(base)] {
		r.debugf(in.Debug, "skipping self-invocation %q", command)
		return Skipped
	}

	if r.rules != nil && r.rules.Ignored(command) {
		r.debugf(in.Debug, "ignoring %q", command)
		return Ignored
	}

	duration := clampDuration(in.Duration)
	ts := in.Timestamp
	if ts <= 0 {
		ts = float64(time.Now().UnixNano()) / 1e9
	}
	cwd := in.Cwd
	if cwd == "" {
		if wd, err := os.Getwd(); err == nil {
			cwd = wd
		}
	}

	entry := classify.Classify(command)
	info := project.Resolve(cwd)

	rec := store.Record{
		Timestamp:   ts,
		Datetime:    time.Unix(int64(ts), 0).Format(time.RFC3339),
		Command:     command,
		BaseCommand: entry.BaseCommand,
		Cwd:         cwd,
		Project:     info.Name,
		Branch:      info.Branch,
		Language:    entry.Label,
		Category:    string(entry.Category),
		IsWrite:     entry.IsWrite,
		Entity:      entityURI(info.Name, entry.BaseCommand, cwd),
		Duration:    duration,
		Plugin:      r.plugin,
	}

	r.debugf(in.Debug, "logging %q in project %q (language: %s, duration: %.1fs)",
		command, info.Name, entry.Label, duration)

	if err := r.store.Append(rec); err != nil {
		r.debugf(in.Debug, "append failed: %v", err)
	}

	if r.sender != nil {
		hb := heartbeat.Heartbeat{
			Entity:        rec.Entity,
			Project:       info.Name,
			ProjectFolder: info.Root,
			Language:      entry.Label,
			Branch:        info.Branch,
			Plugin:        r.plugin,
			Time:          ts,
			IsWrite:       entry.IsWrite,
		}
		if err := r.sender.Send(ctx, hb); err != nil {
			r.debugf(in.Debug, "heartbeat failed: %v", err)
		}
	}

	return Tracked
}

func clampDuration(d float64) float64 {
	// NaN compares false to everything and would poison the JSON encoding,
	// so it normalizes like any other unusable measurement.
	if math.IsNaN(d) || d < MinDuration {
		return MinDuration
	}
	if d > MaxDuration {
		return MaxDuration
	}
	return d
}

// entityURI builds the synthetic activity identifier. The hash suffix keeps
// entities distinct per working directory.
func entityURI(projectName, base, cwd string) string {
	sum := md5.Sum([]byte(base + ":" + cwd))
	return fmt.Sprintf("terminal://%s/%s#%x", projectName, base, sum[:6])
}

func (r *Recorder) debugf(debug bool, format string, args ...any) {
	if !debug || r.debugW == nil {
		return
	}
	fmt.Fprintf(r.debugW, "WAKATERM DEBUG: "+format+"\n", args...)
}
