// Package heartbeat sends activity heartbeats to the external wakatime-cli
// binary. Delivery is best-effort and at-most-once: the caller fires one
// bounded-timeout invocation per tracked command and never retries.
package heartbeat

import (
	"context"
	"os/exec"
	"strconv"
	"time"
)

// Heartbeat carries the metadata reported for one tracked command.
type Heartbeat struct {
	Entity        string  // synthetic URI, e.g. terminal://proj/git#a1b2c3
	Project       string
	ProjectFolder string
	Language      string
	Branch        string
	Plugin        string // plugin identifier/version, e.g. wakaterm-ng/2.1.0
	Time          float64 // unix seconds
	IsWrite       bool
}

// Client invokes wakatime-cli as a subprocess.
type Client struct {
	path    string
	timeout time.Duration
}

// NewClient returns a Client for the given wakatime-cli path. A non-positive
// timeout falls back to 30 seconds.
func NewClient(path string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{path: path, timeout: timeout}
}

// Path returns the configured wakatime-cli binary path.
func (c *Client) Path() string {
	return c.path
}

// Send invokes wakatime-cli with the heartbeat metadata. Output is discarded;
// the process is bounded by the client timeout via the command context.
func (c *Client) Send(ctx context.Context, hb Heartbeat) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.path, c.args(hb)...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}

// args builds the wakatime-cli argument list for a heartbeat.
func (c *Client) args(hb Heartbeat) []string {
	args := []string{
		"--entity", hb.Entity,
		"--entity-type", "app",
		"--category", "coding",
		"--project", hb.Project,
		"--language", hb.Language,
		"--time", strconv.FormatFloat(hb.Time, 'f', -1, 64),
		"--plugin", hb.Plugin,
		"--timeout", strconv.Itoa(int(c.timeout.Seconds())),
	}
	if hb.ProjectFolder != "" {
		args = append(args, "--project-folder", hb.ProjectFolder)
	}
	if hb.Branch != "" {
		args = append(args, "--alternate-branch", hb.Branch)
	}
	if hb.IsWrite {
		args = append(args, "--write")
	}
	return args
}
