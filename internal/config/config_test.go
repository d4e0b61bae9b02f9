package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.RetentionDays != DefaultRetentionDays {
		t.Errorf("RetentionDays = %d, want %d", cfg.RetentionDays, DefaultRetentionDays)
	}
	if !cfg.Reporter.Enabled {
		t.Error("reporter should be enabled by default")
	}
	if cfg.Reporter.CLIPath != "wakatime-cli" {
		t.Errorf("CLIPath = %q", cfg.Reporter.CLIPath)
	}
	if !cfg.Output.Color {
		t.Error("color should be enabled by default")
	}
	if strings.HasPrefix(cfg.LogDir, "~") {
		t.Errorf("LogDir not expanded: %q", cfg.LogDir)
	}
	if strings.HasPrefix(cfg.IgnoreFile, "~") {
		t.Errorf("IgnoreFile not expanded: %q", cfg.IgnoreFile)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
log_dir: /var/log/wakaterm
retention_days: 7
reporter:
  enabled: false
  timeout_seconds: 5
output:
  color: false
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogDir != "/var/log/wakaterm" {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.RetentionDays != 7 {
		t.Errorf("RetentionDays = %d", cfg.RetentionDays)
	}
	if cfg.Reporter.Enabled {
		t.Error("reporter should be disabled")
	}
	if cfg.Reporter.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v", cfg.Reporter.Timeout())
	}
	if cfg.Output.Color {
		t.Error("color should be disabled")
	}

	// Unset keys keep their defaults.
	if cfg.Reporter.CLIPath != "wakatime-cli" {
		t.Errorf("CLIPath = %q", cfg.Reporter.CLIPath)
	}
}

func TestDefaults_PathsExpanded(t *testing.T) {
	cfg := Defaults()
	for name, p := range map[string]string{
		"LogDir":     cfg.LogDir,
		"IgnoreFile": cfg.IgnoreFile,
		"Database":   cfg.Database,
	} {
		if strings.HasPrefix(p, "~") {
			t.Errorf("%s not expanded: %q", name, p)
		}
		if p == "" {
			t.Errorf("%s is empty", name)
		}
	}
	if cfg.Reporter.Timeout() != 30*time.Second {
		t.Errorf("default Timeout() = %v", cfg.Reporter.Timeout())
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandPath("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Errorf("expandPath(~/x/y) = %q", got)
	}
	if got := expandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("expandPath(/abs/path) = %q", got)
	}
	if got := expandPath("rel"); got != "rel" {
		t.Errorf("expandPath(rel) = %q", got)
	}
}
