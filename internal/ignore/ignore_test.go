package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIgnored_EmptyCommand(t *testing.T) {
	rs := Compile(nil)
	if !rs.Ignored("") {
		t.Error("empty command should always be ignored")
	}
	if !rs.Ignored("   \t ") {
		t.Error("whitespace-only command should always be ignored")
	}
}

func TestIgnored_NoMatchTracked(t *testing.T) {
	rs := Compile([]string{"ls", "cd"})
	if rs.Ignored("vim main.go") {
		t.Error("command with no matching rule should be tracked")
	}
}

func TestIgnored_PrefixTokenBoundary(t *testing.T) {
	rs := Compile([]string{"git"})

	tests := []struct {
		command string
		want    bool
	}{
		{"git", true},
		{"git status", true},
		{"git\tstatus", true},
		{"github", false},
		{"github-cli auth", false},
		{"GIT STATUS", true}, // case-insensitive
	}
	for _, tc := range tests {
		if got := rs.Ignored(tc.command); got != tc.want {
			t.Errorf("Ignored(%q) = %v, want %v", tc.command, got, tc.want)
		}
	}
}

func TestIgnored_Wildcards(t *testing.T) {
	rs := Compile([]string{"test*", "debug_*", "v?m"})

	tests := []struct {
		command string
		want    bool
	}{
		{"test", true},         // * matches zero characters
		{"tests", true},
		{"test foo", true},
		{"testing things", true},
		{"latest build", false}, // anchored at start
		{"debug_run", true},
		{"debug", false},        // literal prefix required before *
		{"vim file.txt", true},  // ? matches a single char
		{"vm list", false},      // ? must consume exactly one char
	}
	for _, tc := range tests {
		if got := rs.Ignored(tc.command); got != tc.want {
			t.Errorf("Ignored(%q) = %v, want %v", tc.command, got, tc.want)
		}
	}
}

func TestIgnored_StarNeverCrossesSpace(t *testing.T) {
	rs := Compile([]string{"npm*install"})
	if rs.Ignored("npm run install") {
		t.Error("* should not match across whitespace")
	}
	if !rs.Ignored("npm-ci-install") {
		t.Error("* should match non-whitespace runs")
	}
}

func TestIgnored_LastMatchWins(t *testing.T) {
	rs := Compile([]string{"git*", "!git push*"})

	if !rs.Ignored("git status") {
		t.Error("git status should be ignored by git*")
	}
	if rs.Ignored("git push origin main") {
		t.Error("git push should be re-included by the later negation")
	}

	// A later plain rule overrides an earlier negation.
	rs = Compile([]string{"git*", "!git push*", "git push origin*"})
	if !rs.Ignored("git push origin main") {
		t.Error("later plain rule should override the negation")
	}
	if rs.Ignored("git push upstream dev") {
		t.Error("negation should still apply where the last rule does not match")
	}
}

func TestIgnored_CharacterClass(t *testing.T) {
	rs := Compile([]string{"[gh]it"})
	if !rs.Ignored("git status") {
		t.Error("[gh]it should match git")
	}
	if !rs.Ignored("hit") {
		t.Error("[gh]it should match hit")
	}
	if rs.Ignored("bit") {
		t.Error("[gh]it should not match bit")
	}
}

func TestCompile_SkipsCommentsAndBlanks(t *testing.T) {
	rs := Compile([]string{"", "# a comment", " ls ", "  ", "!", "cd"})
	if rs.Len() != 2 {
		t.Errorf("expected 2 rules, got %d", rs.Len())
	}
	want := []string{"ls", "cd"}
	got := rs.Patterns()
	if len(got) != len(want) {
		t.Fatalf("Patterns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Patterns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPatterns_KeepsNegationPrefix(t *testing.T) {
	rs := Compile([]string{"git*", "!git push*"})
	got := rs.Patterns()
	if len(got) != 2 || got[0] != "git*" || got[1] != "!git push*" {
		t.Errorf("Patterns() = %v", got)
	}
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "ignore")

	rs := Load(path)
	if rs.Len() == 0 {
		t.Error("default ignore file should compile to a non-empty ruleset")
	}
	if !rs.Ignored("cd /tmp") {
		t.Error("default rules should ignore cd")
	}
	if rs.Ignored("vim main.go") {
		t.Error("default rules should not ignore vim")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default file was not written: %v", err)
	}
	if !strings.Contains(string(data), "# wakaterm ignore patterns") {
		t.Error("default file missing header comment")
	}
}

func TestLoad_UnreadableDegradesToEmpty(t *testing.T) {
	// A directory at the ignore path is neither readable nor creatable.
	dir := t.TempDir()
	rs := Load(dir)
	if rs.Len() != 0 {
		t.Errorf("expected empty ruleset, got %d rules", rs.Len())
	}
	if rs.Ignored("git status") {
		t.Error("empty ruleset should track everything non-empty")
	}
}

func TestAddRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore")

	if err := Add(path, "docker*"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(path, "!docker ps"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	rs := Load(path)
	if !rs.Ignored("docker build .") {
		t.Error("docker build should be ignored after Add")
	}
	if rs.Ignored("docker ps") {
		t.Error("docker ps should be re-included by the negation")
	}

	found, err := Remove(path, "docker ps")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !found {
		t.Error("Remove should match a negated line without the ! prefix")
	}

	rs = Load(path)
	if !rs.Ignored("docker ps") {
		t.Error("docker ps should be ignored again after removing the negation")
	}

	found, err = Remove(path, "no-such-pattern")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if found {
		t.Error("Remove should report false for a pattern not in the file")
	}
}

func TestRemove_MissingFile(t *testing.T) {
	found, err := Remove(filepath.Join(t.TempDir(), "absent"), "ls")
	if err != nil {
		t.Fatalf("Remove on missing file: %v", err)
	}
	if found {
		t.Error("Remove on missing file should report false")
	}
}
