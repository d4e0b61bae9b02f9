package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_GitMarker(t *testing.T) {
	root := filepath.Join(t.TempDir(), "myproj")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref: refs/heads/main\n")
	sub := filepath.Join(root, "src", "pkg")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	info := Resolve(sub)
	if info.Root != root {
		t.Errorf("Root = %q, want %q", info.Root, root)
	}
	if info.Name != "myproj" {
		t.Errorf("Name = %q, want myproj", info.Name)
	}
	if info.Branch != "main" {
		t.Errorf("Branch = %q, want main", info.Branch)
	}
}

func TestResolve_ManifestMarker(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gomod-proj")
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/x\n")
	sub := filepath.Join(root, "internal", "deep")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	info := Resolve(sub)
	if info.Root != root {
		t.Errorf("Root = %q, want %q", info.Root, root)
	}
	if info.Branch != "" {
		t.Errorf("non-git project should have empty branch, got %q", info.Branch)
	}
}

func TestResolve_NoMarkerFallsBackToCwd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plain")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	info := Resolve(dir)
	if info.Root != dir {
		t.Errorf("Root = %q, want %q", info.Root, dir)
	}
	if info.Name != "plain" {
		t.Errorf("Name = %q, want plain", info.Name)
	}
	if info.Branch != "" {
		t.Errorf("Branch = %q, want empty", info.Branch)
	}
}

func TestResolve_NearestMarkerWins(t *testing.T) {
	outer := filepath.Join(t.TempDir(), "outer")
	writeFile(t, filepath.Join(outer, ".git", "HEAD"), "ref: refs/heads/outer-branch\n")
	inner := filepath.Join(outer, "vendor", "inner")
	writeFile(t, filepath.Join(inner, "package.json"), "{}\n")

	info := Resolve(inner)
	if info.Root != inner {
		t.Errorf("Root = %q, want nested root %q", info.Root, inner)
	}
	if info.Name != "inner" {
		t.Errorf("Name = %q, want inner", info.Name)
	}
}

func TestGitBranch_DetachedHead(t *testing.T) {
	root := filepath.Join(t.TempDir(), "detached")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678\n")

	info := Resolve(root)
	if info.Branch != "" {
		t.Errorf("detached HEAD should yield empty branch, got %q", info.Branch)
	}
}

func TestGitBranch_WorktreeIndirection(t *testing.T) {
	base := t.TempDir()
	gitDir := filepath.Join(base, "repo.git", "worktrees", "wt")
	writeFile(t, filepath.Join(gitDir, "HEAD"), "ref: refs/heads/feature/login\n")

	worktree := filepath.Join(base, "wt")
	writeFile(t, filepath.Join(worktree, ".git"), "gitdir: "+gitDir+"\n")

	info := Resolve(worktree)
	if info.Branch != "feature/login" {
		t.Errorf("Branch = %q, want feature/login", info.Branch)
	}
}

func TestGitBranch_RelativeGitdir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "rel")
	writeFile(t, filepath.Join(root, "gitmeta", "HEAD"), "ref: refs/heads/dev\n")
	writeFile(t, filepath.Join(root, ".git"), "gitdir: gitmeta\n")

	info := Resolve(root)
	if info.Branch != "dev" {
		t.Errorf("Branch = %q, want dev", info.Branch)
	}
}
