// Package project resolves the enclosing project and version-control branch
// for a working directory. Resolution always succeeds: missing markers and
// filesystem errors degrade to the directory itself.
package project

import (
	"os"
	"path/filepath"
	"strings"
)

// Info describes the project enclosing a working directory.
type Info struct {
	Root   string // nearest ancestor containing a marker, or the cwd itself
	Name   string // base name of Root, "terminal" at filesystem root
	Branch string // current git branch, "" when not resolvable
}

// markers identify a project root: version-control directories first, then
// common manifest files.
var markers = []string{
	".git",
	".svn",
	".hg",
	"go.mod",
	"package.json",
	"Cargo.toml",
	"pyproject.toml",
	"pom.xml",
	"Gemfile",
	"setup.py",
}

// Resolve walks from cwd upward until a marker is found or the filesystem
// root is reached. Filesystem errors truncate the walk and fall back to cwd.
func Resolve(cwd string) Info {
	cwd = filepath.Clean(cwd)
	info := Info{Root: cwd, Name: dirName(cwd)}

	dir := cwd
	for {
		found, err := hasMarker(dir)
		if err != nil {
			return info
		}
		if found {
			info.Root = dir
			info.Name = dirName(dir)
			info.Branch = gitBranch(dir)
			return info
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return info
		}
		dir = parent
	}
}

func hasMarker(dir string) (bool, error) {
	for _, m := range markers {
		_, err := os.Stat(filepath.Join(dir, m))
		if err == nil {
			return true, nil
		}
		if !os.IsNotExist(err) {
			return false, err
		}
	}
	return false, nil
}

func dirName(dir string) string {
	name := filepath.Base(dir)
	if name == "/" || name == "." || name == "" {
		return "terminal"
	}
	return name
}

// gitBranch reads .git/HEAD to find the current branch without spawning a git
// process. Worktrees (where .git is a file pointing elsewhere) are followed;
// a detached HEAD or any read failure yields "".
func gitBranch(root string) string {
	gitPath := filepath.Join(root, ".git")
	fi, err := os.Stat(gitPath)
	if err != nil {
		return ""
	}

	gitDir := gitPath
	if !fi.IsDir() {
		data, err := os.ReadFile(gitPath)
		if err != nil {
			return ""
		}
		target := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(string(data)), "gitdir:"))
		if target == "" {
			return ""
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(root, target)
		}
		gitDir = target
	}

	head, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return ""
	}
	ref := strings.TrimSpace(string(head))
	const prefix = "ref: refs/heads/"
	if !strings.HasPrefix(ref, prefix) {
		// Detached HEAD or an unusual ref.
		return ""
	}
	return strings.TrimPrefix(ref, prefix)
}
