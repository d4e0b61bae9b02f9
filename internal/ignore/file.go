package ignore

import (
	"os"
	"path/filepath"
	"strings"
)

// defaultFileContents seeds a new ignore file with commented examples so the
// syntax is discoverable without documentation.
const defaultFileContents = `# wakaterm ignore patterns
# One pattern per line, gitignore-style:
#   - lines starting with # are comments
#   - * ? [...] wildcards are supported (* never crosses a space)
#   - a pattern without wildcards matches the command prefix on word boundaries
#   - prefix a pattern with ! to force-include commands a previous rule ignored
# The last matching rule wins.

# Shell built-ins and navigation noise
cd
pwd
ls
ll
la
clear
exit
logout
history

# Throwaway commands
test*
tmp*
debug_*

# Frequent status checks (uncomment to ignore)
# git status
# git diff

# Example negation: keep tracking git push even if git* is ignored above
# !git push*
`

// Load reads and compiles the ignore file at path. A missing file is created
// with the default contents first. Any read or create failure degrades to an
// empty ruleset; tracking must never break because of the ignore file.
func Load(path string) *RuleSet {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := writeDefault(path); err == nil {
				data = []byte(defaultFileContents)
			}
		}
		if data == nil {
			return &RuleSet{}
		}
	}
	return Compile(strings.Split(string(data), "\n"))
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultFileContents), 0o644)
}

// Add appends a pattern to the ignore file, creating it if needed.
func Add(path, pattern string) error {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.WriteString(pattern + "\n")
	return err
}

// Remove deletes a pattern line (with or without its ! prefix) from the
// ignore file. It reports whether the pattern was found.
func Remove(path, pattern string) (bool, error) {
	pattern = strings.TrimSpace(pattern)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	var kept []string
	found := false
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == pattern || trimmed == "!"+pattern {
			found = true
			continue
		}
		kept = append(kept, line)
	}
	if !found {
		return false, nil
	}
	return true, os.WriteFile(path, []byte(strings.Join(kept, "\n")), 0o644)
}
