// Package classify maps a captured command line to a language/category label
// and a write/read flag. Classification is a pure lookup with a typed
// fallback: it never does I/O and never fails.
package classify

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Category groups commands by what kind of tool they are.
type Category string

const (
	CategoryLanguage Category = "language"
	CategoryTool     Category = "tool"
	CategorySystem   Category = "system"
	CategoryEditor   Category = "editor"
	CategoryUnknown  Category = "unknown"
)

// Entry is the classification of one command.
type Entry struct {
	BaseCommand string
	Label       string
	Category    Category
	IsWrite     bool
}

// wrapperPrefixes are commands that merely wrap the real command.
var wrapperPrefixes = map[string]bool{
	"time":    true,
	"nohup":   true,
	"nice":    true,
	"ionice":  true,
	"timeout": true,
	"strace":  true,
	"ltrace":  true,
}

// strippedExtensions are executable suffixes removed from the base command so
// "node.exe" and "node" classify identically.
var strippedExtensions = map[string]bool{
	".exe": true,
	".bat": true,
	".cmd": true,
	".com": true,
}

// Classify returns the classification entry for a raw command line.
// Unrecognized commands degrade to CategoryUnknown with a capitalized label;
// an empty command classifies as plain shell activity.
func Classify(raw string) Entry {
	tokens := commandTokens(raw)
	if len(tokens) == 0 {
		return Entry{BaseCommand: "", Label: "Shell", Category: CategoryUnknown}
	}

	base := baseFromToken(tokens[0])
	key := strings.ToLower(base)

	spec, ok := commands[key]
	if !ok {
		return Entry{
			BaseCommand: base,
			Label:       capitalize(base),
			Category:    CategoryUnknown,
		}
	}

	e := Entry{
		BaseCommand: base,
		Label:       spec.label,
		Category:    spec.category,
		IsWrite:     spec.write,
	}
	if subs, isVCS := vcsWriteSubcommands[key]; isVCS {
		if sub := subcommand(tokens); sub != "" {
			if write, known := subs[sub]; known {
				e.IsWrite = write
			}
		}
	}
	return e
}

// BaseCommand extracts the base command from a full command line: the first
// token of the first pipeline segment, with wrapper prefixes, directory path,
// and executable extension stripped. Returns "unknown" for an empty line,
// matching what gets persisted for unparseable input.
func BaseCommand(raw string) string {
	tokens := commandTokens(raw)
	if len(tokens) == 0 {
		return "unknown"
	}
	return baseFromToken(tokens[0])
}

// commandTokens returns the whitespace-split tokens of the first command in
// the line (everything before the first |, && or ;), with wrapper prefixes
// skipped.
func commandTokens(raw string) []string {
	segment := raw
	for _, sep := range []string{"|", "&&", ";"} {
		if idx := strings.Index(segment, sep); idx >= 0 {
			segment = segment[:idx]
		}
	}

	tokens := strings.Fields(segment)
	for len(tokens) > 1 && wrapperPrefixes[strings.ToLower(tokens[0])] {
		tokens = tokens[1:]
	}
	return tokens
}

func baseFromToken(tok string) string {
	base := filepath.Base(tok)
	if ext := filepath.Ext(base); strippedExtensions[strings.ToLower(ext)] {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// subcommand returns the first non-flag token after the base command.
func subcommand(tokens []string) string {
	for _, tok := range tokens[1:] {
		if strings.HasPrefix(tok, "-") {
			continue
		}
		return strings.ToLower(tok)
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return "Shell"
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
