// Package ignore compiles and evaluates ignore patterns that decide whether a
// captured command is tracked at all. Patterns use gitignore-like syntax, one
// per line: # comments, blank lines, ! negations, and the wildcards * ? [...].
package ignore

import (
	"regexp"
	"strings"
)

// Rule is one compiled pattern line.
type Rule struct {
	Raw    string // pattern as written, without the ! prefix
	Negate bool   // force-include when this rule matches

	// Exactly one of re/prefix is set. Wildcard-free patterns match as a
	// case-insensitive prefix on token boundaries, so "git" matches
	// "git status" but not "github".
	re     *regexp.Regexp
	prefix string
}

// RuleSet holds rules in file order. The last matching rule decides the
// outcome, like layered ignore files.
type RuleSet struct {
	rules []Rule
}

// Compile parses pattern lines into a RuleSet. Blank lines, comments, and
// patterns that fail to compile are skipped.
func Compile(lines []string) *RuleSet {
	rs := &RuleSet{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		negate := false
		if strings.HasPrefix(line, "!") {
			negate = true
			line = strings.TrimSpace(line[1:])
			if line == "" {
				continue
			}
		}

		rule := Rule{Raw: line, Negate: negate}
		if strings.ContainsAny(line, "*?[") {
			re, err := compilePattern(line)
			if err != nil {
				continue
			}
			rule.re = re
		} else {
			rule.prefix = strings.ToLower(line)
		}
		rs.rules = append(rs.rules, rule)
	}
	return rs
}

// Len returns the number of compiled rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Patterns returns the raw patterns in file order, negations prefixed with !.
func (rs *RuleSet) Patterns() []string {
	out := make([]string, 0, len(rs.rules))
	for _, r := range rs.rules {
		if r.Negate {
			out = append(out, "!"+r.Raw)
			continue
		}
		out = append(out, r.Raw)
	}
	return out
}

// Ignored reports whether the command should not be tracked. An empty or
// whitespace-only command is never tracked regardless of rules. Otherwise all
// rules are scanned in file order and the last match wins: a plain rule
// ignores the command, a negation re-includes it. No match means tracked.
func (rs *RuleSet) Ignored(command string) bool {
	command = strings.TrimSpace(command)
	if command == "" {
		return true
	}

	ignored := false
	for _, r := range rs.rules {
		if r.matches(command) {
			ignored = !r.Negate
		}
	}
	return ignored
}

func (r Rule) matches(command string) bool {
	if r.re != nil {
		return r.re.MatchString(command)
	}
	lc := strings.ToLower(command)
	if lc == r.prefix {
		return true
	}
	if len(lc) > len(r.prefix) && strings.HasPrefix(lc, r.prefix) {
		next := lc[len(r.prefix)]
		return next == ' ' || next == '\t'
	}
	return false
}

// compilePattern translates a wildcard pattern to an anchored regexp.
// * matches non-whitespace characters (never crossing a space), ? matches a
// single non-whitespace character, [...] is kept as a character class. The
// match is anchored at the start of the command and must end on a token
// boundary.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`(?i)^`)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			b.WriteString(`[^\s]*`)
		case '?':
			b.WriteString(`[^\s]`)
		case '[':
			end := strings.IndexByte(pattern[i:], ']')
			if end <= 1 {
				// No closing bracket (or empty class): literal [.
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(pattern[i : i+end+1])
			i += end
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString(`(?:\s|$)`)
	return regexp.Compile(b.String())
}
