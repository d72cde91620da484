// Package globs implements the engine's glob mini-language, shared by
// impact targets and pattern-discovery area scoping.
//
// The language is deliberately small: `*` matches any sequence of
// characters, including path separators, so `src/main/database/*` covers
// everything under that prefix at any depth. All other characters match
// literally and matching is case-sensitive.
package globs

import (
	"regexp"
	"strings"
)

// Matcher reports whether a path matches a compiled pattern.
type Matcher func(path string) bool

// IsPattern reports whether s contains a wildcard. Names without wildcards
// are treated as literal paths by callers.
func IsPattern(s string) bool {
	return strings.Contains(s, "*")
}

// Compile translates a glob pattern into a Matcher. The pattern is anchored
// at both ends; a bare `*` therefore matches every path.
func Compile(pattern string) Matcher {
	var b strings.Builder
	b.WriteString("^")
	for i, part := range strings.Split(pattern, "*") {
		if i > 0 {
			b.WriteString(".*")
		}
		b.WriteString(regexp.QuoteMeta(part))
	}
	b.WriteString("$")

	re := regexp.MustCompile(b.String())
	return func(path string) bool {
		return re.MatchString(path)
	}
}
