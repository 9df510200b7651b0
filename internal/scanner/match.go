package scanner

import (
	"strings"

	"github.com/IGLOU-EU/go-wildcard"
)

// MatchName reports whether a base name matches a single category pattern.
// Patterns without wildcard metacharacters are exact-name comparisons;
// anything else goes through go-wildcard. Matching is always against the
// base name of an entry, never the full path.
func MatchName(name, pattern string, caseInsensitive bool) bool {
	if caseInsensitive {
		name = strings.ToLower(name)
		pattern = strings.ToLower(pattern)
	}
	if !strings.ContainsAny(pattern, "*?") {
		return name == pattern
	}
	return wildcard.Match(pattern, name)
}

// MatchAny reports whether a base name matches any of the given patterns.
func MatchAny(name string, patterns []string, caseInsensitive bool) bool {
	for _, p := range patterns {
		if MatchName(name, p, caseInsensitive) {
			return true
		}
	}
	return false
}
