package guard

import "github.com/bmatcuk/doublestar/v4"

// GlobMatch matches a value against a glob pattern. The whole value
// must match the whole pattern; matching is case-sensitive.
//
// Supported syntax: '*' (any run of characters, including empty),
// '?' (exactly one character), and '[...]'/'[!...]' character classes.
// An empty pattern matches nothing, including the empty value.
func GlobMatch(pattern, value string) bool {
	if pattern == "" {
		return false
	}
	if pattern == "*" {
		return true
	}
	matched, err := doublestar.Match(pattern, value)
	if err != nil {
		// Malformed pattern (e.g. unterminated class): fall back to
		// literal comparison rather than failing the evaluation.
		return pattern == value
	}
	return matched
}

// listMatches returns true if patterns is nil (no constraint) or at
// least one pattern matches value.
func listMatches(patterns []string, value string) bool {
	if patterns == nil {
		return true
	}
	for _, p := range patterns {
		if GlobMatch(p, value) {
			return true
		}
	}
	return false
}
