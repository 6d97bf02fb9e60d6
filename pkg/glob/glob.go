package glob

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Match reports whether path matches the given pattern. A single star
// matches any run of characters up to the next path separator; a double
// star crosses separators. Invalid patterns never match.
func Match(pattern, path string) bool {
	ok, err := doublestar.Match(pattern, path)
	if err != nil {
		// doublestar.Match returns only one possible error, and only if
		// the pattern is not valid.
		return false
	}
	return ok
}

// MatchAny reports whether path matches at least one of the patterns.
func MatchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if Match(pattern, path) {
			return true
		}
	}
	return false
}

// Filter reports whether path survives the include/exclude composition:
// the path must match at least one include pattern and no exclude
// pattern. Excludes dominate.
func Filter(includes, excludes []string, path string) bool {
	if !MatchAny(includes, path) {
		return false
	}
	for _, exclude := range excludes {
		if Match(exclude, path) {
			return false
		}
	}
	return true
}

// Validate checks a pattern at configuration load time so that Match
// never sees a malformed glob.
func Validate(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return nil
}
