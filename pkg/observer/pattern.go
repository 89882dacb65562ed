package observer

import (
	"fmt"
	"path"
	"strings"
)

// Wildcards are the characters that make a registration name a pattern
// rather than an exact property name.
const Wildcards = `*?[]!`

// IsPattern reports whether name contains wildcard characters.
func IsPattern(name string) bool {
	return strings.ContainsAny(name, Wildcards)
}

// Match reports whether the glob pattern matches name. Patterns use
// path.Match syntax: '*' matches any run of characters, '?' matches one
// character, '[...]' matches a character class ('[^...]' negates), and
// '\' escapes the next character.
func Match(pattern, name string) bool {
	ok, err := path.Match(pattern, name)
	return err == nil && ok
}

// validatePattern rejects patterns path.Match would consider malformed,
// so bad registrations fail at Observe time instead of silently never
// matching.
func validatePattern(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
			if i >= len(pattern) {
				return fmt.Errorf("observer: pattern %q has a trailing escape", pattern)
			}
		case '[':
			j := i + 1
			if j < len(pattern) && pattern[j] == '^' {
				j++
			}
			closed := false
			first := j
			for ; j < len(pattern); j++ {
				if pattern[j] == '\\' {
					j++
					continue
				}
				if pattern[j] == ']' && j > first {
					closed = true
					break
				}
			}
			if !closed {
				return fmt.Errorf("observer: pattern %q has an unclosed character class", pattern)
			}
			i = j
		}
	}
	return nil
}
