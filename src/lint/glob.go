package lint

import (
	"path/filepath"
	"strings"
)

// MatchGlob matches a glob pattern supporting ** and {a,b} alternatives
// against a forward-slash path.
func MatchGlob(pattern, path string) bool {
	for _, p := range expandBraces(pattern) {
		if matchGlob(p, path) {
			return true
		}
	}
	return false
}

// matchGlob extends filepath.Match with support for "**" (zero or more path
// segments). Patterns without "**" delegate directly to filepath.Match.
func matchGlob(pattern, path string) bool {
	if !strings.Contains(pattern, "**") {
		matched, _ := filepath.Match(pattern, path)
		return matched
	}

	// Split at the first "**".
	idx := strings.Index(pattern, "**")
	prefix := strings.TrimRight(pattern[:idx], "/")
	suffix := strings.TrimLeft(pattern[idx+2:], "/")

	if prefix != "" {
		// The prefix consumes whole leading segments.
		n := strings.Count(prefix, "/") + 1
		parts := strings.SplitN(path, "/", n+1)
		if len(parts) < n {
			return false
		}
		if matched, _ := filepath.Match(prefix, strings.Join(parts[:n], "/")); !matched {
			return false
		}
		path = ""
		if len(parts) > n {
			path = parts[n]
		}
	}

	if suffix == "" {
		return true
	}

	// "tail" walks: "a/b/c", "b/c", "c".
	parts := strings.Split(path, "/")
	for i := 0; i <= len(parts); i++ {
		tail := strings.Join(parts[i:], "/")
		if matchGlob(suffix, tail) {
			return true
		}
	}

	return false
}

// expandBraces turns "**/*.{ts,tsx}" into ["**/*.ts", "**/*.tsx"].
// Nested groups expand recursively; an unbalanced brace is left literal.
func expandBraces(pattern string) []string {
	open := strings.IndexByte(pattern, '{')
	if open < 0 {
		return []string{pattern}
	}

	depth := 0
	closeIdx := -1
	var commas []int
	for i := open; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				closeIdx = i
			}
		case ',':
			if depth == 1 {
				commas = append(commas, i)
			}
		}
		if closeIdx >= 0 {
			break
		}
	}
	if closeIdx < 0 {
		return []string{pattern}
	}

	head, tail := pattern[:open], pattern[closeIdx+1:]
	var alts []string
	start := open + 1
	for _, c := range commas {
		alts = append(alts, pattern[start:c])
		start = c + 1
	}
	alts = append(alts, pattern[start:closeIdx])

	var out []string
	for _, alt := range alts {
		out = append(out, expandBraces(head+alt+tail)...)
	}
	return out
}

// normalizeSlashPath converts a path to forward slashes and strips leading "./".
func normalizeSlashPath(p string) string {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	return p
}

// matchesAny reports whether path, or any directory containing it, matches
// one of the patterns. Directory matches let "**/node_modules" exclude
// everything below it. Negated patterns are skipped.
func matchesAny(patterns []string, path string) bool {
	if len(patterns) == 0 {
		return false
	}
	candidates := []string{path}
	for dir := filepath.ToSlash(filepath.Dir(path)); dir != "." && dir != "/"; dir = filepath.ToSlash(filepath.Dir(dir)) {
		candidates = append(candidates, dir)
	}
	for _, pattern := range patterns {
		pattern = normalizeSlashPath(pattern)
		if strings.HasPrefix(pattern, "!") {
			continue
		}
		for _, c := range candidates {
			if MatchGlob(pattern, c) {
				return true
			}
		}
	}
	return false
}
