package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Preload spec grammar: a comma-separated list of name:path pairs, e.g.
//
//	highs:/opt/highs/lib/libhighs.so,ipopt:/opt/coin/lib/libipopt.so
//
// Only the FIRST colon of an entry separates name from path, so paths that
// contain colons (windows drive letters) survive intact.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// parseError identifies the malformed entry by its 0-based position.
type parseError struct {
	index int
	entry string
	why   string
}

func (e parseError) Error() string {
	return fmt.Sprintf("preload spec entry %d (%q): %s", e.index, e.entry, e.why)
}

// IsParseError reports whether err came from ParseSpec.
func IsParseError(err error) bool {
	_, ok := err.(parseError)
	return ok
}

// ParseErrorIndex returns the 0-based entry index for a ParseSpec error,
// or -1 when err is of another kind.
func ParseErrorIndex(err error) int {
	if pe, ok := err.(parseError); ok {
		return pe.index
	}
	return -1
}

// ParseSpec decodes a preload spec string into a name→path mapping.
//
// Entries that are empty after trimming (stray commas) are skipped. A
// duplicated name keeps the last occurrence; applying the mapping to the
// registry reports a conflict if the paths differ, so nothing is silently
// overwritten at load time. Any malformed entry aborts the whole parse: a
// partially applied configuration is worse than none.
//
// An empty or whitespace-only spec is malformed. Callers that treat an unset
// configuration value as a no-op must check for emptiness before parsing.
func ParseSpec(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, parseError{index: 0, entry: raw, why: "empty spec"}
	}
	out := make(map[string]string)
	for i, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, path, found := strings.Cut(entry, ":")
		if !found {
			return nil, parseError{index: i, entry: entry, why: "expected name:path"}
		}
		name = strings.TrimSpace(name)
		path = strings.TrimSpace(path)
		if name == "" {
			return nil, parseError{index: i, entry: entry, why: "empty solver name"}
		}
		if !nameRe.MatchString(name) {
			return nil, parseError{index: i, entry: entry, why: "invalid solver name"}
		}
		if path == "" {
			return nil, parseError{index: i, entry: entry, why: "empty library path"}
		}
		out[name] = path
	}
	return out, nil
}
