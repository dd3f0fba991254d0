package config

import (
	"testing"
)

func TestParseSpecTwoEntries(t *testing.T) {
	m, err := ParseSpec("highs:/opt/a/libhighs.so,ipopt:/opt/b/libipopt.so")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %v", m)
	}
	if m["highs"] != "/opt/a/libhighs.so" || m["ipopt"] != "/opt/b/libipopt.so" {
		t.Fatalf("unexpected mapping: %v", m)
	}
}

func TestParseSpecFirstColonWins(t *testing.T) {
	// Windows-style paths carry a drive-letter colon.
	m, err := ParseSpec(`highs:C:\solvers\libhighs.dll`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m["highs"] != `C:\solvers\libhighs.dll` {
		t.Fatalf("path split at the wrong colon: %v", m)
	}
}

func TestParseSpecDuplicateLastWins(t *testing.T) {
	m, err := ParseSpec("highs:/opt/a.so,highs:/opt/b.so")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(m) != 1 || m["highs"] != "/opt/b.so" {
		t.Fatalf("expected last occurrence to win: %v", m)
	}
}

func TestParseSpecEmptyAndWhitespace(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		m, err := ParseSpec(raw)
		if err == nil {
			t.Fatalf("expected error for %q, got mapping %v", raw, m)
		}
		if !IsParseError(err) {
			t.Fatalf("expected parse error for %q, got %v", raw, err)
		}
		if m != nil {
			t.Fatalf("empty spec must not yield a mapping: %v", m)
		}
	}
}

func TestParseSpecSkipsStrayCommas(t *testing.T) {
	m, err := ParseSpec(",highs:/opt/a.so,,ipopt:/opt/b.so,")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %v", m)
	}
}

func TestParseSpecTrimsWhitespace(t *testing.T) {
	m, err := ParseSpec(" highs : /opt/a.so , ipopt:/opt/b.so")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m["highs"] != "/opt/a.so" {
		t.Fatalf("expected trimmed entries, got %v", m)
	}
}

func TestParseSpecMalformed(t *testing.T) {
	cases := []struct {
		raw   string
		index int
	}{
		{"highs", 0},                         // missing colon
		{"highs:/opt/a.so,ipopt", 1},         // missing colon, later entry
		{":/opt/a.so", 0},                    // empty name
		{"highs:", 0},                        // empty path
		{"bad name:/opt/a.so", 0},            // illegal character in name
		{"highs:/opt/a.so,so lver:/x.so", 1}, // illegal name, later entry
	}
	for _, tc := range cases {
		m, err := ParseSpec(tc.raw)
		if err == nil {
			t.Fatalf("expected error for %q, got %v", tc.raw, m)
		}
		if !IsParseError(err) {
			t.Fatalf("expected parse error for %q, got %v", tc.raw, err)
		}
		if got := ParseErrorIndex(err); got != tc.index {
			t.Fatalf("entry index for %q: expected %d, got %d", tc.raw, tc.index, got)
		}
		if m != nil {
			t.Fatalf("malformed spec must not yield a partial mapping: %v", m)
		}
	}
}
