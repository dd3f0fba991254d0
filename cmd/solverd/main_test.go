package main

import (
	"os"
	"testing"
)

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"a,,c", []string{"a", "c"}},
		{"", nil},
	}
	for _, c := range cases {
		got := splitCSV(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func TestSpecOrigin(t *testing.T) {
	orig, had := os.LookupEnv("SOLVERD_PRELOAD_LIBS")
	t.Cleanup(func() {
		if had {
			_ = os.Setenv("SOLVERD_PRELOAD_LIBS", orig)
		} else {
			_ = os.Unsetenv("SOLVERD_PRELOAD_LIBS")
		}
	})

	_ = os.Unsetenv("SOLVERD_PRELOAD_LIBS")
	if got := specOrigin(true); got != "flags" {
		t.Fatalf("expected flags, got %q", got)
	}
	if got := specOrigin(false); got != "none" {
		t.Fatalf("expected none, got %q", got)
	}
	_ = os.Setenv("SOLVERD_PRELOAD_LIBS", "highs:/opt/a.so")
	if got := specOrigin(false); got != "env" {
		t.Fatalf("expected env, got %q", got)
	}
}
