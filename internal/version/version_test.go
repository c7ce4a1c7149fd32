package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origCommit, origTime := Commit, BuildTime
	t.Cleanup(func() { Commit, BuildTime = origCommit, origTime })

	Commit = "0123456789abcdef"
	BuildTime = "2026-01-02T03:04:05Z"

	got := String()
	if !strings.HasPrefix(got, "keeper dev") {
		t.Errorf("String() = %q, want keeper prefix", got)
	}
	if !strings.Contains(got, "commit: 0123456,") {
		t.Errorf("String() = %q, want short commit", got)
	}
	if !strings.Contains(got, BuildTime) {
		t.Errorf("String() = %q, want build time", got)
	}
}

func TestShortCommit_Short(t *testing.T) {
	orig := Commit
	t.Cleanup(func() { Commit = orig })

	Commit = "abc"
	if got := shortCommit(); got != "abc" {
		t.Errorf("shortCommit() = %q, want abc", got)
	}
}
