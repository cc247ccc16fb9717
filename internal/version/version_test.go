package version

import (
	"strings"
	"testing"
)

func TestStringIncludesOptionalMetadata(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = origCommit, origDate }()

	GitCommit, BuildDate = "", ""
	if got := String(); !strings.HasPrefix(got, "comet ") {
		t.Fatalf("String() = %q, want comet prefix", got)
	}

	GitCommit = "abc1234"
	BuildDate = "2026-08-31T00:00:00Z"
	got := String()
	if !strings.Contains(got, "abc1234") || !strings.Contains(got, "2026-08-31") {
		t.Fatalf("String() = %q, missing metadata", got)
	}
}
