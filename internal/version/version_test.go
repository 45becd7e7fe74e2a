package version

import (
	"strings"
	"testing"
)

func TestCurrentPrefersLinkerValues(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "v1.2.0", "abc1234", "2025-06-01"

	b := Current()
	if b.Version != "v1.2.0" || b.Commit != "abc1234" || b.Date != "2025-06-01" {
		t.Fatalf("Current() = %+v", b)
	}
	if b.Go == "" {
		t.Fatalf("Current().Go is empty")
	}

	info := Info()
	if !strings.HasPrefix(info, "v1.2.0 (commit abc1234, built 2025-06-01, ") {
		t.Fatalf("Info() = %q", info)
	}
}

func TestShortenTruncatesRevision(t *testing.T) {
	if got := shorten("0123456789abcdef"); got != "0123456789ab" {
		t.Fatalf("shorten() = %q", got)
	}
	if got := shorten("abc"); got != "abc" {
		t.Fatalf("shorten() = %q", got)
	}
}
