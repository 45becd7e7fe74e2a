package version

import (
	"fmt"
	"runtime/debug"
)

// Populated at build time via -ldflags. Unset values fall back to the
// module and VCS data embedded by the Go toolchain.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Current resolves build metadata, preferring ldflags over embedded build info.
func Current() Build {
	b := Build{Version: Version, Commit: Commit, Date: Date, Go: "unknown"}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	b.Go = info.GoVersion
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "none" && s.Value != "" {
				b.Commit = shorten(s.Value)
			}
		case "vcs.time":
			if b.Date == "unknown" && s.Value != "" {
				b.Date = s.Value
			}
		}
	}
	return b
}

// Info returns a human-friendly version string that surfaces build metadata.
func Info() string {
	b := Current()
	return fmt.Sprintf("%s (commit %s, built %s, %s)", b.Version, b.Commit, b.Date, b.Go)
}

func shorten(revision string) string {
	if len(revision) > 12 {
		return revision[:12]
	}
	return revision
}
