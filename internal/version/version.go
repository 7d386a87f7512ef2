// Package version reports the build identity of the aoc binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time via ldflags
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the version string (commit-hash based, no semver).
// Without ldflags, the VCS stamp embedded by `go build` is used instead.
func String() string {
	commit, built, dirty := Commit, BuildTime, false
	if commit == "unknown" {
		if rev, t, modified, ok := vcsStamp(); ok {
			commit, dirty = rev, modified
			if built == "unknown" && t != "" {
				built = t
			}
		}
	}

	commit = shortCommit(commit)
	if dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("aoc dev (commit: %s, built: %s)", commit, built)
}

func vcsStamp() (revision, at string, modified, ok bool) {
	info, found := readBuildInfo()
	if !found {
		return "", "", false, false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return revision, at, modified, revision != ""
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
