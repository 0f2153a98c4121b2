// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version reports which bqschema build is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X". Empty values are filled from the
// Go build info when the binary was built from a module or a VCS checkout.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// Build describes one bqschema binary.
type Build struct {
	Module    string // main module path
	Version   string
	Commit    string // short VCS revision
	Date      string // commit time, RFC3339
	Modified  bool   // built from a dirty checkout
	GoVersion string
}

var current = resolve(Version, Commit, Date, readBuildInfo())

func readBuildInfo() *debug.BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return info
}

// resolve merges ldflags values with the build info. ldflags win.
func resolve(version, commit, date string, info *debug.BuildInfo) Build {
	b := Build{
		Module:    "github.com/dacolabs/bqschema",
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}

	if info != nil {
		if info.Main.Path != "" {
			b.Module = info.Main.Path
		}
		if b.Version == "" && info.Main.Version != "(devel)" {
			b.Version = info.Main.Version
		}
		if info.GoVersion != "" {
			b.GoVersion = info.GoVersion
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if b.Commit == "" {
					b.Commit = s.Value
					if len(b.Commit) > 7 {
						b.Commit = b.Commit[:7]
					}
				}
			case "vcs.time":
				if b.Date == "" {
					b.Date = s.Value
				}
			case "vcs.modified":
				b.Modified = s.Value == "true"
			}
		}
	}

	if b.Version == "" {
		b.Version = "dev"
	}
	if b.Commit == "" {
		b.Commit = "none"
	}
	if b.Date == "" {
		b.Date = "unknown"
	}
	return b
}

// Current returns the running binary's build description.
func Current() Build {
	return current
}

// String formats b as a single line.
func (b Build) String() string {
	commit := b.Commit
	if b.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("bqschema version %s (%s, commit: %s, built: %s, go: %s)",
		b.Version, b.Module, commit, b.Date, b.GoVersion)
}

// Info returns formatted version information.
func Info() string {
	return current.String()
}

// Short returns just the version string.
func Short() string {
	return current.Version
}
