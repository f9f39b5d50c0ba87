// Package version reports the build version of scrollprompt.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/scrollprompt/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/scrollprompt/internal/version.Commit=abc1234"
//
// Anything left empty is filled from the module build info.
var (
	Version = ""
	Commit  = ""
)

// Info is the resolved build identity
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Platform  string
}

// Get resolves the build identity
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, bi)
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

// fromBuildInfo fills empty fields from the module and VCS settings
func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	var revision, modified, vcsTime string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if info.Commit == "" && revision != "" {
		info.Commit = revision
		if len(info.Commit) > 7 {
			info.Commit = info.Commit[:7]
		}
		if modified == "true" {
			info.Commit += "-dirty"
		}
	}

	if info.Version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			info.Version = "dev-" + t.Format("20060102")
		}
	}
	return info
}

// String returns e.g. "v0.3.0 (commit: abc1234, go1.24.10 linux/amd64)"
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, %s %s)", i.Version, i.Commit, i.GoVersion, i.Platform)
}

// Full returns the full version string including commit
func Full() string {
	return Get().String()
}
