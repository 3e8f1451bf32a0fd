// Package version holds build metadata injected at link time.
package version

import "runtime/debug"

// Build metadata, overridden with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// develVersion is what the Go toolchain reports for non-tagged builds.
const develVersion = "(devel)"

// InitBinaryVersion fills Version and Commit from the embedded module build
// info when they were not set at link time (e.g. `go install`).
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != develVersion {
		Version = info.Main.Version
	}

	if Commit != "none" {
		return
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			Commit = setting.Value
		}
	}
}
