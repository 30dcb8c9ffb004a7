// File: version.go
// Title: Build Version Information
// Description: Central version information for strkit. Commit and build
//              date are injected at link time with -ldflags "-X ...".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package version

import (
	"fmt"
	"runtime"
)

// Version is the library and CLI version.
const Version = "0.1.0"

// Set by the linker.
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one-line summary such as "strkit v0.1.0 (development)".
func (i Info) String() string {
	return fmt.Sprintf("strkit v%s (%s)", i.Version, i.GitCommit)
}
