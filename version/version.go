// Package version records build metadata, injected at build time via
// -ldflags.
package version

import "runtime"

var (
	// GitRelease is the release tag or "dev" for local builds.
	GitRelease = "dev"

	// GitCommit is the commit hash of the build.
	GitCommit = ""

	// GitCommitDate is the commit date of the build.
	GitCommitDate = ""

	// GoInfo is the Go runtime version used for the build.
	GoInfo = runtime.Version()
)
