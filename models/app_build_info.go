// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package models

// AppBuildInfo carries immutable build-time metadata embedded into the
// client binary via linker flags and shown in the TUI version overlay.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from linker-injected values.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string { return a.buildDate }

// BuildCommit returns the source-control commit hash of the build.
func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }
