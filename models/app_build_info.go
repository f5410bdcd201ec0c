package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo is the build metadata stamped into the binary with linker
// flags. Missing values read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orUnknown(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orUnknown(a.commit) }

// String renders the metadata on one line, e.g. "1.4.0 (2026-03-10, 3f2a9c1)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
