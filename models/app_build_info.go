package models

import "fmt"

// BuildInfoUnknown replaces build metadata that was not injected at link time.
const BuildInfoUnknown = "N/A"

// AppBuildInfo is the version, date and commit a binary was built from.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo fills blank values with [BuildInfoUnknown].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// Short is the one-line form used by --version.
func (a AppBuildInfo) Short() string {
	return fmt.Sprintf("%s - build %.7s @ %s", a.Version, a.Commit, a.Date)
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}

func orUnknown(v string) string {
	if v == "" {
		return BuildInfoUnknown
	}
	return v
}
