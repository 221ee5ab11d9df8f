// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// unknownBuildValue replaces build metadata that was not injected.
const unknownBuildValue = "N/A"

// AppBuildInfo identifies the vault binary. Values are injected with
// -ldflags "-X main.buildVersion=..." at release time; local builds show
// "N/A" instead.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo builds [AppBuildInfo], substituting "N/A" for empty values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }

func (a AppBuildInfo) BuildDate() string { return orUnknown(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orUnknown(a.commit) }

// String returns a one-line summary, e.g. "v1.0.0 (commit abc123, built 2026-01-02)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", a.BuildVersion(), a.BuildCommit(), a.BuildDate())
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
