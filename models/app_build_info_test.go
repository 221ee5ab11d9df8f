// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "2026-01-02", "abc123")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "v1.0.0 (commit abc123, built 2026-01-02)", info.String())
}

func TestAppBuildInfo_Unknown(t *testing.T) {
	for _, info := range []AppBuildInfo{NewAppBuildInfo("", "", ""), {}} {
		assert.Equal(t, "N/A", info.BuildVersion())
		assert.Equal(t, "N/A", info.BuildDate())
		assert.Equal(t, "N/A", info.BuildCommit())
	}
}
