// SPDX-License-Identifier: MIT
package sysinfo_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/matbench/internal/sysinfo"
)

func TestCollect(t *testing.T) {
	info := sysinfo.Collect()
	assert.Equal(t, runtime.GOARCH, info.GOARCH)
	assert.Positive(t, info.NumCPU)
	assert.Positive(t, info.GOMAXPROCS)
	assert.Contains(t, info.String(), "cpus:")
	if runtime.GOARCH == "amd64" {
		assert.Contains(t, info.Features, "sse2")
	}
}
