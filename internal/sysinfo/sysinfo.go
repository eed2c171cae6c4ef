// SPDX-License-Identifier: MIT

// Package sysinfo describes the host a benchmark ran on.
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"
)

// Info is a snapshot of the runtime and the CPU features relevant to
// floating-point kernels.
type Info struct {
	GOOS       string
	GOARCH     string
	GoVersion  string
	NumCPU     int
	GOMAXPROCS int
	Features   []string
}

// Collect returns the current host description.
func Collect() Info {
	return Info{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   cpuFeatures(),
	}
}

// String renders one "key: value" line per field.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "os/arch:    %s/%s\n", i.GOOS, i.GOARCH)
	fmt.Fprintf(&sb, "go:         %s\n", i.GoVersion)
	fmt.Fprintf(&sb, "cpus:       %d (GOMAXPROCS %d)\n", i.NumCPU, i.GOMAXPROCS)
	features := "none detected"
	if len(i.Features) > 0 {
		features = strings.Join(i.Features, " ")
	}
	fmt.Fprintf(&sb, "features:   %s\n", features)

	return sb.String()
}
