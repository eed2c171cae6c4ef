// SPDX-License-Identifier: MIT

//go:build arm64

package sysinfo

import "golang.org/x/sys/cpu"

func cpuFeatures() []string {
	var fs []string
	add := func(ok bool, name string) {
		if ok {
			fs = append(fs, name)
		}
	}
	// ASIMD is part of ARMv8-A, but report what the kernel exposes.
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasFP, "fp")
	add(cpu.ARM64.HasSVE, "sve")
	add(cpu.ARM64.HasSVE2, "sve2")

	return fs
}
