// Package environment provides a default, best-effort collector for
// vgbench.EnvironmentInfo. Population of this struct is explicitly the
// external collaborator's job (see spec.md's Non-goals); this package
// exists so cmd/vgcpu-bench does not have to hand-roll it.
package environment

import (
	"os"
	"runtime"

	"github.com/vgcpu/vgbench"
)

// Collect gathers what the Go runtime can tell us about the current
// process's host without any platform-specific syscalls beyond what the
// standard library already exposes.
func Collect() vgbench.EnvironmentInfo {
	host, _ := os.Hostname()
	return vgbench.EnvironmentInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
		Hostname:  host,
	}
}
