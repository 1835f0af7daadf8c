//go:build linux || darwin

package timing

import (
	"syscall"
	"time"
)

// processCPUTime reports user+system CPU time consumed by the process so
// far, via getrusage(RUSAGE_SELF), the portable POSIX equivalent of
// clock_gettime(CLOCK_PROCESS_CPUTIME_ID) used by original_source.
func processCPUTime() time.Duration {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	user := time.Duration(ru.Utime.Sec)*time.Second + time.Duration(ru.Utime.Usec)*time.Microsecond
	sys := time.Duration(ru.Stime.Sec)*time.Second + time.Duration(ru.Stime.Usec)*time.Microsecond
	return user + sys
}
