//go:build windows

package timing

import (
	"time"

	"golang.org/x/sys/windows"
)

// processCPUTime reports user+kernel CPU time via GetProcessTimes, the
// Windows analogue of original_source's pal/timer_win32.cpp.
func processCPUTime() time.Duration {
	h := windows.CurrentProcess()
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(h, &creation, &exit, &kernel, &user); err != nil {
		return 0
	}
	return filetimeToDuration(kernel) + filetimeToDuration(user)
}

// filetimeToDuration converts a FILETIME (100ns ticks) to a time.Duration.
func filetimeToDuration(ft windows.Filetime) time.Duration {
	ticks := int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)
	return time.Duration(ticks) * 100 * time.Nanosecond
}
