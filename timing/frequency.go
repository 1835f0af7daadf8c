package timing

import (
	"sync"
	"time"
)

// calibration holds a one-shot estimate of the CPU-time clock's effective
// resolution, as returned by Resolution. The harness does not read it.
type calibration struct {
	resolution time.Duration
}

var (
	calOnce sync.Once
	cal     calibration
)

// Resolution returns the smallest observable nonzero delta of
// processCPUTime on this platform, measured once per process via a tight
// spin loop and cached thereafter (original_source's PAL timer calibrates
// identically, once, at first use).
func Resolution() time.Duration {
	calOnce.Do(func() {
		deadline := time.Now().Add(time.Second)
		start := processCPUTime()
		for time.Now().Before(deadline) {
			cur := processCPUTime()
			if cur != start {
				cal.resolution = cur - start
				return
			}
		}
		cal.resolution = time.Microsecond // conservative fallback for a spin that never advanced
	})
	return cal.resolution
}
