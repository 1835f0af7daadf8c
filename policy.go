package vgbench

import "time"

// Policy configures a benchmark run: how many warmup and measured
// iterations to run per case, how many render threads to request, and
// whether to capture artifacts/allocation counts. Defaults mirror
// original_source's BenchmarkPolicy: warmup=3, measure=10, repetitions=1,
// thread_count=1.
type Policy struct {
	WarmupIterations  int
	MeasureIterations int
	Repetitions       int
	ThreadCount       int

	// CaseTimeout is carried with the policy for callers; Harness.Run does
	// not read it and never aborts a case on elapsed time.
	CaseTimeout time.Duration

	// CaptureArtifact, when true, asks the harness to write a PNG of the
	// last measured frame and (if a golden image is configured) compute
	// its SSIM score.
	CaptureArtifact bool

	// TrackAllocations, when true, runs extra Render calls after the
	// Measure phase under the harness's AllocTracker (alloctrack's
	// MemStats-delta counter) and records the per-call averages.
	TrackAllocations bool

	// FailFast stops the run at the first Fail case (Skip cases never
	// stop a run).
	FailFast bool
}

// DefaultPolicy returns the harness's default policy, matching
// original_source's BenchmarkPolicy defaults.
func DefaultPolicy() Policy {
	return Policy{
		WarmupIterations:  3,
		MeasureIterations: 10,
		Repetitions:       1,
		ThreadCount:       1,
	}
}
