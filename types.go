package vgbench

import "time"

// Decision is the outcome of running one (backend, scene) case.
type Decision int

const (
	// DecisionExecute means the case ran to completion and produced
	// timing data.
	DecisionExecute Decision = iota
	// DecisionSkip means the case was not run because the backend lacks
	// a required capability, or the run was configured to skip it.
	DecisionSkip
	// DecisionFail means the case attempted to run but Prepare, Warmup,
	// or Render returned an error.
	DecisionFail
	// DecisionFallback means the case ran against a substitute backend or
	// reduced feature path rather than being skipped outright.
	DecisionFallback
)

func (d Decision) String() string {
	switch d {
	case DecisionExecute:
		return "Execute"
	case DecisionSkip:
		return "Skip"
	case DecisionFail:
		return "Fail"
	case DecisionFallback:
		return "Fallback"
	default:
		return "Unknown"
	}
}

// TimingStats holds wall and CPU time percentiles for one case's Measure
// phase, in nanoseconds precision via time.Duration.
type TimingStats struct {
	WallMin, WallP50, WallP90, WallP99, WallMax time.Duration
	WallMean, WallStdDev                        time.Duration
	CPUMin, CPUP50, CPUP90, CPUP99, CPUMax      time.Duration
	CPUMean, CPUStdDev                          time.Duration
	Samples                                     int
}

// ArtifactResult holds the outcome of the optional artifact/SSIM phase.
// SSIMPassed and SSIMMessage distinguish the three outcomes a comparison
// can reach: no golden to compare against, a dimension mismatch that
// makes SSIM meaningless, and a computed score that fell short of the
// pass threshold.
type ArtifactResult struct {
	Path        string
	SSIMScore   float64
	HasGolden   bool
	GoldenPath  string
	SSIMPassed  bool
	SSIMMessage string
}

// AllocResult holds the outcome of the optional allocation-tracking phase.
type AllocResult struct {
	Enabled       bool
	AllocsPerCall float64
	BytesPerCall  float64
}

// CaseResult is the full outcome of running one (backend, scene) pair.
type CaseResult struct {
	BackendName string
	SceneName   string
	SceneHash   string
	Width       int
	Height      int
	Decision    Decision
	Reasons     []string
	Timing      TimingStats
	Artifact    ArtifactResult
	Alloc       AllocResult
}

// RunReport is the top-level output of a full run: the policy used, every
// case's result, and environment metadata supplied by the caller.
type RunReport struct {
	SuiteVersion   string
	IRFormatVer    string
	GitCommit      string
	Policy         Policy
	Environment    EnvironmentInfo
	Cases          []CaseResult
	GeneratedAtRFC string
}

// EnvironmentInfo describes the machine a run executed on. Population is
// the caller's responsibility (see package environment for a default
// collector); the core never fills this in on its own.
type EnvironmentInfo struct {
	OS           string
	Arch         string
	NumCPU       int
	GoVersion    string
	CPUModel     string
	TotalMemory  uint64
	Hostname     string
}
