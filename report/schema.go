// Package report renders a vgbench.RunReport as JSON, CSV, or a
// human-readable summary table, matching the exact schemas original_source's
// reporting/json_writer.cpp, csv_writer.cpp, and summary_writer.cpp
// produce.
package report

import "github.com/vgcpu/vgbench"

// SchemaVersion is the stable version tag written into every JSON and CSV
// report this package produces. Bump only on a breaking field change.
const SchemaVersion = "0.1.0"

// jsonReport mirrors vgbench.RunReport but is ordered and tagged for the
// exact wire schema: SchemaVersion must serialize first.
type jsonReport struct {
	SchemaVersion string         `json:"schema_version"`
	RunMetadata   jsonRunMeta    `json:"run_metadata"`
	Cases         []jsonCaseResult `json:"cases"`
}

type jsonRunMeta struct {
	Timestamp    string          `json:"timestamp"`
	SuiteVersion string          `json:"suite_version"`
	GitCommit    string          `json:"git_commit"`
	Environment  jsonEnvironment `json:"environment"`
	Policy       jsonPolicy      `json:"policy"`
}

type jsonPolicy struct {
	WarmupIterations     int `json:"warmup_iterations"`
	MeasurementIterations int `json:"measurement_iterations"`
	Repetitions          int `json:"repetitions"`
	ThreadCount          int `json:"thread_count"`
}

type jsonEnvironment struct {
	OSName          string `json:"os_name"`
	OSVersion       string `json:"os_version"`
	Arch            string `json:"arch"`
	CPUModel        string `json:"cpu_model"`
	CPUCores        int    `json:"cpu_cores"`
	MemoryBytes     uint64 `json:"memory_bytes"`
	CompilerName    string `json:"compiler_name"`
	CompilerVersion string `json:"compiler_version"`
}

type jsonStats struct {
	WallP50NS  int64 `json:"wall_p50_ns"`
	WallP90NS  int64 `json:"wall_p90_ns"`
	CPUP50NS   int64 `json:"cpu_p50_ns"`
	CPUP90NS   int64 `json:"cpu_p90_ns"`
	SampleCount int  `json:"sample_count"`
}

type jsonCaseResult struct {
	BackendID string    `json:"backend_id"`
	SceneID   string    `json:"scene_id"`
	SceneHash string    `json:"scene_hash"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Decision  string    `json:"decision"`
	Reasons   []string  `json:"reasons,omitempty"`
	Stats     jsonStats `json:"stats"`
}

// decisionString renders a vgbench.Decision in the uppercase form the JSON
// and CSV schemas mandate.
func decisionString(d vgbench.Decision) string {
	switch d {
	case vgbench.DecisionExecute:
		return "EXECUTE"
	case vgbench.DecisionSkip:
		return "SKIP"
	case vgbench.DecisionFail:
		return "FAIL"
	case vgbench.DecisionFallback:
		return "FALLBACK"
	default:
		return "UNKNOWN"
	}
}

func toJSONReport(r vgbench.RunReport) jsonReport {
	out := jsonReport{
		SchemaVersion: SchemaVersion,
		RunMetadata: jsonRunMeta{
			Timestamp:    r.GeneratedAtRFC,
			SuiteVersion: r.SuiteVersion,
			GitCommit:    r.GitCommit,
			Environment: jsonEnvironment{
				OSName:          r.Environment.OS,
				Arch:            r.Environment.Arch,
				CPUModel:        r.Environment.CPUModel,
				CPUCores:        r.Environment.NumCPU,
				MemoryBytes:     r.Environment.TotalMemory,
				CompilerName:    "go",
				CompilerVersion: r.Environment.GoVersion,
			},
			Policy: jsonPolicy{
				WarmupIterations:      r.Policy.WarmupIterations,
				MeasurementIterations: r.Policy.MeasureIterations,
				Repetitions:           r.Policy.Repetitions,
				ThreadCount:           r.Policy.ThreadCount,
			},
		},
	}
	for _, c := range r.Cases {
		out.Cases = append(out.Cases, jsonCaseResult{
			BackendID: c.BackendName,
			SceneID:   c.SceneName,
			SceneHash: c.SceneHash,
			Width:     c.Width,
			Height:    c.Height,
			Decision:  decisionString(c.Decision),
			Reasons:   c.Reasons,
			Stats: jsonStats{
				WallP50NS:   int64(c.Timing.WallP50),
				WallP90NS:   int64(c.Timing.WallP90),
				CPUP50NS:    int64(c.Timing.CPUP50),
				CPUP90NS:    int64(c.Timing.CPUP90),
				SampleCount: c.Timing.Samples,
			},
		})
	}
	return out
}
