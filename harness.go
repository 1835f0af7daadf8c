package vgbench

import (
	"context"
	"fmt"
	"time"

	"github.com/vgcpu/vgbench/backend"
	"github.com/vgcpu/vgbench/capability"
	"github.com/vgcpu/vgbench/ir"
	"github.com/vgcpu/vgbench/stats"
	"github.com/vgcpu/vgbench/timing"
)

// Harness drives one backend through the CheckCompat -> Prepare -> Warmup
// -> Measure -> Artifact -> SSIM state machine for each scene it is given,
// producing a CaseResult per (backend, scene) pair. It mirrors
// original_source's harness.cpp RunCase state machine, translated to Go's
// (T, error) idiom in place of Status/Result<T>.
type Harness struct {
	policy    Policy
	artifacts ArtifactWriter
	allocs    AllocTracker
}

// ArtifactWriter is the optional collaborator that writes a rendered frame
// to disk and compares it against a golden image. A nil ArtifactWriter
// disables the Artifact/SSIM phases regardless of Policy.CaptureArtifact.
type ArtifactWriter interface {
	Write(sceneName, backendName string, width, height int, rgba []byte) (path string, err error)
	CompareGolden(sceneName, backendName string, width, height int, rgba []byte) (score float64, goldenPath string, passed bool, message string, ok bool)
}

// AllocTracker is the optional collaborator that measures allocations made
// by a single Render call. A nil AllocTracker disables the Alloc phase
// regardless of Policy.TrackAllocations.
type AllocTracker interface {
	Measure(fn func()) (allocs float64, bytes float64)
}

// NewHarness constructs a Harness. artifacts and allocs may be nil to
// disable those optional phases.
func NewHarness(policy Policy, artifacts ArtifactWriter, allocs AllocTracker) *Harness {
	return &Harness{policy: policy, artifacts: artifacts, allocs: allocs}
}

// Run executes one (backend, scene) case under this Harness's Policy.
func (h *Harness) Run(ctx context.Context, sceneName string, scene *ir.Scene, backendName string, b backend.Backend) CaseResult {
	res := CaseResult{
		BackendName: backendName,
		SceneName:   sceneName,
		SceneHash:   scene.Hash(),
		Width:       scene.Width(),
		Height:      scene.Height(),
	}

	req := capability.FromScene(scene, h.policy.ThreadCount)
	if reason, ok := capability.Check(req, b.Info().Capabilities); !ok {
		res.Decision = DecisionSkip
		res.Reasons = append(res.Reasons, reason)
		return res
	}

	cfg := backend.SurfaceConfig{
		Width:       scene.Width(),
		Height:      scene.Height(),
		Stride:      scene.Width() * 4,
		ThreadCount: h.policy.ThreadCount,
	}

	handle, err := b.Prepare(ctx, scene, cfg)
	if err != nil {
		res.Decision = DecisionFail
		res.Reasons = append(res.Reasons, fmt.Sprintf("PREPARE_FAILED:%v", err))
		return res
	}

	buf := make([]byte, cfg.Stride*cfg.Height)

	for i := 0; i < h.policy.WarmupIterations; i++ {
		if err := b.Render(handle, buf); err != nil {
			res.Decision = DecisionFail
			res.Reasons = append(res.Reasons, fmt.Sprintf("WARMUP_FAILED:%v", err))
			return res
		}
	}

	wallSamples := make([]time.Duration, 0, h.policy.MeasureIterations)
	cpuSamples := make([]time.Duration, 0, h.policy.MeasureIterations)
	for i := 0; i < h.policy.MeasureIterations; i++ {
		wall, cpu, err := timeOneRender(b, handle, buf)
		if err != nil {
			res.Decision = DecisionFail
			res.Reasons = append(res.Reasons, fmt.Sprintf("RENDER_FAILED:%v", err))
			return res
		}
		wallSamples = append(wallSamples, wall)
		cpuSamples = append(cpuSamples, cpu)
	}

	res.Decision = DecisionExecute
	res.Timing = timingFromSamples(wallSamples, cpuSamples)

	if h.policy.TrackAllocations && h.allocs != nil {
		allocs, bytes := h.allocs.Measure(func() { _ = b.Render(handle, buf) })
		res.Alloc = AllocResult{Enabled: true, AllocsPerCall: allocs, BytesPerCall: bytes}
	}

	if h.policy.CaptureArtifact && h.artifacts != nil {
		if path, err := h.artifacts.Write(sceneName, backendName, cfg.Width, cfg.Height, buf); err == nil {
			res.Artifact.Path = path
		} else {
			Logger().Warn("artifact write failed", "scene", sceneName, "backend", backendName, "err", err)
		}
		if score, golden, passed, message, ok := h.artifacts.CompareGolden(sceneName, backendName, cfg.Width, cfg.Height, buf); ok {
			res.Artifact.SSIMScore = score
			res.Artifact.HasGolden = true
			res.Artifact.GoldenPath = golden
			res.Artifact.SSIMPassed = passed
			res.Artifact.SSIMMessage = message
		} else {
			res.Artifact.SSIMMessage = message
		}
	}

	return res
}

func timeOneRender(b backend.Backend, handle backend.PreparedHandle, buf []byte) (wall, cpu time.Duration, err error) {
	start := timing.Now()
	err = b.Render(handle, buf)
	end := timing.Now()
	wall, cpu = timing.Elapsed(start, end)
	return wall, cpu, err
}

func timingFromSamples(wall, cpu []time.Duration) TimingStats {
	ws := stats.Compute(wall)
	cs := stats.Compute(cpu)
	return TimingStats{
		WallMin: ws.Min, WallP50: ws.P50, WallP90: ws.P90, WallP99: ws.P99, WallMax: ws.Max,
		WallMean: ws.Mean, WallStdDev: ws.StdDev,
		CPUMin: cs.Min, CPUP50: cs.P50, CPUP90: cs.P90, CPUP99: cs.P99, CPUMax: cs.Max,
		CPUMean: cs.Mean, CPUStdDev: cs.StdDev,
		Samples: len(wall),
	}
}
