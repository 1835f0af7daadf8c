package main

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vgcpu/vgbench"
	"github.com/vgcpu/vgbench/alloctrack"
	"github.com/vgcpu/vgbench/artifact"
	"github.com/vgcpu/vgbench/backend"
	"github.com/vgcpu/vgbench/environment"
	"github.com/vgcpu/vgbench/report"
	"github.com/vgcpu/vgbench/scenecatalog"
)

type runFlags struct {
	backends    string
	scenes      string
	manifest    string
	assetsDir   string
	warmup      int
	measure     int
	threads     int
	jsonPath    string
	csvPath     string
	artifactDir string
	goldenDir   string
	failFast    bool
	trackAllocs bool
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run benchmark cases across backends and scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.backends, "backends", "", "comma-separated backend names (default: all registered)")
	f.StringVar(&flags.scenes, "scenes", "", "comma-separated scene IDs (default: all in manifest)")
	f.StringVar(&flags.manifest, "manifest", "", "scene manifest JSON path (required)")
	f.StringVar(&flags.assetsDir, "assets-dir", ".", "directory .irbin paths in the manifest are relative to")
	f.IntVar(&flags.warmup, "warmup", 3, "warmup iterations per case")
	f.IntVar(&flags.measure, "measure", 10, "measured iterations per case")
	f.IntVar(&flags.threads, "threads", 1, "render thread count requested per case")
	f.StringVar(&flags.jsonPath, "json", "", "write a JSON report to this path")
	f.StringVar(&flags.csvPath, "csv", "", "write a CSV report to this path")
	f.StringVar(&flags.artifactDir, "artifact-dir", "", "write a PNG per case to this directory")
	f.StringVar(&flags.goldenDir, "golden-dir", "", "compare each case's render against a golden PNG here via SSIM")
	f.BoolVar(&flags.failFast, "fail-fast", false, "stop the run at the first Fail case")
	f.BoolVar(&flags.trackAllocs, "track-allocs", false, "measure allocations per Render call")

	return cmd
}

func runRun(cmd *cobra.Command, flags *runFlags) error {
	if flags.manifest == "" {
		return fmt.Errorf("--manifest is required")
	}
	cat, err := scenecatalog.LoadManifest(flags.manifest, flags.assetsDir)
	if err != nil {
		return err
	}

	backendNames := splitOrAll(flags.backends, backend.Available())
	sceneIDs := splitOrAll(flags.scenes, cat.SceneIDs())
	if len(backendNames) == 0 {
		return fmt.Errorf("no backends registered or selected")
	}
	if len(sceneIDs) == 0 {
		return fmt.Errorf("no scenes in manifest or selected")
	}

	policy := vgbench.Policy{
		WarmupIterations:  flags.warmup,
		MeasureIterations: flags.measure,
		Repetitions:       1,
		ThreadCount:       flags.threads,
		CaptureArtifact:   flags.artifactDir != "" || flags.goldenDir != "",
		TrackAllocations:  flags.trackAllocs,
		FailFast:          flags.failFast,
	}

	var writer *artifact.Writer
	if policy.CaptureArtifact {
		writer = &artifact.Writer{OutputDir: flags.artifactDir, GoldenDir: flags.goldenDir}
	}
	var tracker *alloctrack.Tracker
	if policy.TrackAllocations {
		tracker = &alloctrack.Tracker{Rounds: 50}
	}

	h := vgbench.NewHarness(policy, writer, tracker)
	ctx := context.Background()

	rep := vgbench.RunReport{
		SuiteVersion: vgbench.Version,
		IRFormatVer:  vgbench.IRFormatVersion,
		GitCommit:    gitCommit(),
		Policy:       policy,
		Environment:  environment.Collect(),
	}

runLoop:
	for _, backendName := range backendNames {
		b, err := backend.New(backendName)
		if err != nil {
			return err
		}
		if err := b.Initialize(ctx); err != nil {
			return fmt.Errorf("initialize backend %q: %w", backendName, err)
		}

		for _, sceneID := range sceneIDs {
			scene, err := cat.Load(sceneID)
			if err != nil {
				return err
			}
			res := h.Run(ctx, sceneID, scene, backendName, b)
			rep.Cases = append(rep.Cases, res)
			if flags.failFast && res.Decision == vgbench.DecisionFail {
				_ = b.Shutdown(ctx)
				break runLoop
			}
		}
		if err := b.Shutdown(ctx); err != nil {
			vgbench.Logger().Warn("backend shutdown failed", "backend", backendName, "err", err)
		}
	}

	if flags.jsonPath != "" {
		if err := report.WriteJSONFile(flags.jsonPath, rep); err != nil {
			return err
		}
	}
	if flags.csvPath != "" {
		if err := report.WriteCSVFile(flags.csvPath, rep); err != nil {
			return err
		}
	}
	return report.WriteSummary(cmd.OutOrStdout(), rep)
}

// gitCommit reports the current HEAD commit hash, or "unknown" when this
// binary isn't running from within a git checkout (e.g. an installed
// release). Environment/build metadata collection is explicitly out of
// the core's scope; this is a best-effort convenience for the report.
func gitCommit() string {
	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	commit := strings.TrimSpace(string(out))
	if commit == "" {
		return "unknown"
	}
	return commit
}

func splitOrAll(csv string, all []string) []string {
	if strings.TrimSpace(csv) == "" {
		return all
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
