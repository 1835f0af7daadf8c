// Package vgbench is a CPU-only rasterizer benchmarking harness.
//
// # Overview
//
// vgbench measures how well 2D vector graphics rasterizers execute a fixed
// catalog of scenes, encoded in a small binary intermediate representation
// (see package ir). A rasterizer plugs in by implementing backend.Backend;
// the harness drives compatibility checks, warmup, timed measurement, and
// optional artifact/SSIM comparison, and reports the result through
// package report.
//
// # Quick Start
//
//	pol := vgbench.DefaultPolicy()
//	h := vgbench.NewHarness(pol, nil, nil)
//	result := h.Run(ctx, "scene-id", someScene, "backend-id", someBackend)
//
// # Architecture
//
//   - ir: binary scene format, decoder, immutable Scene model
//   - capability: backend capability sets and RequiredFeatures gating
//   - backend: the Backend contract and the process-wide catalog
//   - backend/softwaregg: a CPU reference backend built on x/image/vector
//   - backend/null: a no-op backend for harness-overhead measurement
//   - timing: monotonic wall clock and process CPU time
//   - stats: percentile and summary statistics
//   - artifact: PNG output and SSIM comparison against golden images
//   - report: JSON/CSV/summary output of a full run
//   - alloctrack: opt-in per-case allocation counting
//   - cmd/vgcpu-bench: the CLI front end
//
// # Non-goals
//
// vgbench does not render to a display, does not accelerate on a GPU, and
// does not predict real-world performance from its measurements. It compares
// backends against each other under a controlled, repeatable protocol.
package vgbench

// Version identifies the vgbench suite version, reported in RunReport and
// by "vgcpu-bench metadata".
const (
	Version         = "0.1.0"
	VersionMajor    = 0
	VersionMinor    = 1
	VersionPatch    = 0
	IRFormatVersion = "1.0"
)
