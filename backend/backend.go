// Package backend defines the contract a rasterizer implements to
// participate in a vgcpu-bench run, and the process-wide catalog backends
// register themselves into.
package backend

import (
	"context"

	"github.com/vgcpu/vgbench/capability"
	"github.com/vgcpu/vgbench/ir"
)

// Info is static, allocation-free metadata a backend reports once.
type Info struct {
	Name         string
	Version      string
	Capabilities capability.Set
}

// SurfaceConfig describes the output buffer a Render call writes into.
type SurfaceConfig struct {
	Width, Height int
	Stride        int // bytes per row; must equal Width*4 for RGBA8
	ThreadCount   int
}

// Backend is the contract a rasterizer implements. Initialize/Prepare/
// Shutdown may allocate and may return an error. Render is the measured
// hot path: it must be allocation-free, idempotent (repeated calls with
// the same Scene and buffer produce the same bytes), and must write
// exactly Stride*Height bytes into buf, row-major, starting at buf[0].
//
// The harness never calls Render concurrently with itself for the same
// Backend value, but may call it many times in a row (the Measure phase)
// and interleave calls to different Backend values from different
// goroutines.
type Backend interface {
	Info() Info
	Initialize(ctx context.Context) error
	Prepare(ctx context.Context, scene *ir.Scene, cfg SurfaceConfig) (PreparedHandle, error)
	Render(handle PreparedHandle, buf []byte) error
	Shutdown(ctx context.Context) error
}

// PreparedHandle is an opaque, backend-owned token returned by Prepare and
// passed to every subsequent Render call for that scene/config pair. It
// lets a backend precompute whatever it needs (tessellation, state-stack
// replay up to the first draw, etc.) once, outside the measured loop.
type PreparedHandle interface{}

// Factory constructs a fresh Backend instance. Factories are registered
// under a name in the process-wide Catalog; the harness asks for a new
// instance per run so backends never leak state across runs.
type Factory func() Backend
