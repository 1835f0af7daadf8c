package vgbench

import (
	"context"
	"testing"

	"github.com/vgcpu/vgbench/backend"
	_ "github.com/vgcpu/vgbench/backend/null"
	"github.com/vgcpu/vgbench/ir"
)

func TestHarnessRunExecutesNullBackend(t *testing.T) {
	b, err := backend.New("null")
	if err != nil {
		t.Fatalf("backend.New: %v", err)
	}
	if err := b.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	pol := DefaultPolicy()
	pol.WarmupIterations = 1
	pol.MeasureIterations = 2
	h := NewHarness(pol, nil, nil)

	scene := ir.NewTestScene()
	res := h.Run(context.Background(), "test-scene", scene, "null", b)

	if res.Decision != DecisionExecute {
		t.Fatalf("Decision = %v, reasons=%v, want Execute", res.Decision, res.Reasons)
	}
	if res.Timing.Samples != 2 {
		t.Fatalf("Samples = %d, want 2", res.Timing.Samples)
	}
}

func TestHarnessRunSkipsOnDimensionMismatch(t *testing.T) {
	// A backend that only supports tiny surfaces should Skip a full-size
	// scene rather than attempting to render it.
	backend.Register("tiny-test", func() backend.Backend { return &tinyBackend{} })
	defer backend.Unregister("tiny-test")

	b, _ := backend.New("tiny-test")
	h := NewHarness(DefaultPolicy(), nil, nil)
	scene := ir.NewTestScene()
	res := h.Run(context.Background(), "test-scene", scene, "tiny-test", b)

	if res.Decision != DecisionSkip {
		t.Fatalf("Decision = %v, want Skip", res.Decision)
	}
	if len(res.Reasons) != 1 || res.Reasons[0] != "UNSUPPORTED_FEATURE:dimensions" {
		t.Fatalf("Reasons = %v, want [UNSUPPORTED_FEATURE:dimensions]", res.Reasons)
	}
}

type tinyBackend struct{}

func (tinyBackend) Info() backend.Info {
	return backend.Info{Name: "tiny"}
}
func (tinyBackend) Initialize(context.Context) error { return nil }
func (tinyBackend) Prepare(context.Context, *ir.Scene, backend.SurfaceConfig) (backend.PreparedHandle, error) {
	return nil, nil
}
func (tinyBackend) Render(backend.PreparedHandle, []byte) error { return nil }
func (tinyBackend) Shutdown(context.Context) error              { return nil }
