package null

import (
	"context"
	"testing"

	"github.com/vgcpu/vgbench/backend"
	"github.com/vgcpu/vgbench/ir"
)

func TestNullBackendRegistered(t *testing.T) {
	if !backend.IsRegistered("null") {
		t.Fatal("expected \"null\" to self-register")
	}
}

func TestNullBackendRenderZeroAlloc(t *testing.T) {
	b := &Backend{}
	ctx := context.Background()
	if err := b.Initialize(ctx); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	scene := ir.NewTestScene()
	cfg := backend.SurfaceConfig{Width: 800, Height: 600, Stride: 800 * 4}
	h, err := b.Prepare(ctx, scene, cfg)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	buf := make([]byte, cfg.Stride*cfg.Height)

	allocs := testing.AllocsPerRun(100, func() {
		if err := b.Render(h, buf); err != nil {
			t.Fatalf("Render: %v", err)
		}
	})
	if allocs != 0 {
		t.Fatalf("Render allocated %.1f times per call, want 0", allocs)
	}
}

func TestNullBackendRejectsUndersizedBuffer(t *testing.T) {
	b := &Backend{}
	ctx := context.Background()
	scene := ir.NewTestScene()
	cfg := backend.SurfaceConfig{Width: 800, Height: 600, Stride: 800 * 4}
	h, err := b.Prepare(ctx, scene, cfg)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if err := b.Render(h, make([]byte, 10)); err == nil {
		t.Fatal("expected error for undersized buffer")
	}
}
