// Package null provides the harness-overhead backend: a Backend that does
// the minimum possible work so the harness can measure its own fixed cost
// independent of any real rasterizer, ported from original_source's
// NullAdapter.
package null

import (
	"context"
	"fmt"

	"github.com/vgcpu/vgbench/backend"
	"github.com/vgcpu/vgbench/capability"
	"github.com/vgcpu/vgbench/ir"
)

func init() {
	backend.Register("null", func() backend.Backend { return &Backend{} })
}

// Backend validates its inputs and otherwise does nothing: Render touches
// only buf[0] (in Touch mode) or nothing at all, making it the floor
// against which every real backend's overhead is measured.
type Backend struct {
	// Touch, when true, writes a single byte per Render call so the
	// buffer is not provably dead-code-eliminated by an adversarial
	// compiler. Off by default to measure the true floor.
	Touch bool
}

type handle struct {
	width, height, stride int
}

func (b *Backend) Info() backend.Info {
	return backend.Info{
		Name:    "null",
		Version: "1.0.0",
		Capabilities: capability.Set{
			MaxWidth:           1 << 16,
			MaxHeight:          1 << 16,
			SupportsNonZero:    true,
			SupportsEvenOdd:    true,
			SupportsCapButt:    true,
			SupportsCapRound:   true,
			SupportsCapSquare:  true,
			SupportsJoinMiter:  true,
			SupportsJoinRound:  true,
			SupportsJoinBevel:  true,
			SupportsDashes:     true,
			SupportsLinear:     true,
			SupportsRadial:     true,
			SupportsClipping:   true,
			SupportsSourceOver: true,
			SupportsParallel:   true,
			MaxThreads:         1 << 16,
		},
	}
}

func (b *Backend) Initialize(ctx context.Context) error { return nil }

func (b *Backend) Prepare(ctx context.Context, scene *ir.Scene, cfg backend.SurfaceConfig) (backend.PreparedHandle, error) {
	if cfg.Stride < cfg.Width*4 {
		return nil, fmt.Errorf("null: stride %d too small for width %d", cfg.Stride, cfg.Width)
	}
	return &handle{width: cfg.Width, height: cfg.Height, stride: cfg.Stride}, nil
}

func (b *Backend) Render(h backend.PreparedHandle, buf []byte) error {
	hd := h.(*handle)
	need := hd.stride * hd.height
	if len(buf) < need {
		return fmt.Errorf("null: buffer too small: have %d, need %d", len(buf), need)
	}
	if b.Touch && need > 0 {
		buf[0] = buf[0]
	}
	return nil
}

func (b *Backend) Shutdown(ctx context.Context) error { return nil }
