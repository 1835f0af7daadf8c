// Package softwaregg is the reference CPU backend: it interprets an
// ir.Scene's command stream directly and rasterizes fills and strokes via
// golang.org/x/image/vector, the same anti-aliased scan-conversion engine
// that backs golang.org/x/image/font. It is adapted from gogpu/gg, the
// CPU/GPU 2D graphics library this project's ambient stack and idioms are
// grounded on.
package softwaregg

import (
	"context"
	"fmt"

	"github.com/vgcpu/vgbench/backend"
	"github.com/vgcpu/vgbench/capability"
	"github.com/vgcpu/vgbench/ir"
)

func init() {
	backend.Register("softwaregg", func() backend.Backend { return New() })
}

// Backend is the softwaregg reference rasterizer.
type Backend struct{}

// New constructs a Backend.
func New() *Backend { return &Backend{} }

func (b *Backend) Info() backend.Info {
	return backend.Info{
		Name:    "softwaregg",
		Version: "1.0.0",
		Capabilities: capability.Set{
			MaxWidth:           8192,
			MaxHeight:          8192,
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
			SupportsClipping:   false,
			SupportsSourceOver: true,
			SupportsParallel:   true,
			MaxThreads:         64,
		},
	}
}

func (b *Backend) Initialize(ctx context.Context) error { return nil }

func (b *Backend) Shutdown(ctx context.Context) error { return nil }

// preparedScene is the PreparedHandle softwaregg hands back: the scene and
// resolved surface geometry, ready for repeated Render calls.
type preparedScene struct {
	scene       *ir.Scene
	width       int
	height      int
	stride      int
	threadCount int
}

func (b *Backend) Prepare(ctx context.Context, scene *ir.Scene, cfg backend.SurfaceConfig) (backend.PreparedHandle, error) {
	if cfg.Width != scene.Width() || cfg.Height != scene.Height() {
		return nil, fmt.Errorf("softwaregg: surface %dx%d does not match scene %dx%d", cfg.Width, cfg.Height, scene.Width(), scene.Height())
	}
	if cfg.Stride < cfg.Width*4 {
		return nil, fmt.Errorf("softwaregg: stride %d too small for width %d", cfg.Stride, cfg.Width)
	}
	threads := cfg.ThreadCount
	if threads < 1 {
		threads = 1
	}
	return &preparedScene{scene: scene, width: cfg.Width, height: cfg.Height, stride: cfg.Stride, threadCount: threads}, nil
}

func (b *Backend) Render(handle backend.PreparedHandle, buf []byte) error {
	p, ok := handle.(*preparedScene)
	if !ok {
		return fmt.Errorf("softwaregg: invalid handle type %T", handle)
	}
	need := p.stride * p.height
	if len(buf) < need {
		return fmt.Errorf("softwaregg: buffer too small: have %d, need %d", len(buf), need)
	}
	return renderBands(p.scene, buf, p.width, p.height, p.stride, p.threadCount)
}
