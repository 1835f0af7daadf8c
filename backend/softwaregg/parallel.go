package softwaregg

import (
	"image"
	"sync"

	"github.com/vgcpu/vgbench/ir"
)

// renderBands splits [0, height) into up to threadCount horizontal row
// bands and renders each into its own local buffer concurrently, then
// copies every band's pixels into buf at the right offset. Every band
// replays the full command stream — cheap relative to fill cost — because
// every opcode's effect on a given row only depends on state accumulated
// earlier in the same stream, never on another row's output, so bands are
// independent. Modeled on gogpu/gg's internal/parallel worker-pool split.
func renderBands(scene *ir.Scene, buf []byte, width, height, stride, threadCount int) error {
	if threadCount < 1 {
		threadCount = 1
	}
	if threadCount > height {
		threadCount = height
	}
	if threadCount <= 1 {
		full := &image.RGBA{Pix: buf[:stride*height], Stride: stride, Rect: image.Rect(0, 0, width, height)}
		return replay(scene, full, width, height, 0)
	}

	bandHeight := (height + threadCount - 1) / threadCount
	var wg sync.WaitGroup
	errs := make([]error, threadCount)

	for t := 0; t < threadCount; t++ {
		start := t * bandHeight
		end := start + bandHeight
		if end > height {
			end = height
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(t, start, end int) {
			defer wg.Done()
			h := end - start
			local := &image.RGBA{Pix: make([]byte, stride*h), Stride: stride, Rect: image.Rect(0, 0, width, h)}
			if err := replay(scene, local, width, h, float32(start)); err != nil {
				errs[t] = err
				return
			}
			copy(buf[start*stride:end*stride], local.Pix)
		}(t, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
