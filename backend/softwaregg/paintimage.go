package softwaregg

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/vgcpu/vgbench/ir"
)

// paintImage adapts an ir.Paint into an image.Image sampled per pixel, so
// golang.org/x/image/vector's Rasterizer.Draw can fill solid colors and
// gradients through the same code path: Draw(dst, bounds, paintImage, pt).
type paintImage struct {
	paint  ir.Paint
	bounds image.Rectangle
}

func newPaintImage(p ir.Paint, bounds image.Rectangle) *paintImage {
	if len(p.Stops) > 1 {
		// Scenes are not required to declare stops pre-sorted; sort a
		// private copy rather than mutating the Scene's owned slice.
		sorted := make([]ir.GradientStop, len(p.Stops))
		copy(sorted, p.Stops)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
		p.Stops = sorted
	}
	return &paintImage{paint: p, bounds: bounds}
}

func (p *paintImage) ColorModel() color.Model { return color.RGBAModel }
func (p *paintImage) Bounds() image.Rectangle { return p.bounds }

func (p *paintImage) At(x, y int) color.Color {
	switch p.paint.Type {
	case ir.PaintSolid:
		return toNRGBA(p.paint.Color)
	case ir.PaintLinear:
		t := linearT(p.paint, float32(x)+0.5, float32(y)+0.5)
		return sampleStops(p.paint.Stops, t)
	case ir.PaintRadial:
		t := radialT(p.paint, float32(x)+0.5, float32(y)+0.5)
		return sampleStops(p.paint.Stops, t)
	default:
		return color.RGBA{}
	}
}

func toNRGBA(c ir.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// linearT projects (x, y) onto the Start->End axis and returns the
// clamped [0, 1] parametric position.
func linearT(p ir.Paint, x, y float32) float32 {
	dx, dy := p.End.X-p.Start.X, p.End.Y-p.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	t := ((x-p.Start.X)*dx + (y-p.Start.Y)*dy) / lenSq
	return clamp01(t)
}

// radialT returns the clamped [0, 1] distance from the paint's center,
// normalized by its radius.
func radialT(p ir.Paint, x, y float32) float32 {
	if p.Radius == 0 {
		return 0
	}
	dx, dy := x-p.Start.X, y-p.Start.Y
	dist := sqrt32(dx*dx + dy*dy)
	return clamp01(dist / p.Radius)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func sqrt32(v float32) float32 {
	// math.Sqrt on the float64 promotion is exact enough for gradient
	// sampling.
	if v <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(v)))
}

// sampleStops linearly interpolates a color between the two stops
// bracketing t. Stops must be sorted by Offset ascending; newPaintImage
// establishes that invariant on its private copy, as the scene format does
// not require scenes to declare pre-sorted stops.
func sampleStops(stops []ir.GradientStop, t float32) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{}
	}
	if len(stops) == 1 || t <= stops[0].Offset {
		return toNRGBA(stops[0].Color)
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return toNRGBA(last.Color)
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if t >= a.Offset && t <= b.Offset {
			span := b.Offset - a.Offset
			if span == 0 {
				return toNRGBA(a.Color)
			}
			frac := (t - a.Offset) / span
			return lerpColor(a.Color, b.Color, frac)
		}
	}
	return toNRGBA(last.Color)
}

func lerpColor(a, b ir.Color, t float32) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
