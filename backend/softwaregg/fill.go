package softwaregg

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/vgcpu/vgbench/ir"
)

// fillPath rasterizes path (already transformed into device space and
// shifted so that y=0 corresponds to originY) into dst using paint as the
// fill source, honoring rule. dst's height determines the rasterizer's
// working height; callers pass a full-width, band-height destination when
// rendering a horizontal row band in parallel.
func fillPath(dst draw.Image, width, height int, path ir.Path, originY float32, paint ir.Paint, rule ir.FillRule) {
	if len(path.Verbs) == 0 {
		return
	}
	switch rule {
	case ir.FillRuleEvenOdd:
		fillPathEvenOdd(dst, width, height, path, originY, paint)
	default:
		fillPathNonZero(dst, width, height, path, originY, paint)
	}
}

// fillPathNonZero rasterizes path with non-zero winding, the rule
// golang.org/x/image/vector.Rasterizer implements natively.
func fillPathNonZero(dst draw.Image, width, height int, path ir.Path, originY float32, paint ir.Paint) {
	z := vector.NewRasterizer(width, height)
	walkPath(z, path, originY)

	bounds := image.Rect(0, 0, width, height)
	src := newPaintImage(paint, bounds)
	z.Draw(dst, bounds, src, image.Point{})
}

// fillPathEvenOdd approximates even-odd winding by rasterizing each
// subpath (split at MoveTo boundaries) independently into its own alpha
// coverage mask, combining the masks pairwise via the Porter-Duff Xor
// formula (combined = a + b - 2ab), and compositing paint through the
// combined mask. golang.org/x/image/vector.Rasterizer only implements
// non-zero winding, so this is the closest approximation reachable
// without a scanline engine of our own: it correctly toggles fill
// between subpaths that overlap each other, but like any coverage-based
// approximation it does not resolve self-intersection within a single
// subpath the way an exact even-odd scanline fill would.
func fillPathEvenOdd(dst draw.Image, width, height int, path ir.Path, originY float32, paint ir.Paint) {
	subpaths := splitSubpaths(path)
	if len(subpaths) == 0 {
		return
	}

	combined := image.NewAlpha(image.Rect(0, 0, width, height))
	for _, sp := range subpaths {
		mask := rasterizeAlpha(width, height, sp, originY)
		xorAlphaInto(combined, mask)
	}

	bounds := image.Rect(0, 0, width, height)
	src := newPaintImage(paint, bounds)
	draw.DrawMask(dst, bounds, src, image.Point{}, combined, image.Point{}, draw.Over)
}

// rasterizeAlpha fills path with non-zero winding into a fresh alpha
// coverage mask, used as one term of the even-odd XOR combination.
func rasterizeAlpha(width, height int, path ir.Path, originY float32) *image.Alpha {
	z := vector.NewRasterizer(width, height)
	walkPath(z, path, originY)

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	bounds := mask.Bounds()
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// xorAlphaInto combines add's coverage into dst via the Porter-Duff Xor
// formula on [0, 1] alpha: combined = a + b - 2ab.
func xorAlphaInto(dst, add *image.Alpha) {
	for i := range dst.Pix {
		a := float64(dst.Pix[i]) / 255
		b := float64(add.Pix[i]) / 255
		c := a + b - 2*a*b
		dst.Pix[i] = uint8(c*255 + 0.5)
	}
}

// splitSubpaths breaks path into independent subpaths at each MoveTo,
// since even-odd toggling is defined across subpath boundaries.
func splitSubpaths(path ir.Path) []ir.Path {
	var out []ir.Path
	var curVerbs []ir.PathVerb
	var curPoints []ir.Point
	pi := 0
	flush := func() {
		if len(curVerbs) > 0 {
			out = append(out, ir.Path{Verbs: curVerbs, Points: curPoints})
		}
		curVerbs, curPoints = nil, nil
	}
	for _, v := range path.Verbs {
		if v == ir.VerbMoveTo && len(curVerbs) > 0 {
			flush()
		}
		n := v.PointCount()
		curVerbs = append(curVerbs, v)
		curPoints = append(curPoints, path.Points[pi:pi+n]...)
		pi += n
	}
	flush()
	return out
}

// walkPath replays path's verbs into z, a vector.Rasterizer or any type
// exposing the same MoveTo/LineTo/QuadTo/CubeTo/ClosePath surface,
// shifting every y coordinate by -originY.
func walkPath(z *vector.Rasterizer, path ir.Path, originY float32) {
	pi := 0
	for _, v := range path.Verbs {
		switch v {
		case ir.VerbMoveTo:
			p := path.Points[pi]
			z.MoveTo(p.X, p.Y-originY)
			pi++
		case ir.VerbLineTo:
			p := path.Points[pi]
			z.LineTo(p.X, p.Y-originY)
			pi++
		case ir.VerbQuadTo:
			c, p := path.Points[pi], path.Points[pi+1]
			z.QuadTo(c.X, c.Y-originY, p.X, p.Y-originY)
			pi += 2
		case ir.VerbCubicTo:
			c1, c2, p := path.Points[pi], path.Points[pi+1], path.Points[pi+2]
			z.CubeTo(c1.X, c1.Y-originY, c2.X, c2.Y-originY, p.X, p.Y-originY)
			pi += 3
		case ir.VerbClose:
			z.ClosePath()
		}
	}
}
