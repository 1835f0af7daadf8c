package softwaregg

import (
	"image"
	"image/draw"
	"testing"

	"github.com/vgcpu/vgbench/ir"
)

// twoOverlappingRects builds a single path made of two same-direction
// 0..8,0..8 / 2..6,2..6 nested squares: non-zero winding fills the whole
// outer square (both subpaths wind the same way, so coverage never drops
// to zero), while even-odd punches the inner square out, leaving a
// frame/donut shape.
func twoOverlappingRects() ir.Path {
	return ir.Path{
		Verbs: []ir.PathVerb{
			ir.VerbMoveTo, ir.VerbLineTo, ir.VerbLineTo, ir.VerbLineTo, ir.VerbClose,
			ir.VerbMoveTo, ir.VerbLineTo, ir.VerbLineTo, ir.VerbLineTo, ir.VerbClose,
		},
		Points: []ir.Point{
			{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8},
			{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 6}, {X: 2, Y: 6},
		},
	}
}

func renderFill(t *testing.T, rule ir.FillRule) *image.RGBA {
	t.Helper()
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	paint := ir.Paint{Type: ir.PaintSolid, Color: ir.Color{R: 255, A: 255}}
	fillPath(dst, 8, 8, twoOverlappingRects(), 0, paint, rule)
	return dst
}

func alphaAt(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).A
}

func TestFillPathNonZeroFillsInterior(t *testing.T) {
	img := renderFill(t, ir.FillRuleNonZero)
	// Non-zero winding: both subpaths wind the same direction, so the
	// inner square's coverage never cancels out. Center stays filled.
	if a := alphaAt(img, 4, 4); a == 0 {
		t.Fatalf("center alpha = %d, want filled under non-zero winding", a)
	}
}

func TestFillPathEvenOddPunchesHole(t *testing.T) {
	img := renderFill(t, ir.FillRuleEvenOdd)
	// Even-odd: overlap between the two subpaths toggles coverage off,
	// so the center of the inner square should be unfilled...
	if a := alphaAt(img, 4, 4); a != 0 {
		t.Fatalf("center alpha = %d, want 0 under even-odd winding", a)
	}
	// ...while the frame between the two squares stays filled.
	if a := alphaAt(img, 1, 1); a == 0 {
		t.Fatalf("frame alpha = %d, want filled under even-odd winding", a)
	}
}

func TestSplitSubpathsCountsMoveTos(t *testing.T) {
	subs := splitSubpaths(twoOverlappingRects())
	if len(subs) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(subs))
	}
	for i, sp := range subs {
		if sp.Verbs[0] != ir.VerbMoveTo {
			t.Fatalf("subpath %d does not start with MoveTo", i)
		}
	}
}
