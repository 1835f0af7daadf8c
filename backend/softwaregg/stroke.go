package softwaregg

import (
	"github.com/vgcpu/vgbench/internal/stroke"
	"github.com/vgcpu/vgbench/ir"
)

// expandStroke converts a device-space path plus stroke width/cap/join and
// an optional dash pattern into a fill outline via internal/stroke, then
// repackages the result as an ir.Path so it can be handed straight to
// fillPath. dashes may be nil or empty for a solid stroke.
func expandStroke(path ir.Path, width float32, opts uint8, dashes []float32, dashOffset float32) ir.Path {
	elements := toStrokeElements(path)

	style := stroke.Stroke{
		Width:      float64(width),
		Cap:        stroke.LineCap(ir.UnpackStrokeCap(opts)),
		Join:       stroke.LineJoin(ir.UnpackStrokeJoin(opts)),
		MiterLimit: 4.0,
		Dashes:     toDashLengths(dashes),
		DashOffset: float64(dashOffset),
	}
	expander := stroke.NewExpander(style)
	filled := expander.Expand(elements)
	return fromStrokeElements(filled)
}

func toDashLengths(dashes []float32) []float64 {
	if len(dashes) == 0 {
		return nil
	}
	out := make([]float64, len(dashes))
	for i, d := range dashes {
		out[i] = float64(d)
	}
	return out
}

func toStrokeElements(path ir.Path) []stroke.PathElement {
	elements := make([]stroke.PathElement, 0, len(path.Verbs))
	pi := 0
	for _, v := range path.Verbs {
		switch v {
		case ir.VerbMoveTo:
			p := path.Points[pi]
			elements = append(elements, stroke.MoveTo{Point: stroke.Point{X: float64(p.X), Y: float64(p.Y)}})
			pi++
		case ir.VerbLineTo:
			p := path.Points[pi]
			elements = append(elements, stroke.LineTo{Point: stroke.Point{X: float64(p.X), Y: float64(p.Y)}})
			pi++
		case ir.VerbQuadTo:
			c, p := path.Points[pi], path.Points[pi+1]
			elements = append(elements, stroke.QuadTo{
				Control: stroke.Point{X: float64(c.X), Y: float64(c.Y)},
				Point:   stroke.Point{X: float64(p.X), Y: float64(p.Y)},
			})
			pi += 2
		case ir.VerbCubicTo:
			c1, c2, p := path.Points[pi], path.Points[pi+1], path.Points[pi+2]
			elements = append(elements, stroke.CubicTo{
				Control1: stroke.Point{X: float64(c1.X), Y: float64(c1.Y)},
				Control2: stroke.Point{X: float64(c2.X), Y: float64(c2.Y)},
				Point:    stroke.Point{X: float64(p.X), Y: float64(p.Y)},
			})
			pi += 3
		case ir.VerbClose:
			elements = append(elements, stroke.Close{})
		}
	}
	return elements
}

func fromStrokeElements(elements []stroke.PathElement) ir.Path {
	var out ir.Path
	for _, el := range elements {
		switch e := el.(type) {
		case stroke.MoveTo:
			out.Verbs = append(out.Verbs, ir.VerbMoveTo)
			out.Points = append(out.Points, ir.Point{X: float32(e.Point.X), Y: float32(e.Point.Y)})
		case stroke.LineTo:
			out.Verbs = append(out.Verbs, ir.VerbLineTo)
			out.Points = append(out.Points, ir.Point{X: float32(e.Point.X), Y: float32(e.Point.Y)})
		case stroke.QuadTo:
			out.Verbs = append(out.Verbs, ir.VerbQuadTo)
			out.Points = append(out.Points,
				ir.Point{X: float32(e.Control.X), Y: float32(e.Control.Y)},
				ir.Point{X: float32(e.Point.X), Y: float32(e.Point.Y)},
			)
		case stroke.CubicTo:
			out.Verbs = append(out.Verbs, ir.VerbCubicTo)
			out.Points = append(out.Points,
				ir.Point{X: float32(e.Control1.X), Y: float32(e.Control1.Y)},
				ir.Point{X: float32(e.Control2.X), Y: float32(e.Control2.Y)},
				ir.Point{X: float32(e.Point.X), Y: float32(e.Point.Y)},
			)
		case stroke.Close:
			out.Verbs = append(out.Verbs, ir.VerbClose)
		}
	}
	return out
}
