package stroke

import "math"

// polyline is a flattened, directed sequence of points describing one
// subpath, used as the working representation for dash segmentation.
type polyline struct {
	points []Point
	closed bool
}

// flattenToPolylines flattens elements, which may contain several
// MoveTo-delimited subpaths, into straight-line polylines at the given
// tolerance. Curves are subdivided with the same recursive de Casteljau
// approach the expander itself uses when converting a curve segment to
// line segments during offsetting.
func flattenToPolylines(elements []PathElement, tolerance float64) []polyline {
	var out []polyline
	var cur polyline
	var start, last Point

	flush := func() {
		if len(cur.points) > 1 {
			out = append(out, cur)
		}
		cur = polyline{}
	}

	for _, el := range elements {
		switch e := el.(type) {
		case MoveTo:
			flush()
			start, last = e.Point, e.Point
			cur.points = append(cur.points, e.Point)
		case LineTo:
			cur.points = append(cur.points, e.Point)
			last = e.Point
		case QuadTo:
			pts := flattenQuadPoints(last, e.Control, e.Point, tolerance)
			cur.points = append(cur.points, pts[1:]...)
			last = e.Point
		case CubicTo:
			pts := flattenCubicPoints(last, e.Control1, e.Control2, e.Point, tolerance)
			cur.points = append(cur.points, pts[1:]...)
			last = e.Point
		case Close:
			if last != start {
				cur.points = append(cur.points, start)
				last = start
			}
			cur.closed = true
			flush()
		}
	}
	flush()
	return out
}

func flattenQuadPoints(p0, p1, p2 Point, tolerance float64) []Point {
	points := []Point{p0}
	flattenQuadPointsRec(p0, p1, p2, tolerance, &points)
	return points
}

func flattenQuadPointsRec(p0, p1, p2 Point, tolerance float64, points *[]Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)
	flattenQuadPointsRec(p0, q0, q2, tolerance, points)
	flattenQuadPointsRec(q2, q1, p2, tolerance, points)
}

func flattenCubicPoints(p0, p1, p2, p3 Point, tolerance float64) []Point {
	points := []Point{p0}
	flattenCubicPointsRec(p0, p1, p2, p3, tolerance, &points)
	return points
}

func flattenCubicPointsRec(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if dist < tolerance {
		*points = append(*points, p3)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	flattenCubicPointsRec(p0, q0, r0, s, tolerance, points)
	flattenCubicPointsRec(s, r1, q2, p3, tolerance, points)
}

// applyDashes flattens elements and slices each resulting polyline into
// dash-on runs, returning one open MoveTo/LineTo subpath per run. A
// closed polyline's implicit closing segment is walked like any other
// segment; the dash pattern does not special-case the join back to the
// start point.
func applyDashes(elements []PathElement, dashes []float64, offset, tolerance float64) []PathElement {
	pattern := dashes
	if len(pattern)%2 != 0 {
		pattern = append(append([]float64{}, pattern...), pattern...)
	}
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if total <= 0 {
		return elements
	}

	var out []PathElement
	for _, pl := range flattenToPolylines(elements, tolerance) {
		out = append(out, dashPolyline(pl, pattern, total, offset)...)
	}
	return out
}

// dashPolyline walks pl's arc length against pattern starting at offset,
// emitting a MoveTo/LineTo run for every dash-on interval that overlaps
// the polyline. Even pattern indices are "on"; odd are "off".
func dashPolyline(pl polyline, pattern []float64, total, offset float64) []PathElement {
	if len(pl.points) < 2 {
		return nil
	}

	cum := make([]float64, len(pl.points))
	for i := 1; i < len(pl.points); i++ {
		cum[i] = cum[i-1] + pl.points[i-1].Distance(pl.points[i])
	}
	pathLen := cum[len(cum)-1]
	if pathLen <= 0 {
		return nil
	}

	pointAt := func(d float64) Point {
		switch {
		case d <= 0:
			return pl.points[0]
		case d >= pathLen:
			return pl.points[len(pl.points)-1]
		}
		for i := 1; i < len(cum); i++ {
			if cum[i] < d {
				continue
			}
			segLen := cum[i] - cum[i-1]
			if segLen <= 0 {
				return pl.points[i]
			}
			return pl.points[i-1].Lerp(pl.points[i], (d-cum[i-1])/segLen)
		}
		return pl.points[len(pl.points)-1]
	}

	phase := math.Mod(offset, total)
	if phase < 0 {
		phase += total
	}

	var out []PathElement
	d := -phase
	idx := 0
	for d < pathLen {
		segEnd := d + pattern[idx]
		if idx%2 == 0 && segEnd > 0 {
			a, b := math.Max(d, 0), math.Min(segEnd, pathLen)
			if b > a {
				out = append(out, MoveTo{Point: pointAt(a)})
				for i := 1; i < len(cum); i++ {
					if cum[i] > a && cum[i] < b {
						out = append(out, LineTo{Point: pl.points[i]})
					}
				}
				out = append(out, LineTo{Point: pointAt(b)})
			}
		}
		d = segEnd
		idx = (idx + 1) % len(pattern)
	}
	return out
}
