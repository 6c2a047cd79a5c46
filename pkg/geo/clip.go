package geo

import "math"

// ClipToConvex clips the subject polygon to a convex clip polygon using
// the Sutherland-Hodgman algorithm. Returns the intersection polygon.
// The raster backend uses this to keep texture fills inside silhouettes.
func ClipToConvex(subject, clipper Polygon) Polygon {
	if subject.IsEmpty() || clipper.IsEmpty() {
		return Polygon{}
	}
	clipper = clipper.EnsureCCW()

	output := make([]Point, len(subject.Vertices))
	copy(output, subject.Vertices)

	clipN := len(clipper.Vertices)
	for i := 0; i < clipN; i++ {
		if len(output) == 0 {
			return Polygon{}
		}
		edgeStart := clipper.Vertices[i]
		edgeEnd := clipper.Vertices[(i+1)%clipN]
		input := output
		output = make([]Point, 0, len(input))

		for j := 0; j < len(input); j++ {
			current := input[j]
			next := input[(j+1)%len(input)]
			curInside := isInsideEdge(current, edgeStart, edgeEnd)
			nextInside := isInsideEdge(next, edgeStart, edgeEnd)

			if curInside && nextInside {
				output = append(output, next)
			} else if curInside && !nextInside {
				if ix, ok := lineIntersection(current, next, edgeStart, edgeEnd); ok {
					output = append(output, ix)
				}
			} else if !curInside && nextInside {
				if ix, ok := lineIntersection(current, next, edgeStart, edgeEnd); ok {
					output = append(output, ix)
				}
				output = append(output, next)
			}
		}
	}
	if len(output) < 3 {
		return Polygon{}
	}
	return Polygon{Vertices: output}
}

// ClipSegmentToConvex clips the segment a-b to the interior of a convex
// polygon. Returns the clipped endpoints and false when the segment lies
// entirely outside. Strokes under an active clip go through here.
func ClipSegmentToConvex(a, b Point, clipper Polygon) (Point, Point, bool) {
	if clipper.IsEmpty() {
		return a, b, true
	}
	clipper = clipper.EnsureCCW()

	// Cyrus-Beck parametric clipping against each half-plane.
	t0, t1 := 0.0, 1.0
	d := b.Sub(a)
	n := len(clipper.Vertices)
	for i := 0; i < n; i++ {
		e0 := clipper.Vertices[i]
		e1 := clipper.Vertices[(i+1)%n]
		// Inward normal of edge e0->e1 for CCW winding.
		edge := e1.Sub(e0)
		normal := Point{-edge.Y, edge.X}
		denom := normal.Dot(d)
		num := normal.Dot(a.Sub(e0))
		if math.Abs(denom) < 1e-12 {
			if num < 0 {
				return Point{}, Point{}, false
			}
			continue
		}
		t := -num / denom
		if denom > 0 {
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t1 {
				t1 = t
			}
		}
		if t0 > t1 {
			return Point{}, Point{}, false
		}
	}
	return a.Lerp(b, t0), a.Lerp(b, t1), true
}

// isInsideEdge returns true if the point is on the inside (left) of the
// directed edge from edgeStart to edgeEnd.
func isInsideEdge(p, edgeStart, edgeEnd Point) bool {
	return (edgeEnd.X-edgeStart.X)*(p.Y-edgeStart.Y)-
		(edgeEnd.Y-edgeStart.Y)*(p.X-edgeStart.X) >= 0
}

// lineIntersection returns the intersection point of lines (p1,p2) and (p3,p4).
func lineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	d := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(d) < 1e-12 {
		return Point{}, false
	}
	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / d
	return Point{
		X: p1.X + t*(p2.X-p1.X),
		Y: p1.Y + t*(p2.Y-p1.Y),
	}, true
}
