package geo

import "math"

// QuadPoint evaluates a quadratic Bezier at t in [0,1].
func QuadPoint(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// CubicPoint evaluates a cubic Bezier at t in [0,1].
func CubicPoint(p0, c1, c2, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p1.X,
		Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p1.Y,
	}
}

// SampleQuad returns n+1 points along a quadratic Bezier, including both
// endpoints. The roof texture builders sample ridge-to-eave curves this way.
func SampleQuad(p0, c, p1 Point, n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = QuadPoint(p0, c, p1, float64(i)/float64(n))
	}
	return pts
}

// SampleCubic returns n+1 points along a cubic Bezier, including both endpoints.
func SampleCubic(p0, c1, c2, p1 Point, n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = CubicPoint(p0, c1, c2, p1, float64(i)/float64(n))
	}
	return pts
}

// SampleEllipse returns a closed polygon approximating an axis-aligned
// ellipse with the given center and radii.
func SampleEllipse(center Point, rx, ry float64, segments int) []Point {
	if segments < 8 {
		segments = 8
	}
	pts := make([]Point, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point{
			X: center.X + rx*math.Cos(a),
			Y: center.Y + ry*math.Sin(a),
		}
	}
	return pts
}
