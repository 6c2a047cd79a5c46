package draw

import (
	"math"

	"github.com/ChicagoDave/gitville/pkg/geo"
)

// Verb identifies one path construction command.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbCubic
	VerbClose
	VerbCircle
	VerbEllipse
)

// Cmd is one recorded path command. Pts usage by verb:
//
//	Move/Line:  Pts[0] endpoint
//	Quad:       Pts[0] control, Pts[1] endpoint
//	Cubic:      Pts[0..1] controls, Pts[2] endpoint
//	Circle:     Pts[0] center, R radius
//	Ellipse:    Pts[0] center, R x-radius, R2 y-radius
type Cmd struct {
	Verb Verb
	Pts  [3]geo.Point
	R    float64
	R2   float64
}

// Path is a replayable sequence of path commands. Builders use it when a
// shape has to be emitted more than once, such as the multi-pass sketchy
// stroke.
type Path struct {
	Cmds []Cmd
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.Cmds = append(p.Cmds, Cmd{Verb: VerbMove, Pts: [3]geo.Point{{X: x, Y: y}}})
}

// LineTo extends the current subpath with a straight segment.
func (p *Path) LineTo(x, y float64) {
	p.Cmds = append(p.Cmds, Cmd{Verb: VerbLine, Pts: [3]geo.Point{{X: x, Y: y}}})
}

// QuadTo extends the current subpath with a quadratic Bezier.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.Cmds = append(p.Cmds, Cmd{Verb: VerbQuad, Pts: [3]geo.Point{{X: cx, Y: cy}, {X: x, Y: y}}})
}

// CubicTo extends the current subpath with a cubic Bezier.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Cmds = append(p.Cmds, Cmd{
		Verb: VerbCubic,
		Pts:  [3]geo.Point{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}},
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Cmds = append(p.Cmds, Cmd{Verb: VerbClose})
}

// Circle appends a closed circular subpath.
func (p *Path) Circle(cx, cy, r float64) {
	p.Cmds = append(p.Cmds, Cmd{Verb: VerbCircle, Pts: [3]geo.Point{{X: cx, Y: cy}}, R: r})
}

// Ellipse appends a closed elliptical subpath.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	p.Cmds = append(p.Cmds, Cmd{Verb: VerbEllipse, Pts: [3]geo.Point{{X: cx, Y: cy}}, R: rx, R2: ry})
}

// MovePoly starts a subpath at pts[0] and lines through the rest.
func (p *Path) MovePoly(pts []geo.Point) {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
}

// Replay writes the path into a surface's current path.
func (p *Path) Replay(s Surface) {
	for _, c := range p.Cmds {
		switch c.Verb {
		case VerbMove:
			s.MoveTo(c.Pts[0].X, c.Pts[0].Y)
		case VerbLine:
			s.LineTo(c.Pts[0].X, c.Pts[0].Y)
		case VerbQuad:
			s.QuadTo(c.Pts[0].X, c.Pts[0].Y, c.Pts[1].X, c.Pts[1].Y)
		case VerbCubic:
			s.CubicTo(c.Pts[0].X, c.Pts[0].Y, c.Pts[1].X, c.Pts[1].Y, c.Pts[2].X, c.Pts[2].Y)
		case VerbClose:
			s.ClosePath()
		case VerbCircle:
			s.Circle(c.Pts[0].X, c.Pts[0].Y, c.R)
		case VerbEllipse:
			s.Ellipse(c.Pts[0].X, c.Pts[0].Y, c.R, c.R2)
		}
	}
}

// Curve flattening resolutions.
const (
	quadSteps    = 16
	cubicSteps   = 16
	circleSteps  = 32
	ellipseSteps = 32
)

// Subpath is one flattened polyline of a path.
type Subpath struct {
	Points []geo.Point
	Closed bool
}

// Flatten converts the path to polylines for backends that need raw
// geometry (raster fill, dashing, geometric clipping).
func (p *Path) Flatten() []Subpath {
	var out []Subpath
	var cur []geo.Point
	var start geo.Point

	flush := func(closed bool) {
		if len(cur) > 1 {
			out = append(out, Subpath{Points: cur, Closed: closed})
		}
		cur = nil
	}

	for _, c := range p.Cmds {
		switch c.Verb {
		case VerbMove:
			flush(false)
			start = c.Pts[0]
			cur = []geo.Point{start}
		case VerbLine:
			if len(cur) == 0 {
				cur = []geo.Point{c.Pts[0]}
			} else {
				cur = append(cur, c.Pts[0])
			}
		case VerbQuad:
			if len(cur) == 0 {
				cur = []geo.Point{c.Pts[0]}
				break
			}
			seg := geo.SampleQuad(cur[len(cur)-1], c.Pts[0], c.Pts[1], quadSteps)
			cur = append(cur, seg[1:]...)
		case VerbCubic:
			if len(cur) == 0 {
				cur = []geo.Point{c.Pts[2]}
				break
			}
			seg := geo.SampleCubic(cur[len(cur)-1], c.Pts[0], c.Pts[1], c.Pts[2], cubicSteps)
			cur = append(cur, seg[1:]...)
		case VerbClose:
			if len(cur) > 1 {
				cur = append(cur, start)
			}
			flush(true)
		case VerbCircle:
			flush(false)
			out = append(out, Subpath{
				Points: geo.SampleEllipse(c.Pts[0], c.R, c.R, circleSteps),
				Closed: true,
			})
		case VerbEllipse:
			flush(false)
			out = append(out, Subpath{
				Points: geo.SampleEllipse(c.Pts[0], c.R, c.R2, ellipseSteps),
				Closed: true,
			})
		}
	}
	flush(false)
	return out
}

// hash01 is a small deterministic position hash for stroke jitter.
func hash01(x, y, salt float64) float64 {
	v := math.Abs(math.Sin(x*127.1+y*311.7+salt*74.7) * 43758.5453)
	return v - math.Floor(v)
}

// Jittered returns a copy of the path with every command point displaced
// by up to amount in each axis. The displacement is a pure function of
// the point and the seed, so a jittered path is stable across frames.
func (p *Path) Jittered(amount float64, seed uint64) *Path {
	if amount <= 0 {
		return p
	}
	salt := float64(seed%100003) * 0.137
	j := &Path{Cmds: make([]Cmd, len(p.Cmds))}
	copy(j.Cmds, p.Cmds)
	for i := range j.Cmds {
		c := &j.Cmds[i]
		used := usedPoints(c.Verb)
		for k := 0; k < used; k++ {
			pt := &c.Pts[k]
			dx := (hash01(pt.X, pt.Y, salt) - 0.5) * 2 * amount
			dy := (hash01(pt.Y, pt.X, salt+17.3) - 0.5) * 2 * amount
			pt.X += dx
			pt.Y += dy
		}
	}
	return j
}

// usedPoints returns how many entries of Cmd.Pts a verb actually uses.
func usedPoints(v Verb) int {
	switch v {
	case VerbMove, VerbLine, VerbCircle, VerbEllipse:
		return 1
	case VerbQuad:
		return 2
	case VerbCubic:
		return 3
	default:
		return 0
	}
}
