// Package canvas implements the immediate raster backend of draw.Surface
// on top of Ebitengine. Paths rasterize through the vector package's
// triangulation onto a white source image; clipping and dashing fall back
// to flattened geometry so both backends show the same shapes.
package canvas

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
)

// The 1x1 sub-image of a 3x3 white image keeps texture sampling away from
// the outer texels during anti-aliased triangle fills.
var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

func whiteFill() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// View maps world coordinates to screen pixels: zoom scales around the
// world origin, then the offset applies.
type View struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

// Apply converts a world position to screen pixels.
func (v View) Apply(x, y float64) (float64, float64) {
	return x*v.Zoom + v.OffsetX, y*v.Zoom + v.OffsetY
}

// Invert converts a screen position back to world coordinates.
func (v View) Invert(sx, sy float64) (float64, float64) {
	return (sx - v.OffsetX) / v.Zoom, (sy - v.OffsetY) / v.Zoom
}

type state struct {
	fill   string
	stroke string
	width  float64
	alpha  float64
	dash   []float64
	tx, ty float64
	clip   geo.Polygon
}

// Surface renders surface calls immediately onto an Ebitengine image. The
// view is fixed for the surface's lifetime; the viewer wraps the frame in
// a fresh surface each Draw.
type Surface struct {
	dst  *ebiten.Image
	view View

	cur   state
	stack []state
	rec   draw.Path
}

func New(dst *ebiten.Image, view View) *Surface {
	if view.Zoom == 0 {
		view.Zoom = 1
	}
	return &Surface{
		dst:  dst,
		view: view,
		cur:  state{fill: "#000000", stroke: "#000000", width: 1, alpha: 1},
	}
}

func (s *Surface) Save() {
	s.stack = append(s.stack, s.cur)
}

func (s *Surface) Restore() {
	if n := len(s.stack); n > 0 {
		s.cur = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *Surface) Translate(dx, dy float64) {
	s.cur.tx += dx
	s.cur.ty += dy
}

// px folds the local translation and the view into screen pixels; paths
// record in screen space so clip geometry and dash lengths line up.
func (s *Surface) px(x, y float64) (float64, float64) {
	return s.view.Apply(x+s.cur.tx, y+s.cur.ty)
}

func (s *Surface) BeginPath() { s.rec = draw.Path{} }

func (s *Surface) MoveTo(x, y float64) {
	px, py := s.px(x, y)
	s.rec.MoveTo(px, py)
}

func (s *Surface) LineTo(x, y float64) {
	px, py := s.px(x, y)
	s.rec.LineTo(px, py)
}

func (s *Surface) QuadTo(cx, cy, x, y float64) {
	pcx, pcy := s.px(cx, cy)
	px, py := s.px(x, y)
	s.rec.QuadTo(pcx, pcy, px, py)
}

func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p1x, p1y := s.px(c1x, c1y)
	p2x, p2y := s.px(c2x, c2y)
	px, py := s.px(x, y)
	s.rec.CubicTo(p1x, p1y, p2x, p2y, px, py)
}

func (s *Surface) ClosePath() { s.rec.Close() }

func (s *Surface) Circle(cx, cy, r float64) {
	px, py := s.px(cx, cy)
	s.rec.Circle(px, py, r*s.view.Zoom)
}

func (s *Surface) Ellipse(cx, cy, rx, ry float64) {
	px, py := s.px(cx, cy)
	s.rec.Ellipse(px, py, rx*s.view.Zoom, ry*s.view.Zoom)
}

func (s *Surface) SetFill(c string)          { s.cur.fill = c }
func (s *Surface) SetStroke(c string)        { s.cur.stroke = c }
func (s *Surface) SetLineWidth(w float64)    { s.cur.width = w }
func (s *Surface) SetAlpha(a float64)        { s.cur.alpha = a }
func (s *Surface) SetDash(pattern []float64) { s.cur.dash = pattern }

func (s *Surface) Fill() {
	r, g, b, a := parseColor(s.cur.fill)
	a *= s.cur.alpha
	if a <= 0 {
		return
	}
	var p vector.Path
	if s.cur.clip.IsEmpty() {
		s.appendNative(&p)
	} else {
		for _, sub := range s.rec.Flatten() {
			poly := geo.ClipToConvex(subpathPolygon(sub), s.cur.clip)
			appendRing(&p, poly.Vertices)
		}
	}
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	s.rasterize(vs, is, r, g, b, a)
}

func (s *Surface) Stroke() {
	r, g, b, a := parseColor(s.cur.stroke)
	a *= s.cur.alpha
	width := s.cur.width * s.view.Zoom
	if a <= 0 || width <= 0 {
		return
	}

	var p vector.Path
	if s.cur.clip.IsEmpty() && len(s.cur.dash) == 0 {
		s.appendNative(&p)
	} else {
		dash := s.scaledDash()
		for _, sub := range s.rec.Flatten() {
			runs := [][]geo.Point{sub.Points}
			if len(dash) > 0 {
				runs = expandDash(sub.Points, dash)
			}
			for _, run := range runs {
				s.appendClippedRun(&p, run)
			}
		}
	}

	opts := &vector.StrokeOptions{
		Width:      float32(width),
		LineCap:    vector.LineCapButt,
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 4,
	}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, opts)
	s.rasterize(vs, is, r, g, b, a)
}

func (s *Surface) scaledDash() []float64 {
	if len(s.cur.dash) == 0 {
		return nil
	}
	out := make([]float64, len(s.cur.dash))
	for i, d := range s.cur.dash {
		out[i] = d * s.view.Zoom
	}
	return out
}

func (s *Surface) appendClippedRun(p *vector.Path, run []geo.Point) {
	if s.cur.clip.IsEmpty() {
		appendLine(p, run)
		return
	}
	for i := 1; i < len(run); i++ {
		ca, cb, ok := geo.ClipSegmentToConvex(run[i-1], run[i], s.cur.clip)
		if !ok {
			continue
		}
		p.MoveTo(float32(ca.X), float32(ca.Y))
		p.LineTo(float32(cb.X), float32(cb.Y))
	}
}

// Clip intersects the clip region with the current path's first subpath.
// Builders clip to convex silhouettes (roof planes, wall quads), which is
// what the geometric clippers support.
func (s *Surface) Clip() {
	subs := s.rec.Flatten()
	if len(subs) == 0 {
		return
	}
	poly := subpathPolygon(subs[0])
	if !s.cur.clip.IsEmpty() {
		poly = geo.ClipToConvex(poly, s.cur.clip)
	}
	s.cur.clip = poly
}

func (s *Surface) ResetClip() { s.cur.clip = geo.Polygon{} }

// Groups are a vector-document concept; the raster backend draws through.
func (s *Surface) BeginGroup(name, class string) {}
func (s *Surface) EndGroup()                     {}

func (s *Surface) Text(x, y float64, str string, opts draw.TextOpts) {
	size := opts.Size * s.view.Zoom
	if str == "" || size <= 1 {
		return
	}
	fill := opts.Fill
	if fill == "" {
		fill = s.cur.fill
	}
	r, g, b, a := parseColor(fill)
	a *= s.cur.alpha
	if a <= 0 {
		return
	}

	face := &text.GoTextFace{Source: fontSource(opts.Bold), Size: size}
	px, py := s.px(x, y)
	switch opts.Anchor {
	case draw.AnchorMiddle:
		px -= text.Advance(str, face) / 2
	case draw.AnchorEnd:
		px -= text.Advance(str, face)
	}
	// Surface.Text anchors on the alphabetic baseline; text.Draw wants the
	// top of the line box.
	py -= face.Metrics().HAscent

	op := &text.DrawOptions{}
	op.GeoM.Translate(px, py)
	op.ColorScale.Scale(float32(r*a), float32(g*a), float32(b*a), float32(a))
	text.Draw(s.dst, str, face, op)
}

func (s *Surface) appendNative(p *vector.Path) {
	for _, c := range s.rec.Cmds {
		switch c.Verb {
		case draw.VerbMove:
			p.MoveTo(float32(c.Pts[0].X), float32(c.Pts[0].Y))
		case draw.VerbLine:
			p.LineTo(float32(c.Pts[0].X), float32(c.Pts[0].Y))
		case draw.VerbQuad:
			p.QuadTo(float32(c.Pts[0].X), float32(c.Pts[0].Y),
				float32(c.Pts[1].X), float32(c.Pts[1].Y))
		case draw.VerbCubic:
			p.CubicTo(float32(c.Pts[0].X), float32(c.Pts[0].Y),
				float32(c.Pts[1].X), float32(c.Pts[1].Y),
				float32(c.Pts[2].X), float32(c.Pts[2].Y))
		case draw.VerbClose:
			p.Close()
		case draw.VerbCircle:
			p.Arc(float32(c.Pts[0].X), float32(c.Pts[0].Y), float32(c.R),
				0, 2*math.Pi, vector.Clockwise)
			p.Close()
		case draw.VerbEllipse:
			appendRing(p, geo.SampleEllipse(c.Pts[0], c.R, c.R2, 32))
		}
	}
}

func (s *Surface) rasterize(vs []ebiten.Vertex, is []uint16, r, g, b, a float64) {
	if len(is) == 0 {
		return
	}
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r * a)
		vs[i].ColorG = float32(g * a)
		vs[i].ColorB = float32(b * a)
		vs[i].ColorA = float32(a)
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	s.dst.DrawTriangles(vs, is, whiteFill(), op)
}

// subpathPolygon drops the repeated closing point so polygon edges do not
// degenerate.
func subpathPolygon(sub draw.Subpath) geo.Polygon {
	pts := sub.Points
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return geo.Polygon{Vertices: pts}
}

func appendRing(p *vector.Path, pts []geo.Point) {
	if len(pts) < 3 {
		return
	}
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.Close()
}

func appendLine(p *vector.Path, pts []geo.Point) {
	if len(pts) < 2 {
		return
	}
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.LineTo(float32(pt.X), float32(pt.Y))
	}
}
