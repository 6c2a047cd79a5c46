package draw

import "github.com/ChicagoDave/gitville/pkg/geo"

// StrokeOpts selects how a stroke is emitted. The zero value is a single
// clean pass. Abandoned-mode geometry uses Jitter and Passes for the
// hand-sketched look; this is an explicit parameter of the one shared
// stroke helper, never a swapped drawing primitive.
type StrokeOpts struct {
	Color  string
	Width  float64
	Jitter float64 // max displacement per command point, surface units
	Passes int     // repeated jittered passes; <=1 means one pass
	Seed   uint64  // entity-stable seed so the sketch does not shimmer
}

// Sketchy returns the stroke options for abandoned outlines.
func Sketchy(color string, width float64, seed uint64) StrokeOpts {
	return StrokeOpts{Color: color, Width: width, Jitter: 1.1, Passes: 3, Seed: seed}
}

// StrokePath emits a path as one or more stroked passes.
func StrokePath(s Surface, p *Path, opts StrokeOpts) {
	if opts.Color != "" {
		s.SetStroke(opts.Color)
	}
	if opts.Width > 0 {
		s.SetLineWidth(opts.Width)
	}
	passes := opts.Passes
	if passes < 1 {
		passes = 1
	}
	if opts.Jitter <= 0 {
		passes = 1
	}
	for i := 0; i < passes; i++ {
		s.BeginPath()
		if opts.Jitter > 0 {
			p.Jittered(opts.Jitter, opts.Seed+uint64(i)*0x9e3779b9).Replay(s)
		} else {
			p.Replay(s)
		}
		s.Stroke()
	}
}

// FillPath fills a path with the given color.
func FillPath(s Surface, p *Path, color string) {
	s.SetFill(color)
	s.BeginPath()
	p.Replay(s)
	s.Fill()
}

// Poly builds a closed path through the given points.
func Poly(pts ...geo.Point) *Path {
	p := &Path{}
	p.MovePoly(pts)
	p.Close()
	return p
}

// FillPoly fills a closed polygon.
func FillPoly(s Surface, fill string, pts ...geo.Point) {
	FillPath(s, Poly(pts...), fill)
}

// StrokePoly strokes a closed polygon outline.
func StrokePoly(s Surface, opts StrokeOpts, pts ...geo.Point) {
	StrokePath(s, Poly(pts...), opts)
}

// Line strokes a single segment.
func Line(s Surface, a, b geo.Point, opts StrokeOpts) {
	p := &Path{}
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	StrokePath(s, p, opts)
}
