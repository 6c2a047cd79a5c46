// Package render holds the procedural builders that turn snapshot records
// into geometry: houses, trees, road and ground tiles, clouds and walkers.
// Every builder computes its shapes as local 3D offsets, projects them
// through an iso.Frame, and emits fills and strokes against a draw.Surface.
// Builders are pure: the same context and record always produce the same
// draw calls.
package render

import (
	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/style"
)

// Context carries the per-pass inputs shared by every builder. It travels
// by value; the compositor stamps entity-specific fields such as Hover
// onto a copy before each call.
type Context struct {
	S     draw.Surface
	Phase float64 // ambient animation clock, seconds
	Night bool
	Hover float64 // lift amount for the entity being drawn, 0..1
}

// Shared ink. Silhouette outlines and texture lines use translucent black
// so they read against any palette without a night-mode variant.
const (
	outlineInk = "rgba(0,0,0,0.1)"
	textureInk = "rgba(0,0,0,0.2)"
	shadowInk  = "rgba(0,0,0,0.18)"
)

// paint maps a day color to its night tone when night mode is on.
// Non-hex colors (the rgba inks) pass through unchanged.
func (c Context) paint(col string) string {
	if c.Night {
		return style.Night(col)
	}
	return col
}

// fillPoly fills a closed polygon in the (possibly night-adjusted) color.
func (c Context) fillPoly(col string, pts ...geo.Point) {
	draw.FillPoly(c.S, c.paint(col), pts...)
}

// line strokes a single segment in the adjusted color.
func (c Context) line(a, b geo.Point, col string, width float64) {
	draw.Line(c.S, a, b, draw.StrokeOpts{Color: c.paint(col), Width: width})
}

// dot fills a small circle, the workhorse of scatter detail.
func (c Context) dot(p geo.Point, r float64, col string) {
	c.S.BeginPath()
	c.S.Circle(p.X, p.Y, r)
	c.S.SetFill(c.paint(col))
	c.S.Fill()
}
