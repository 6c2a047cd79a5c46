package render

import (
	"github.com/ChicagoDave/gitville/pkg/city"
	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/iso"
)

// Road geometry fractions of a tile half-extent and the fixed palette.
const (
	roadInset = 0.32 // asphalt pad half-extent
	laneStub  = 0.18 // where a dead-end center line stops
	rimSplit  = 0.18 // neighbor-edge rim segments cover [0,t] and [1-t,1]

	sidewalkCol = "#94a3b8"
	curbCol     = "#64748b"
	asphaltCol  = "#475569"
	laneCol     = "#e2e8f0"
	rimCol      = "#cbd5e1"
)

// tilePt maps fractional tile offsets (u toward +gx, v toward +gy, both in
// [-0.5, 0.5]) to world coordinates. Junction geometry is authored in this
// space so every shape stays aligned with the projection.
func tilePt(anchor geo.Point, u, v float64) geo.Point {
	return geo.Point{
		X: anchor.X + (u-v)*iso.TileW/2,
		Y: anchor.Y + (u+v)*iso.TileH/2,
	}
}

// Road draws one road cell. The shape is driven entirely by which of the
// four neighbors are roads: asphalt arms reach toward them, center lines
// connect or stub out, and the rim brightens where the pavement ends.
func Road(c Context, roads city.RoadSet, gx, gy int) {
	anchor := iso.GridToWorld(gx, gy)
	at := func(u, v float64) geo.Point { return tilePt(anchor, u, v) }

	d := iso.TileDiamond(anchor)
	c.fillPoly(sidewalkCol, d[0], d[1], d[2], d[3])
	draw.StrokePoly(c.S, draw.StrokeOpts{Color: c.paint(curbCol), Width: 1}, d[0], d[1], d[2], d[3])

	n := roads.Has(gx, gy-1)
	s := roads.Has(gx, gy+1)
	e := roads.Has(gx+1, gy)
	w := roads.Has(gx-1, gy)

	pad := func(u0, v0, u1, v1 float64) {
		c.fillPoly(asphaltCol, at(u0, v0), at(u1, v0), at(u1, v1), at(u0, v1))
	}
	pad(-roadInset, -roadInset, roadInset, roadInset)
	if n {
		pad(-roadInset, -0.5, roadInset, -roadInset)
	}
	if s {
		pad(-roadInset, roadInset, roadInset, 0.5)
	}
	if e {
		pad(roadInset, -roadInset, 0.5, roadInset)
	}
	if w {
		pad(-0.5, -roadInset, -roadInset, roadInset)
	}

	c.roadLanes(at, n, s, e, w)

	rim := func(au, av, bu, bv float64, hasNeighbor bool) {
		a, b := at(au, av), at(bu, bv)
		if hasNeighbor {
			opts := draw.StrokeOpts{Color: c.paint(rimCol), Width: 2}
			draw.Line(c.S, a, lerpPt(a, b, rimSplit), opts)
			draw.Line(c.S, lerpPt(a, b, 1-rimSplit), b, opts)
			return
		}
		draw.Line(c.S, a, b, draw.StrokeOpts{Color: c.paint(rimCol), Width: 3})
	}
	rim(-0.5, -0.5, 0.5, -0.5, n)
	rim(0.5, -0.5, 0.5, 0.5, e)
	rim(0.5, 0.5, -0.5, 0.5, s)
	rim(-0.5, 0.5, -0.5, -0.5, w)
}

// roadLanes draws the dashed center guidance. Two opposite neighbors get a
// straight line edge to edge, two orthogonal ones a curve through the
// center, anything else a stub per neighbor.
func (c Context) roadLanes(at func(u, v float64) geo.Point, n, s, e, w bool) {
	count := 0
	for _, has := range [...]bool{n, s, e, w} {
		if has {
			count++
		}
	}
	if count == 0 {
		return
	}

	p := &draw.Path{}
	move := func(pt geo.Point) { p.MoveTo(pt.X, pt.Y) }
	line := func(pt geo.Point) { p.LineTo(pt.X, pt.Y) }

	// edge midpoints in tile fractions
	mids := [...]struct {
		has  bool
		u, v float64
	}{
		{n, 0, -0.5},
		{s, 0, 0.5},
		{e, 0.5, 0},
		{w, -0.5, 0},
	}

	switch {
	case count == 2 && n && s:
		move(at(0, -0.5))
		line(at(0, 0.5))
	case count == 2 && e && w:
		move(at(0.5, 0))
		line(at(-0.5, 0))
	case count == 2:
		var ends []geo.Point
		for _, m := range mids {
			if m.has {
				ends = append(ends, at(m.u, m.v))
			}
		}
		ctr := at(0, 0)
		move(ends[0])
		p.QuadTo(ctr.X, ctr.Y, ends[1].X, ends[1].Y)
	default:
		for _, m := range mids {
			if !m.has {
				continue
			}
			move(at(m.u, m.v))
			line(at(m.u*laneStub/0.5, m.v*laneStub/0.5))
		}
	}

	c.S.SetDash([]float64{6, 5})
	draw.StrokePath(c.S, p, draw.StrokeOpts{Color: c.paint(laneCol), Width: 1.8})
	c.S.SetDash(nil)
}
