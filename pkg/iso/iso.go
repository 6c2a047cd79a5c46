// Package iso holds the 2:1 isometric projection between the logical tile
// grid and drawing-surface coordinates. Every piece of 3D-looking geometry
// in the renderer is produced by feeding local offsets through Frame.At;
// builders never place detail by raw pixel arithmetic.
package iso

import (
	"math"

	"github.com/ChicagoDave/gitville/pkg/geo"
)

// Tile footprint in surface units.
const (
	TileW = 100.0
	TileH = 50.0

	HalfW = TileW / 2
	HalfH = TileH / 2
)

// GridToWorld projects integer grid coordinates to the world anchor of the
// tile (the center of its ground diamond).
func GridToWorld(gx, gy int) geo.Point {
	return geo.Point{
		X: float64(gx-gy) * HalfW,
		Y: float64(gx+gy) * HalfH,
	}
}

// WorldToGrid inverts GridToWorld, snapping to the nearest tile. Snapping
// in grid space means the result is the tile whose ground diamond contains
// the world point.
func WorldToGrid(w geo.Point) (gx, gy int) {
	fx := (w.X/HalfW + w.Y/HalfH) / 2
	fy := (w.Y/HalfH - w.X/HalfW) / 2
	return int(math.Round(fx)), int(math.Round(fy))
}

// TileDiamond returns the four corners of a tile's ground diamond in
// top, right, bottom, left order.
func TileDiamond(anchor geo.Point) [4]geo.Point {
	return [4]geo.Point{
		{X: anchor.X, Y: anchor.Y - HalfH},
		{X: anchor.X + HalfW, Y: anchor.Y},
		{X: anchor.X, Y: anchor.Y + HalfH},
		{X: anchor.X - HalfW, Y: anchor.Y},
	}
}

// Frame is a local coordinate frame anchored on a tile. Local offsets are
// 3D-looking: lx runs toward the lower right edge, ly toward the lower
// left, lz straight up. Mirror swaps lx and ly before projection, which
// reflects the geometry without moving its anchor.
type Frame struct {
	Anchor geo.Point
	Mirror bool
}

// At projects a local offset to surface coordinates:
//
//	sx = ax + (lx - ly)
//	sy = ay + (lx + ly)/2 - lz
func (f Frame) At(lx, ly, lz float64) geo.Point {
	if f.Mirror {
		lx, ly = ly, lx
	}
	return geo.Point{
		X: f.Anchor.X + (lx - ly),
		Y: f.Anchor.Y + (lx+ly)*0.5 - lz,
	}
}

// Lifted returns a copy of the frame raised by dz surface units. Hover
// animation lifts a whole silhouette this way while its ground shadow
// stays on the original anchor.
func (f Frame) Lifted(dz float64) Frame {
	f.Anchor.Y -= dz
	return f
}
