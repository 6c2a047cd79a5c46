// Package scene composes one full frame from a snapshot: the terrain
// carpet, then roads, houses, trees and walkers in depth order. It owns
// no pixels and no clock; callers hand it a surface and the ambient
// inputs and get back a deterministic sequence of draw calls.
package scene

import "github.com/ChicagoDave/gitville/pkg/city"

// CellRect is an inclusive grid-cell range.
type CellRect struct {
	MinX, MinY, MaxX, MaxY int
}

// Expand grows the rect by n cells on every side.
func (r CellRect) Expand(n int) CellRect {
	return CellRect{MinX: r.MinX - n, MinY: r.MinY - n, MaxX: r.MaxX + n, MaxY: r.MaxY + n}
}

// Cells returns the number of cells covered.
func (r CellRect) Cells() int {
	if r.MaxX < r.MinX || r.MaxY < r.MinY {
		return 0
	}
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}

// CellBounds is the smallest rect covering every house and road tile.
// The second result is false when the snapshot is empty.
func CellBounds(snap *city.Snapshot) (CellRect, bool) {
	first := true
	var r CellRect
	visit := func(x, y int) {
		if first {
			r = CellRect{MinX: x, MinY: y, MaxX: x, MaxY: y}
			first = false
			return
		}
		if x < r.MinX {
			r.MinX = x
		}
		if x > r.MaxX {
			r.MaxX = x
		}
		if y < r.MinY {
			r.MinY = y
		}
		if y > r.MaxY {
			r.MaxY = y
		}
	}
	for i := range snap.Houses {
		visit(snap.Houses[i].X, snap.Houses[i].Y)
	}
	for _, rt := range snap.Roads.Tiles() {
		visit(rt.X, rt.Y)
	}
	return r, !first
}

// Walker is one ambient figure placed at fractional grid coordinates.
type Walker struct {
	GX, GY float64
	Coat   int
	Step   float64
}

// Options are the per-frame inputs to Compose.
type Options struct {
	Phase float64
	Night bool

	// Hover returns the lift amount for a house; nil means nothing
	// hovers.
	Hover func(h *city.House) float64

	// Ground is the cell range carpeted with terrain tiles before any
	// entity is drawn.
	Ground CellRect

	Walkers []Walker
}
