package iso

import (
	"math"
	"testing"

	"github.com/ChicagoDave/gitville/pkg/geo"
)

const tolerance = 0.001

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestGridToWorldOrigin(t *testing.T) {
	w := GridToWorld(0, 0)
	if w.X != 0 || w.Y != 0 {
		t.Errorf("expected origin, got (%f,%f)", w.X, w.Y)
	}
}

func TestGridToWorldAxes(t *testing.T) {
	e := GridToWorld(1, 0)
	if !approxEqual(e.X, 50, tolerance) || !approxEqual(e.Y, 25, tolerance) {
		t.Errorf("expected (50,25), got (%f,%f)", e.X, e.Y)
	}
	s := GridToWorld(0, 1)
	if !approxEqual(s.X, -50, tolerance) || !approxEqual(s.Y, 25, tolerance) {
		t.Errorf("expected (-50,25), got (%f,%f)", s.X, s.Y)
	}
}

func TestWorldToGridRoundTrip(t *testing.T) {
	for gx := -50; gx <= 50; gx++ {
		for gy := -50; gy <= 50; gy++ {
			rx, ry := WorldToGrid(GridToWorld(gx, gy))
			if rx != gx || ry != gy {
				t.Fatalf("round trip (%d,%d) -> (%d,%d)", gx, gy, rx, ry)
			}
		}
	}
}

func TestWorldToGridSnapsWithinDiamond(t *testing.T) {
	// Points inside a tile's ground diamond must snap to that tile.
	anchor := GridToWorld(3, -2)
	probes := []geo.Point{
		{X: anchor.X, Y: anchor.Y},
		{X: anchor.X + 20, Y: anchor.Y + 8},
		{X: anchor.X - 20, Y: anchor.Y - 8},
		{X: anchor.X + 45, Y: anchor.Y + 1},
	}
	for _, p := range probes {
		gx, gy := WorldToGrid(p)
		if gx != 3 || gy != -2 {
			t.Errorf("probe (%f,%f) snapped to (%d,%d), expected (3,-2)", p.X, p.Y, gx, gy)
		}
	}
}

func TestFrameAt(t *testing.T) {
	f := Frame{Anchor: geo.Pt(100, 200)}
	p := f.At(16, 18, 35)
	if !approxEqual(p.X, 100+16-18, tolerance) {
		t.Errorf("expected sx %f, got %f", 100+16.0-18.0, p.X)
	}
	if !approxEqual(p.Y, 200+(16+18)*0.5-35, tolerance) {
		t.Errorf("expected sy %f, got %f", 200+(16+18.0)*0.5-35, p.Y)
	}
}

func TestFrameMirrorSwapsAxes(t *testing.T) {
	plain := Frame{Anchor: geo.Pt(0, 0)}
	mirrored := Frame{Anchor: geo.Pt(0, 0), Mirror: true}

	p := plain.At(10, 4, 0)
	m := mirrored.At(10, 4, 0)
	if !approxEqual(m.X, -p.X, tolerance) {
		t.Errorf("expected mirrored sx %f, got %f", -p.X, m.X)
	}
	if !approxEqual(m.Y, p.Y, tolerance) {
		t.Errorf("expected same sy %f, got %f", p.Y, m.Y)
	}
	// The anchor itself never moves.
	if mirrored.At(0, 0, 0) != (geo.Point{}) {
		t.Error("expected mirror to keep the anchor fixed")
	}
}

func TestFrameLifted(t *testing.T) {
	f := Frame{Anchor: geo.Pt(10, 50)}.Lifted(6)
	p := f.At(0, 0, 0)
	if !approxEqual(p.Y, 44, tolerance) {
		t.Errorf("expected lifted anchor y 44, got %f", p.Y)
	}
}

func TestTileDiamondCorners(t *testing.T) {
	d := TileDiamond(geo.Pt(0, 0))
	if d[0] != geo.Pt(0, -25) || d[1] != geo.Pt(50, 0) || d[2] != geo.Pt(0, 25) || d[3] != geo.Pt(-50, 0) {
		t.Errorf("unexpected diamond corners: %v", d)
	}
}
