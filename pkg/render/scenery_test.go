package render

import (
	"testing"

	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
)

func TestTreeSwaysWithPhase(t *testing.T) {
	var canopyX []float64
	var trunkX []float64
	for _, phase := range []float64{0, 1, 2, 3} {
		r := draw.NewRecorder()
		Tree(Context{S: r, Phase: phase}, 3, 4)
		if !r.Balanced() {
			t.Fatal("unbalanced draw state")
		}
		canopyX = append(canopyX, r.Ops[r.FirstFill("#388e3c")].Pts[0].X)
		trunkX = append(trunkX, r.Ops[r.FirstFill("#795548")].Pts[0].X)
	}
	moved := false
	for i := 1; i < len(canopyX); i++ {
		if !approx(canopyX[i], canopyX[0]) {
			moved = true
		}
		if !approx(trunkX[i], trunkX[0]) {
			t.Error("trunk should not sway")
		}
	}
	if !moved {
		t.Error("canopy never swayed across phases")
	}
}

func TestGroundShadesVary(t *testing.T) {
	seen := map[string]bool{}
	for gx := 0; gx < 8; gx++ {
		for gy := 0; gy < 8; gy++ {
			r := draw.NewRecorder()
			Ground(Context{S: r}, gx, gy)
			if !r.Balanced() {
				t.Fatalf("unbalanced ops at %d,%d", gx, gy)
			}
			fills := r.Fills()
			if len(fills) == 0 || len(fills[0].Pts) != 4 {
				t.Fatalf("tile %d,%d missing its diamond fill", gx, gy)
			}
			seen[fills[0].Color] = true
		}
	}
	if len(seen) < 2 {
		t.Error("ground shade never varies across tiles")
	}
}

func TestCloudLayersBuildUp(t *testing.T) {
	r := draw.NewRecorder()
	Cloud(Context{S: r}, geo.Point{X: 100, Y: -200}, 1.5, 7)
	if !r.Balanced() {
		t.Fatal("unbalanced draw state")
	}
	fills := r.Fills()
	if len(fills) != 3 {
		t.Fatalf("cloud layers = %d, want 3", len(fills))
	}
	for i := 1; i < len(fills); i++ {
		if fills[i].Alpha <= fills[i-1].Alpha {
			t.Error("layer opacity should rise toward the core")
		}
		if len(fills[i].Pts) != len(fills[0].Pts) {
			t.Error("every layer should carry the same puffs")
		}
	}
}

func TestWalkerBounces(t *testing.T) {
	pos := geo.Point{X: 50, Y: 25}
	still := draw.NewRecorder()
	Walker(Context{S: still}, pos, 2, 0)
	high := draw.NewRecorder()
	Walker(Context{S: high}, pos, 2, 1.5707963)

	sFills := still.Fills()
	hFills := high.Fills()
	if len(sFills) != 3 || len(hFills) != 3 {
		t.Fatalf("walker fills = %d and %d, want shadow, body, head", len(sFills), len(hFills))
	}
	if !approxPt(sFills[0].Pts[0], hFills[0].Pts[0]) {
		t.Error("shadow should stay on the ground")
	}
	if got := sFills[1].Pts[0].Y - hFills[1].Pts[0].Y; !approx(got, 1.6) {
		t.Errorf("bounce lift = %.2f, want 1.6", got)
	}
}
