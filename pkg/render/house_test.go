package render

import (
	"math"
	"testing"

	"github.com/ChicagoDave/gitville/pkg/city"
	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/style"
)

const tol = 0.01

func approx(a, b float64) bool { return math.Abs(a-b) <= tol }

func approxPt(a, b geo.Point) bool { return approx(a.X, b.X) && approx(a.Y, b.Y) }

func intp(v int) *int { return &v }

func renderHouse(h *city.House, c Context) *draw.Recorder {
	r := draw.NewRecorder()
	c.S = r
	House(c, h)
	return r
}

func countFills(r *draw.Recorder, cols ...string) int {
	n := 0
	for _, op := range r.Fills() {
		for _, c := range cols {
			if op.Color == c {
				n++
			}
		}
	}
	return n
}

func centroid(pts []geo.Point) geo.Point {
	var c geo.Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(pts))
	c.Y /= float64(len(pts))
	return c
}

func TestHousePaintOrder(t *testing.T) {
	h := &city.House{
		X: 2, Y: 3, Color: "#ff6b6b",
		RoofStyle: intp(0), DoorStyle: intp(0), WindowStyle: intp(0),
		ChimneyStyle: intp(1), WallStyle: intp(0),
	}
	r := renderHouse(h, Context{})
	if !r.Balanced() {
		t.Fatal("unbalanced draw state")
	}

	pal := style.HousePalette(h.Color, false)
	order := []struct {
		name string
		idx  int
	}{
		{"ground shadow", r.FirstFill(shadowInk)},
		{"side wall", r.FirstFill(pal.WallShadow)},
		{"front wall", r.FirstFill(pal.Wall)},
		{"foundation", r.FirstFill(pal.Foundation)},
		{"door", r.FirstFill(pal.Door)},
		{"gable", r.FirstFill(pal.RoofMain)},
		{"near slope", r.FirstFill(pal.RoofDark)},
	}
	for i, step := range order {
		if step.idx < 0 {
			t.Fatalf("%s never painted", step.name)
		}
		if i > 0 && step.idx <= order[i-1].idx {
			t.Errorf("%s painted at op %d, not after %s at %d",
				step.name, step.idx, order[i-1].name, order[i-1].idx)
		}
	}

	glass := r.FirstFill(pal.Glass)
	if glass < order[1].idx || glass > order[2].idx {
		t.Errorf("side glass at op %d, want between the side wall (%d) and front wall (%d)",
			glass, order[1].idx, order[2].idx)
	}
}

func TestHoverLiftsBodyNotShadow(t *testing.T) {
	h := &city.House{
		X: 0, Y: 0, Color: "#4caf50", Username: "octocat",
		RoofStyle: intp(0), DoorStyle: intp(0), WindowStyle: intp(0),
		ChimneyStyle: intp(0), WallStyle: intp(0),
	}
	rest := renderHouse(h, Context{})
	lift := renderHouse(h, Context{Hover: 1})

	pal := style.HousePalette(h.Color, false)
	a := rest.Ops[rest.FirstFill(pal.WallShadow)].Pts[0]
	b := lift.Ops[lift.FirstFill(pal.WallShadow)].Pts[0]
	if !approx(b.X, a.X) || !approx(b.Y, a.Y-hoverLift) {
		t.Errorf("hovered wall corner at (%.2f,%.2f), want (%.2f,%.2f)", b.X, b.Y, a.X, a.Y-hoverLift)
	}

	sa := rest.Ops[rest.FirstFill(shadowInk)].Pts[0]
	sb := lift.Ops[lift.FirstFill(shadowInk)].Pts[0]
	if !approxPt(sa, sb) {
		t.Error("ground shadow should stay on the unlifted anchor")
	}

	if len(rest.Texts()) != 0 {
		t.Error("name tag drawn without hover")
	}
	texts := lift.Texts()
	if len(texts) != 1 || texts[0].Name != "octocat" {
		t.Fatalf("tags = %+v, want a single octocat label", texts)
	}
	if !texts[0].Bold || texts[0].Class != draw.AnchorMiddle {
		t.Error("tag text should be bold and centered")
	}
}

func TestAbandonedOverridesOpenings(t *testing.T) {
	h := &city.House{
		X: -4, Y: 7, Color: "#4caf50", Abandoned: true,
		RoofStyle: intp(1), DoorStyle: intp(2), WindowStyle: intp(0),
		ChimneyStyle: intp(0), WallStyle: intp(0),
	}
	r := renderHouse(h, Context{})
	if !r.Balanced() {
		t.Fatal("unbalanced draw state")
	}

	for _, col := range []string{"#74b9ff", "#81ecec", "#5d4037"} {
		if r.FirstFill(col) >= 0 {
			t.Errorf("inhabited color %s painted on an abandoned house", col)
		}
	}
	if voids := countFills(r, "#1e1e1e"); voids != 3 {
		t.Errorf("boarded voids = %d, want side window, attic window and door", voids)
	}

	want := 2 + style.VariantAt(h.X, h.Y, style.AspectHole, 3)
	if holes := countFills(r, "#2d3436"); holes != want {
		t.Errorf("roof holes = %d, want %d", holes, want)
	}

	if r.FirstFill("#95a5a6") < 0 {
		t.Error("abandoned wall tone missing")
	}
}

func TestTerraceAddsUpperWindow(t *testing.T) {
	base := city.House{
		X: 1, Y: 1, Color: "#ffd54f",
		RoofStyle: intp(0), DoorStyle: intp(0), WindowStyle: intp(0),
		ChimneyStyle: intp(0), WallStyle: intp(0),
	}
	tall := base
	tall.HasTerrace = true

	pal := style.HousePalette(base.Color, false)
	rBase := renderHouse(&base, Context{})
	rTall := renderHouse(&tall, Context{})

	gBase := countFills(rBase, pal.Glass, pal.GlassAlt)
	gTall := countFills(rTall, pal.Glass, pal.GlassAlt)
	if gTall != gBase+1 {
		t.Errorf("terrace glass fills = %d, want %d", gTall, gBase+1)
	}

	top := func(r *draw.Recorder) float64 {
		min := math.Inf(1)
		for _, p := range r.Ops[r.FirstFill(pal.WallShadow)].Pts {
			min = math.Min(min, p.Y)
		}
		return min
	}
	if top(rTall) >= top(rBase) {
		t.Error("terrace walls should reach higher")
	}
}

func TestFacingRightMirrorsFootprint(t *testing.T) {
	down := &city.House{
		X: 0, Y: 0, Color: "#ff6b6b",
		RoofStyle: intp(0), DoorStyle: intp(0), WindowStyle: intp(0),
		ChimneyStyle: intp(0), WallStyle: intp(0),
	}
	right := *down
	right.Facing = city.FacingRight

	pal := style.HousePalette(down.Color, false)
	doorX := func(h *city.House) float64 {
		r := renderHouse(h, Context{})
		return centroid(r.Ops[r.FirstFill(pal.Door)].Pts).X
	}
	if x := doorX(down); x >= 0 {
		t.Errorf("default door centroid X = %.2f, want on the left facet", x)
	}
	if x := doorX(&right); x <= 0 {
		t.Errorf("mirrored door centroid X = %.2f, want on the right facet", x)
	}
}

func TestNightRetintsWalls(t *testing.T) {
	h := &city.House{
		X: 5, Y: -2, Color: "#0984e3",
		RoofStyle: intp(0), DoorStyle: intp(0), WindowStyle: intp(0),
		ChimneyStyle: intp(0), WallStyle: intp(0),
	}
	pal := style.HousePalette(h.Color, false)

	day := renderHouse(h, Context{})
	if day.FirstFill(pal.Wall) < 0 {
		t.Fatal("day wall tone missing")
	}
	night := renderHouse(h, Context{Night: true})
	if night.FirstFill(pal.Wall) >= 0 {
		t.Error("day wall tone painted at night")
	}
	if night.FirstFill(style.Night(pal.Wall)) < 0 {
		t.Error("night wall tone missing")
	}
}

func TestHouseBalancedAcrossStyles(t *testing.T) {
	for win := 0; win <= 4; win++ {
		for door := 0; door <= 4; door++ {
			for roof := 0; roof <= 4; roof++ {
				h := &city.House{
					X: win, Y: door*5 + roof, Color: "#74b9ff",
					RoofStyle: intp(roof), DoorStyle: intp(door), WindowStyle: intp(win),
					ChimneyStyle: intp(win % 4), WallStyle: intp(door % 4),
					HasTerrace: roof%2 == 0, Username: "tester",
				}
				r := renderHouse(h, Context{Hover: 0.5, Phase: 1.2})
				if !r.Balanced() {
					t.Fatalf("unbalanced ops for window=%d door=%d roof=%d", win, door, roof)
				}
			}
		}
	}

	for v := 0; v <= 4; v++ {
		h := &city.House{
			X: -v, Y: v, Color: "not-a-color", Abandoned: true,
			RoofStyle: intp(v), DoorStyle: intp(v), WindowStyle: intp(v),
		}
		r := renderHouse(h, Context{Night: true})
		if !r.Balanced() {
			t.Fatalf("unbalanced abandoned house for variant %d", v)
		}
	}
}

func TestHouseDeterministic(t *testing.T) {
	h := &city.House{X: 9, Y: -3, Color: "#e17055", Abandoned: true}
	a := renderHouse(h, Context{Phase: 2})
	b := renderHouse(h, Context{Phase: 2})
	if len(a.Ops) != len(b.Ops) {
		t.Fatalf("op counts differ: %d vs %d", len(a.Ops), len(b.Ops))
	}
	for i := range a.Ops {
		x, y := a.Ops[i], b.Ops[i]
		if x.Kind != y.Kind || x.Color != y.Color || len(x.Pts) != len(y.Pts) {
			t.Fatalf("op %d differs: %+v vs %+v", i, x, y)
		}
		for j := range x.Pts {
			if !approxPt(x.Pts[j], y.Pts[j]) {
				t.Fatalf("op %d point %d differs", i, j)
			}
		}
	}
}
