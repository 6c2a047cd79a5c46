package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ChicagoDave/gitville/pkg/scene"
)

var testArea = scene.CellRect{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}

func newTestRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestWalkerWakesAndWalks(t *testing.T) {
	c := NewCrowd(1, testArea, 1)
	w := c.Walkers[0]
	if w.state != idle {
		t.Fatal("walker should start idle")
	}

	for i := 0; i < 600 && w.state == idle; i++ {
		c.Step(1.0 / 60)
	}
	if w.state != moving {
		t.Fatal("walker never woke up")
	}
	if math.Hypot(w.tx-w.X, w.ty-w.Y) > roamRadius*math.Sqrt2+arrive {
		t.Errorf("target (%.2f,%.2f) too far from (%.2f,%.2f)", w.tx, w.ty, w.X, w.Y)
	}
}

func TestWalkerArrivesThenRests(t *testing.T) {
	w := &Walker{X: 0, Y: 0, Speed: 1, state: moving, tx: 1, ty: 0}
	c := &Crowd{rng: newTestRand(), area: testArea, Walkers: []*Walker{w}}

	for i := 0; i < 200 && w.state == moving; i++ {
		c.Step(1.0 / 60)
	}
	if w.state != idle {
		t.Fatal("walker did not arrive")
	}
	if math.Abs(w.X-1) > arrive || math.Abs(w.Y) > arrive {
		t.Errorf("stopped at (%.3f,%.3f), want the target", w.X, w.Y)
	}
	if w.wait < idleMin || w.wait > idleMax {
		t.Errorf("rest timer %.2f outside [%v,%v]", w.wait, idleMin, idleMax)
	}
	if w.Step == 0 {
		t.Error("stride phase never advanced")
	}
}

func TestWalkerNeverOvershoots(t *testing.T) {
	w := &Walker{X: 0, Y: 0, Speed: 10, state: moving, tx: 0.5, ty: 0}
	c := &Crowd{rng: newTestRand(), area: testArea, Walkers: []*Walker{w}}
	c.Step(1.0 / 2)
	if w.X > 0.5+arrive {
		t.Errorf("overshot to %.3f", w.X)
	}
}

func TestVisitorLeavesOnArrival(t *testing.T) {
	c := NewCrowd(3, testArea, 2)
	c.Visit(4, 4, 0, 0)
	if len(c.Walkers) != 3 {
		t.Fatalf("walkers = %d, want 3", len(c.Walkers))
	}
	for i := 0; i < 60*60; i++ {
		c.Step(1.0 / 60)
		if len(c.Walkers) == 2 {
			return
		}
	}
	t.Error("visitor never reached home and left")
}

func TestCrowdStaysInsideArea(t *testing.T) {
	c := NewCrowd(11, testArea, 6)
	for i := 0; i < 60*120; i++ {
		c.Step(1.0 / 60)
	}
	for _, w := range c.Walkers {
		if w.X < float64(testArea.MinX)-arrive || w.X > float64(testArea.MaxX)+arrive ||
			w.Y < float64(testArea.MinY)-arrive || w.Y > float64(testArea.MaxY)+arrive {
			t.Errorf("walker escaped to (%.2f,%.2f)", w.X, w.Y)
		}
	}
}

func TestSnapshotMirrorsPopulation(t *testing.T) {
	c := NewCrowd(5, testArea, 4)
	c.Step(1.0 / 60)
	snap := c.Snapshot()
	if len(snap) != len(c.Walkers) {
		t.Fatalf("snapshot %d records, want %d", len(snap), len(c.Walkers))
	}
	for i, s := range snap {
		w := c.Walkers[i]
		if s.GX != w.X || s.GY != w.Y || s.Coat != w.Coat || s.Step != w.Step {
			t.Errorf("record %d = %+v, want walker %+v", i, s, *w)
		}
	}
}
