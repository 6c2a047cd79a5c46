package sim

import (
	"math/rand"

	"github.com/ChicagoDave/gitville/pkg/geo"
)

// Drop is one rain streak in world coordinates.
type Drop struct {
	X, Y  float64
	Speed float64
	Len   float64
}

// Rain recycles a fixed field of drops over the world bound. Drops that
// pass the bottom edge respawn above the top at a fresh column.
type Rain struct {
	rng    *rand.Rand
	bounds geo.Rect
	Drops  []Drop
}

func NewRain(seed int64, bounds geo.Rect, n int) *Rain {
	r := &Rain{rng: rand.New(rand.NewSource(seed)), bounds: bounds}
	r.Drops = make([]Drop, n)
	for i := range r.Drops {
		d := r.roll()
		d.Y = bounds.Min.Y + r.rng.Float64()*bounds.Height()
		r.Drops[i] = d
	}
	return r
}

func (r *Rain) roll() Drop {
	return Drop{
		X:     r.bounds.Min.X + r.rng.Float64()*r.bounds.Width(),
		Y:     r.bounds.Min.Y - r.rng.Float64()*40,
		Speed: 260 + r.rng.Float64()*160,
		Len:   7 + r.rng.Float64()*6,
	}
}

// Step lets every drop fall by dt seconds.
func (r *Rain) Step(dt float64) {
	for i := range r.Drops {
		r.Drops[i].Y += r.Drops[i].Speed * dt
		if r.Drops[i].Y > r.bounds.Max.Y {
			r.Drops[i] = r.roll()
		}
	}
}
