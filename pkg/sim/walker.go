// Package sim advances the ambient animation state the viewer replays
// every frame: wandering walkers, hover easing, cloud drift and rain.
// Everything here is plain per-frame state; nothing is persisted.
package sim

import (
	"math"
	"math/rand"

	"github.com/ChicagoDave/gitville/pkg/scene"
)

type walkerState uint8

const (
	idle walkerState = iota
	moving
	returning
)

const (
	// roamRadius bounds how far an idle walker will pick its next target.
	roamRadius = 2.5
	// arrive ends a walk once the remaining distance would project below
	// about a pixel on screen.
	arrive = 0.02
	// strideRate converts travelled cells into stride phase for the
	// renderer's bounce term.
	strideRate = 9.0

	idleMin = 1.5
	idleMax = 5.0
	// coats matches the renderer's coat palette size.
	coats = 5
)

// Walker is one ambient pedestrian. Positions are fractional grid cells.
type Walker struct {
	X, Y  float64
	Coat  int
	Speed float64
	Step  float64

	state  walkerState
	tx, ty float64
	wait   float64
	gone   bool
}

func (w *Walker) advance(dt float64, rng *rand.Rand, area scene.CellRect) {
	switch w.state {
	case idle:
		w.wait -= dt
		if w.wait > 0 {
			return
		}
		w.tx = clamp(w.X+(rng.Float64()-0.5)*2*roamRadius, float64(area.MinX), float64(area.MaxX))
		w.ty = clamp(w.Y+(rng.Float64()-0.5)*2*roamRadius, float64(area.MinY), float64(area.MaxY))
		w.state = moving
	case moving, returning:
		dx, dy := w.tx-w.X, w.ty-w.Y
		d := math.Hypot(dx, dy)
		if d < arrive {
			if w.state == returning {
				w.gone = true
				return
			}
			w.state = idle
			w.wait = idleMin + rng.Float64()*(idleMax-idleMin)
			return
		}
		step := w.Speed * dt
		if step > d {
			step = d
		}
		w.X += dx / d * step
		w.Y += dy / d * step
		w.Step += step * strideRate
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Crowd owns the walker population and the shared random stream.
type Crowd struct {
	rng     *rand.Rand
	area    scene.CellRect
	Walkers []*Walker
}

// NewCrowd seeds n resident walkers scattered across the area, each
// starting idle with a staggered timer.
func NewCrowd(seed int64, area scene.CellRect, n int) *Crowd {
	c := &Crowd{rng: rand.New(rand.NewSource(seed)), area: area}
	w := float64(area.MaxX - area.MinX)
	h := float64(area.MaxY - area.MinY)
	for i := 0; i < n; i++ {
		c.Walkers = append(c.Walkers, &Walker{
			X:     float64(area.MinX) + c.rng.Float64()*w,
			Y:     float64(area.MinY) + c.rng.Float64()*h,
			Coat:  c.rng.Intn(coats),
			Speed: 0.3 + c.rng.Float64()*0.4,
			wait:  c.rng.Float64() * idleMax,
		})
	}
	return c
}

// Visit adds a transient walker that heads straight for home and removes
// itself on arrival. Used when a fresh inhabitant appears mid-session.
func (c *Crowd) Visit(fromX, fromY, homeX, homeY float64) *Walker {
	w := &Walker{
		X: fromX, Y: fromY,
		Coat:  c.rng.Intn(coats),
		Speed: 0.5 + c.rng.Float64()*0.4,
		state: returning,
		tx:    homeX, ty: homeY,
	}
	c.Walkers = append(c.Walkers, w)
	return w
}

// Step advances every walker by dt seconds and drops the transient ones
// that reached home.
func (c *Crowd) Step(dt float64) {
	kept := c.Walkers[:0]
	for _, w := range c.Walkers {
		w.advance(dt, c.rng, c.area)
		if !w.gone {
			kept = append(kept, w)
		}
	}
	c.Walkers = kept
}

// Snapshot converts the population into the compositor's walker records.
func (c *Crowd) Snapshot() []scene.Walker {
	out := make([]scene.Walker, len(c.Walkers))
	for i, w := range c.Walkers {
		out[i] = scene.Walker{GX: w.X, GY: w.Y, Coat: w.Coat, Step: w.Step}
	}
	return out
}
