package sim

import (
	"math/rand"

	"github.com/ChicagoDave/gitville/pkg/geo"
)

// cloudMargin keeps respawns fully off screen; the widest cloud layer
// reaches roughly this far from its center at scale 1.
const cloudMargin = 80.0

// Cloud is one drifting puff cluster in world coordinates.
type Cloud struct {
	Pos   geo.Point
	Scale float64
	Seed  int
	Speed float64
}

// Sky drifts a fixed population of clouds across the world bound,
// recycling each one to the left edge as it exits on the right.
type Sky struct {
	rng    *rand.Rand
	bounds geo.Rect
	Clouds []Cloud
}

// NewSky spawns n clouds already scattered across the bound so the first
// frame is not an empty sky.
func NewSky(seed int64, bounds geo.Rect, n int) *Sky {
	s := &Sky{rng: rand.New(rand.NewSource(seed)), bounds: bounds}
	s.Clouds = make([]Cloud, n)
	for i := range s.Clouds {
		c := s.roll()
		c.Pos.X = bounds.Min.X + s.rng.Float64()*bounds.Width()
		s.Clouds[i] = c
	}
	return s
}

func (s *Sky) roll() Cloud {
	return Cloud{
		Pos: geo.Point{
			X: s.bounds.Min.X - cloudMargin,
			Y: s.bounds.Min.Y + s.rng.Float64()*s.bounds.Height(),
		},
		Scale: 0.7 + s.rng.Float64()*0.6,
		Seed:  s.rng.Intn(64),
		Speed: 4 + s.rng.Float64()*6,
	}
}

// Step drifts every cloud by dt seconds.
func (s *Sky) Step(dt float64) {
	for i := range s.Clouds {
		s.Clouds[i].Pos.X += s.Clouds[i].Speed * dt
		if s.Clouds[i].Pos.X > s.bounds.Max.X+cloudMargin {
			s.Clouds[i] = s.roll()
		}
	}
}
