package render

import (
	"math"

	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/iso"
)

// Coat colors for ambient walkers, picked by palette index.
var walkerCoats = [...]string{"#e17055", "#0984e3", "#6c5ce7", "#00b894", "#e84393"}

// Walker draws one ambient inhabitant at a world position. step drives the
// bounce; the caller advances it with walking speed so the figure bobs in
// rhythm with its movement.
func Walker(c Context, pos geo.Point, coat int, step float64) {
	f := iso.Frame{Anchor: pos}
	bounce := math.Abs(math.Sin(step)) * 1.6
	s := c.S

	s.BeginPath()
	s.Ellipse(pos.X, pos.Y+0.5, 3.2, 1.3)
	s.SetFill(shadowInk)
	s.Fill()

	col := walkerCoats[((coat%len(walkerCoats))+len(walkerCoats))%len(walkerCoats)]
	body := f.At(0, 0, 4.4+bounce)
	s.BeginPath()
	s.Ellipse(body.X, body.Y, 2.3, 3.1)
	s.SetFill(c.paint(col))
	s.Fill()

	c.dot(f.At(0, 0, 9.4+bounce), 1.7, "#ffe0b2")
}
