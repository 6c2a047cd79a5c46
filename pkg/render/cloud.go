package render

import (
	"math"

	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/style"
)

// Cloud draws one drifting puff cluster. Three concentric alpha layers
// stand in for a soft radial gradient on both backends.
func Cloud(c Context, center geo.Point, scale float64, seed int) {
	s := c.S
	fs := float64(seed)
	puffs := 4 + seed%3
	layers := [...]struct{ rk, alpha float64 }{{1.45, 0.16}, {1.18, 0.28}, {1.0, 0.5}}
	for _, layer := range layers {
		s.BeginPath()
		for i := 0; i < puffs; i++ {
			fi := float64(i)
			off := fi - float64(puffs-1)/2
			x := center.X + off*14*scale
			y := center.Y + (style.NoiseXY(fi*1.3+fs, fs*2.1, style.AspectScatter)-0.5)*6*scale
			r := (11 - math.Abs(off)*2.5 + style.NoiseXY(fi*2.7+fs, fs, style.AspectScatter)*3) * scale * layer.rk
			s.Circle(x, y, r)
		}
		s.SetAlpha(layer.alpha)
		s.SetFill(c.paint("#ffffff"))
		s.Fill()
	}
	s.SetAlpha(1)
}

// CloudShadow is the flattened blob a cloud casts on the ground.
func CloudShadow(c Context, ground geo.Point, scale float64) {
	s := c.S
	s.BeginPath()
	s.Ellipse(ground.X, ground.Y, 26*scale, 7*scale)
	s.SetFill("rgba(0,0,0,0.08)")
	s.Fill()
}

// Raindrop strokes one slanted rain streak ending at the drop position.
func Raindrop(c Context, at geo.Point, ln float64) {
	s := c.S
	s.BeginPath()
	s.MoveTo(at.X+ln*0.2, at.Y-ln)
	s.LineTo(at.X, at.Y)
	s.SetStroke("rgba(120,144,184,0.45)")
	s.SetLineWidth(1.1)
	s.Stroke()
}
