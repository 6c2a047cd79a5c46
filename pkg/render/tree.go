package render

import (
	"math"

	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/iso"
	"github.com/ChicagoDave/gitville/pkg/style"
)

// Foliage bands from back to front. Higher blobs sway further.
var treeBands = [...]struct {
	col   string
	blobs [3]struct{ x, z, r float64 }
}{
	{"#388e3c", [3]struct{ x, z, r float64 }{{0, 24, 13}, {-8, 20, 10}, {8, 20, 10}}},
	{"#4caf50", [3]struct{ x, z, r float64 }{{-6, 28, 9.5}, {6, 28, 9.5}, {0, 33, 10}}},
	{"#66bb6a", [3]struct{ x, z, r float64 }{{-3, 36, 6}, {4, 37, 5.5}, {0, 30, 4.5}}},
}

// Tree draws one obstacle tree: a flared trunk and three foliage bands.
func Tree(c Context, gx, gy int) {
	f := iso.Frame{Anchor: iso.GridToWorld(gx, gy)}
	phase0 := style.Noise01(gx, gy, style.AspectSway) * 2 * math.Pi
	sway := func(z float64) float64 {
		return math.Sin(c.Phase*1.2+phase0) * z * 0.055
	}
	s := c.S

	base := f.At(0, 0, 0)
	s.BeginPath()
	s.Ellipse(base.X, base.Y+1.5, 16, 5)
	s.SetFill(shadowInk)
	s.Fill()

	trunk := &draw.Path{}
	bl := f.At(-4.5, 0, 0)
	lt := f.At(-2, 0, 11)
	rt := f.At(2, 0, 11)
	br := f.At(4.5, 0, 0)
	cl := f.At(-2.4, 0, 4)
	cr := f.At(2.4, 0, 4)
	trunk.MoveTo(bl.X, bl.Y)
	trunk.QuadTo(cl.X, cl.Y, lt.X, lt.Y)
	trunk.LineTo(rt.X, rt.Y)
	trunk.QuadTo(cr.X, cr.Y, br.X, br.Y)
	trunk.Close()
	draw.FillPath(s, trunk, c.paint("#795548"))
	draw.StrokePath(s, trunk, draw.StrokeOpts{Color: outlineInk, Width: 1})

	size := 0.85 + 0.3*style.Noise01(gx, gy, style.AspectScatter)
	for _, band := range treeBands {
		s.BeginPath()
		for _, bb := range band.blobs {
			p := f.At(bb.x, 0, bb.z)
			s.Circle(p.X+sway(bb.z), p.Y, bb.r*size)
		}
		s.SetFill(c.paint(band.col))
		s.Fill()
	}

	if style.Noise01(gx, gy, style.AspectFlower) > 0.8 {
		blooms := [...]string{"#ff8a80", "#ffd54f", "#f48fb1"}
		for i := 0; i < 3; i++ {
			fi := float64(i)
			x := (style.NoiseXY(fi*2.3+float64(gx), fi*1.7+float64(gy), style.AspectFlower) - 0.5) * 16
			z := 30 + style.NoiseXY(fi*3.1+float64(gy), fi*1.3+float64(gx), style.AspectFlower)*8
			p := f.At(x, 0, z)
			c.dot(geo.Point{X: p.X + sway(z), Y: p.Y}, 1.4, blooms[style.VariantAt(gx+i, gy, style.AspectFlower, 3)])
		}
	}
}
