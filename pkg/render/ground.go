package render

import (
	"math"

	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/iso"
	"github.com/ChicagoDave/gitville/pkg/style"
)

var groundShades = [...]string{"#85ce89", "#81c784", "#7abc7e"}

// Ground fills one terrain diamond with its noise-picked shade and the
// occasional grass tuft or flower cluster.
func Ground(c Context, gx, gy int) {
	anchor := iso.GridToWorld(gx, gy)
	d := iso.TileDiamond(anchor)
	c.fillPoly(groundShades[style.VariantAt(gx, gy, style.AspectShade, 3)], d[0], d[1], d[2], d[3])

	if style.Noise01(gx, gy, style.AspectTuft) > 0.62 {
		u := (style.NoiseXY(float64(gx)*1.7, float64(gy)*2.3, style.AspectScatter) - 0.5) * 0.5
		v := (style.NoiseXY(float64(gy)*3.1, float64(gx)*1.3, style.AspectScatter) - 0.5) * 0.5
		base := tilePt(anchor, u, v)
		p := &draw.Path{}
		for i := -1; i <= 1; i++ {
			fi := float64(i)
			p.MoveTo(base.X+fi*2, base.Y)
			p.QuadTo(base.X+fi*3.2, base.Y-3, base.X+fi*4.2, base.Y-5.5)
		}
		draw.StrokePath(c.S, p, draw.StrokeOpts{Color: c.paint("#5ea861"), Width: 1.1})
	}

	if style.Noise01(gx, gy, style.AspectFlower) > 0.85 {
		u := (style.NoiseXY(float64(gx)*2.9, float64(gy)*1.1, style.AspectScatter) - 0.5) * 0.6
		v := (style.NoiseXY(float64(gy)*1.9, float64(gx)*2.7, style.AspectScatter) - 0.5) * 0.6
		base := tilePt(anchor, u, v)
		col := [...]string{"#ff7675", "#ffeaa7", "#fd79a8", "#a29bfe"}[style.VariantAt(gx, gy, style.AspectFlower, 4)]
		for i := 0; i < 3; i++ {
			ang := float64(i)/3*2*math.Pi + style.Noise01(gx, gy, style.AspectFlower)*2
			c.dot(geo.Point{X: base.X + math.Cos(ang)*2.4, Y: base.Y + math.Sin(ang)*1.4}, 1.1, col)
		}
		c.dot(base, 0.8, "#ffeaa7")
	}
}
