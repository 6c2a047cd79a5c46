package render

import (
	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/style"
)

// cracks scribbles settlement cracks down both visible walls.
func (b *houseBody) cracks() {
	gx, gy := float64(b.h.X), float64(b.h.Y)
	for _, f := range [...]wallFace{sideWall, frontWall} {
		p := b.plane(f)
		n := 1 + style.VariantAt(b.h.X+int(f), b.h.Y, style.AspectWobble, 2)
		for i := 0; i < n; i++ {
			fi := float64(i) + float64(f)*3.7
			u := (style.NoiseXY(fi*2.9+gx, fi*1.3+gy, style.AspectWobble) - 0.5) * 2 * (p.halfSpan - 4)
			z := b.wallH - 2
			path := &draw.Path{}
			pt := p.at(u, z)
			path.MoveTo(pt.X, pt.Y)
			for seg := 0; seg < 5 && z > 5; seg++ {
				z -= 4 + 3*style.NoiseXY(fi+float64(seg)*1.7+gx, z+gy, style.AspectWobble)
				u += (style.NoiseXY(z*1.3+gy, fi+float64(seg)*2.3+gx, style.AspectWobble) - 0.5) * 5
				pt = p.at(u, z)
				path.LineTo(pt.X, pt.Y)
			}
			draw.StrokePath(b.c.S, path, draw.StrokeOpts{Color: "rgba(0,0,0,0.3)", Width: 1})
		}
	}
}

// vines climb the walls of an abandoned house, alternating faces.
func (b *houseBody) vines() {
	gx, gy := float64(b.h.X), float64(b.h.Y)
	n := 2 + style.VariantAt(b.h.X, b.h.Y, style.AspectVine, 2)
	for i := 0; i < n; i++ {
		f := sideWall
		if i%2 == 1 {
			f = frontWall
		}
		p := b.plane(f)
		fi := float64(i)
		u := (style.NoiseXY(fi*3.3+gx, fi*2.7+gy, style.AspectVine) - 0.5) * 2 * (p.halfSpan - 3)
		top := 10 + style.NoiseXY(fi*1.9+gy, fi*4.1+gx, style.AspectVine)*(b.wallH-14)
		sway := (style.NoiseXY(fi*5.3+gx, fi*1.1+gy, style.AspectVine) - 0.5) * 10

		root := p.at(u, 0)
		ctrl := p.at(u+sway, top*0.6)
		tip := p.at(u+sway*0.4, top)
		stem := &draw.Path{}
		stem.MoveTo(root.X, root.Y)
		stem.QuadTo(ctrl.X, ctrl.Y, tip.X, tip.Y)
		draw.StrokePath(b.c.S, stem, draw.StrokeOpts{Color: b.c.paint("#4f7a4a"), Width: 1.3})
		for _, t := range [...]float64{0.35, 0.6, 0.85} {
			b.c.dot(quadAt(root, ctrl, tip, t), 1.1, "#66a564")
		}
	}
}

// rubble scatters debris along the two street-facing base edges.
func (b *houseBody) rubble() {
	gx, gy := float64(b.h.X), float64(b.h.Y)
	n := 4 + style.VariantAt(b.h.X, b.h.Y, style.AspectRubble, 4)
	for i := 0; i < n; i++ {
		fi := float64(i)
		edge := style.NoiseXY(fi*2.1+gx, fi*3.9+gy, style.AspectRubble)
		d := 2 + 4*style.NoiseXY(fi*1.7+gy, fi*2.9+gx, style.AspectRubble)
		var pt geo.Point
		if edge < 0.5 {
			u := (edge*4 - 1) * b.hd
			pt = b.at(b.hw+d, u, 0)
		} else {
			u := ((edge-0.5)*4 - 1) * b.hw
			pt = b.at(u, b.hd+d, 0)
		}
		r := 0.9 + 1.1*style.NoiseXY(fi*4.3+gx, fi*1.3+gy, style.AspectRubble)
		col := "#7f8c8d"
		if i%2 == 1 {
			col = "#95a5a6"
		}
		b.c.fillPoly(col,
			geo.Point{X: pt.X - r, Y: pt.Y},
			geo.Point{X: pt.X, Y: pt.Y - r*0.6},
			geo.Point{X: pt.X + r, Y: pt.Y},
			geo.Point{X: pt.X, Y: pt.Y + r*0.6})
	}
}
