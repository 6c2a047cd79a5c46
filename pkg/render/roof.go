package render

import (
	"math"

	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/style"
)

// roofSlope is one side of the gabled roof: a straight ridge, a sagging
// eave curve, and the fall lines between them. All texture work samples
// this parametrization so the pattern follows the sag.
type roofSlope struct {
	ridgeA, ridgeB geo.Point // front and back ridge ends
	eaveA, eaveB   geo.Point // matching eave corners
	dip            geo.Point // control point of the eave curve
}

func newSlope(ridgeA, ridgeB, eaveA, eaveB geo.Point) roofSlope {
	return roofSlope{
		ridgeA: ridgeA, ridgeB: ridgeB,
		eaveA: eaveA, eaveB: eaveB,
		dip: geo.Point{X: (eaveA.X + eaveB.X) / 2, Y: (eaveA.Y+eaveB.Y)/2 + eaveDip},
	}
}

func lerpPt(a, b geo.Point, t float64) geo.Point {
	return geo.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// quadAt evaluates a quadratic curve at t.
func quadAt(a, ctrl, b geo.Point, t float64) geo.Point {
	u := 1 - t
	return geo.Point{
		X: u*u*a.X + 2*u*t*ctrl.X + t*t*b.X,
		Y: u*u*a.Y + 2*u*t*ctrl.Y + t*t*b.Y,
	}
}

func (r roofSlope) ridge(t float64) geo.Point { return lerpPt(r.ridgeA, r.ridgeB, t) }

func (r roofSlope) eave(t float64) geo.Point { return quadAt(r.eaveA, r.dip, r.eaveB, t) }

// fall returns the point a fraction f down the fall line at ridge
// fraction t. Fall lines sag slightly toward the eave.
func (r roofSlope) fall(t, f float64) geo.Point {
	a, e := r.ridge(t), r.eave(t)
	ctrl := geo.Point{X: (a.X + e.X) / 2, Y: (a.Y+e.Y)/2 + 1.5}
	return quadAt(a, ctrl, e, f)
}

// path traces the slope: down the front fall line, along the dipped eave,
// back up and home along the ridge.
func (r roofSlope) path() *draw.Path {
	p := &draw.Path{}
	p.MoveTo(r.ridgeA.X, r.ridgeA.Y)
	p.LineTo(r.eaveA.X, r.eaveA.Y)
	p.QuadTo(r.dip.X, r.dip.Y, r.eaveB.X, r.eaveB.Y)
	p.LineTo(r.ridgeB.X, r.ridgeB.Y)
	p.Close()
	return p
}

// gableAndRoof paints the gable end, the attic window it carries, both
// slopes with their covering, the fascia edge, and the chimney.
func (b *houseBody) gableAndRoof() {
	rhw, rhd := b.hw+eaveHang, b.hd+eaveHang
	wallH, roofH := b.wallH, b.roofH

	efl := b.at(-rhw, rhd, wallH)
	efr := b.at(rhw, rhd, wallH)
	ebl := b.at(-rhw, -rhd, wallH)
	ebr := b.at(rhw, -rhd, wallH)
	rFront := b.at(0, rhd, wallH+roofH)
	rBack := b.at(0, -rhd, wallH+roofH)

	b.face(b.pal.RoofMain, efl, efr, rFront)
	b.window(windowSpec{face: gableWall, cz: wallH + roofH*0.34, w: 7, h: 8, glass: b.pal.GlassAlt})

	left := newSlope(rFront, rBack, efl, ebl)
	right := newSlope(rFront, rBack, efr, ebr)
	damaged := b.h.Abandoned || b.roofStyle == style.Damaged

	b.slopePaint(left, b.pal.RoofMain, damaged, 1)
	b.slopePaint(right, b.pal.RoofDark, damaged, 0)
	b.fascia(left, right, rFront)
	b.chimney()
}

// slopePaint fills one slope and details it, clipped so texture and holes
// never escape the silhouette.
func (b *houseBody) slopePaint(r roofSlope, col string, damaged bool, side int) {
	p := r.path()
	draw.FillPath(b.c.S, p, b.c.paint(col))
	draw.StrokePath(b.c.S, p, b.edge())

	s := b.c.S
	s.Save()
	s.BeginPath()
	p.Replay(s)
	s.Clip()
	if damaged {
		b.roofHoles(r, side)
	} else {
		b.roofTexture(r)
	}
	s.Restore()
}

// roofTexture strokes the covering pattern for the intact roof styles.
func (b *houseBody) roofTexture(r roofSlope) {
	p := &draw.Path{}
	switch b.roofStyle {
	case 0: // scalloped shingle courses
		for _, f := range [...]float64{0.3, 0.6, 0.9} {
			prev := r.fall(0, f)
			p.MoveTo(prev.X, prev.Y)
			const steps = 6
			for i := 1; i <= steps; i++ {
				next := r.fall(float64(i)/steps, f)
				p.QuadTo((prev.X+next.X)/2, (prev.Y+next.Y)/2+2.2, next.X, next.Y)
				prev = next
			}
		}
	case 1: // slate: seams down the slope, two course lines across
		for _, t := range [...]float64{0.2, 0.4, 0.6, 0.8} {
			a, e := r.ridge(t), r.eave(t)
			p.MoveTo(a.X, a.Y)
			p.LineTo(e.X, e.Y)
		}
		for _, f := range [...]float64{0.38, 0.72} {
			first := r.fall(0, f)
			p.MoveTo(first.X, first.Y)
			for i := 1; i <= 6; i++ {
				pt := r.fall(float64(i)/6, f)
				p.LineTo(pt.X, pt.Y)
			}
		}
	case 2: // standing seams
		for i := 1; i <= 7; i++ {
			t := float64(i) / 8
			a, e := r.ridge(t), r.eave(t)
			p.MoveTo(a.X, a.Y)
			p.QuadTo((a.X+e.X)/2, (a.Y+e.Y)/2+1.6, e.X, e.Y)
		}
	case 3: // sawtooth shake rows
		for _, f := range [...]float64{0.45, 0.85} {
			const steps = 10
			for i := 0; i <= steps; i++ {
				pt := r.fall(float64(i)/steps, f)
				if i%2 == 1 {
					pt.Y -= 1.6
				}
				if i == 0 {
					p.MoveTo(pt.X, pt.Y)
				} else {
					p.LineTo(pt.X, pt.Y)
				}
			}
		}
	}
	draw.StrokePath(b.c.S, p, draw.StrokeOpts{Color: textureInk, Width: 1})
}

// roofHoles tears jagged openings in a damaged slope. Holes alternate
// between slopes, so each side paints the ones matching its parity.
func (b *houseBody) roofHoles(r roofSlope, side int) {
	gx, gy := float64(b.h.X), float64(b.h.Y)
	total := 2 + style.VariantAt(b.h.X, b.h.Y, style.AspectHole, 3)
	for i := side; i < total; i += 2 {
		fi := float64(i)
		t := 0.15 + 0.7*style.NoiseXY(fi*3.17+gx, fi*1.71+gy, style.AspectHole)
		f := 0.3 + 0.5*style.NoiseXY(fi*2.39+gy, fi*4.91+gx, style.AspectHole)
		ctr := r.fall(t, f)
		p := &draw.Path{}
		for k := 0; k < 6; k++ {
			ang := float64(k) / 6 * 2 * math.Pi
			rad := 2.2 + 2.6*style.NoiseXY(fi*5.3+float64(k)*1.9+gx, fi*1.3+float64(k)*2.7+gy, style.AspectHole)
			x := ctr.X + math.Cos(ang)*rad
			y := ctr.Y + math.Sin(ang)*rad*0.6
			if k == 0 {
				p.MoveTo(x, y)
			} else {
				p.LineTo(x, y)
			}
		}
		p.Close()
		draw.FillPath(b.c.S, p, b.c.paint("#2d3436"))
	}
}

// fascia thickens the roof edge: along the back eave, up the front rakes,
// and down the other eave in one open stroke.
func (b *houseBody) fascia(left, right roofSlope, rFront geo.Point) {
	p := &draw.Path{}
	p.MoveTo(left.eaveB.X, left.eaveB.Y)
	p.QuadTo(left.dip.X, left.dip.Y, left.eaveA.X, left.eaveA.Y)
	p.LineTo(rFront.X, rFront.Y)
	p.LineTo(right.eaveA.X, right.eaveA.Y)
	p.QuadTo(right.dip.X, right.dip.Y, right.eaveB.X, right.eaveB.Y)
	opts := draw.StrokeOpts{Color: b.c.paint(style.Darken(b.pal.RoofDark, 10)), Width: 2.2}
	if b.h.Abandoned {
		opts.Jitter, opts.Seed = 0.9, b.seed
	}
	draw.StrokePath(b.c.S, p, opts)
}

// box fills the three visible faces of an axis-aligned block between two
// heights, lit like the house walls.
func (b *houseBody) box(cx, cy, hw, hd, z0, z1 float64, main, shade, top string) {
	b.face(shade,
		b.at(cx+hw, cy+hd, z0), b.at(cx+hw, cy-hd, z0),
		b.at(cx+hw, cy-hd, z1), b.at(cx+hw, cy+hd, z1))
	b.face(main,
		b.at(cx-hw, cy+hd, z0), b.at(cx+hw, cy+hd, z0),
		b.at(cx+hw, cy+hd, z1), b.at(cx-hw, cy+hd, z1))
	b.face(top,
		b.at(cx-hw, cy-hd, z1), b.at(cx+hw, cy-hd, z1),
		b.at(cx+hw, cy+hd, z1), b.at(cx-hw, cy+hd, z1))
}

// chimney places the flue on the near slope. Style 0 is no chimney; the
// base follows the slope line so the brick sits flush at any roof rise.
func (b *houseBody) chimney() {
	if b.chimneyStyle == 0 {
		return
	}
	rhw := b.hw + eaveHang
	cx, cy := rhw*0.45, -b.hd*0.35
	baseZ := b.wallH + b.roofH*(1-cx/rhw) - 2
	peak := b.wallH + b.roofH
	main, shade := "#b46a55", "#96523f"
	if b.h.Abandoned {
		main, shade = "#7f8c8d", "#636e72"
	}
	crown := style.Darken(main, 18)

	switch b.chimneyStyle {
	case 1: // straight brick flue
		b.box(cx, cy, 2.4, 2.1, baseZ, peak+7, main, shade, crown)
		b.c.dot(b.at(cx, cy, peak+7), 1.4, "#2d3436")
	case 2: // wide stack with a cap slab
		top := peak + 5.5
		b.box(cx, cy, 3.1, 2.6, baseZ, top, main, shade, main)
		b.box(cx, cy, 3.8, 3.3, top, top+1.6, shade, style.Darken(shade, 8), crown)
		for z := baseZ + 4; z < top-1; z += 4 {
			b.c.line(b.at(cx+3.1, cy+2.6, z), b.at(cx+3.1, cy-2.6, z), textureInk, 1)
			b.c.line(b.at(cx-3.1, cy+2.6, z), b.at(cx+3.1, cy+2.6, z), textureInk, 1)
		}
	case 3: // cottage stack with twin pots
		top := peak + 4
		b.box(cx, cy, 2.9, 2.4, baseZ, top, main, shade, crown)
		pot := style.Darken(main, -8)
		for _, off := range [...]float64{-1.3, 1.3} {
			b.box(cx, cy+off, 0.8, 0.7, top, top+2.6, pot, style.Darken(pot, 12), "#2d3436")
		}
	}
}
