package render

import (
	"github.com/ChicagoDave/gitville/pkg/city"
	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/iso"
	"github.com/ChicagoDave/gitville/pkg/style"
)

// House body dimensions in local units. The roof overhangs the walls on
// every side; a terrace house swaps the wall height, an abandoned one
// flattens the roof.
const (
	houseHalfW  = 16.0
	houseHalfD  = 18.0
	wallRise    = 35.0
	terraceRise = 60.0
	roofRise    = 30.0
	ruinRise    = 22.0
	eaveHang    = 4.0
	eaveDip     = 3.0

	hoverLift  = 6.0
	ruinWobble = 1.2
)

// House draws one house record at its grid anchor. Paint order is fixed
// back to front: ground shadow, side wall, front wall, foundation,
// openings, gable and roof, chimney, decay overlays, name tag.
func House(c Context, h *city.House) {
	b := newHouseBody(c, h)
	b.shadow()
	b.walls()
	b.gableAndRoof()
	if h.Abandoned {
		b.vines()
		b.rubble()
	}
	b.nameTag()
}

// houseBody bundles the per-house frame, dimensions and resolved style
// variants so the build steps stay short.
type houseBody struct {
	c   Context
	h   *city.House
	pal style.Palette

	f      iso.Frame // lifted by hover
	ground iso.Frame // original anchor, shadow only
	hw, hd float64
	wallH  float64
	roofH  float64
	wobble float64
	seed   uint64

	roofStyle    int
	doorStyle    int
	windowStyle  int
	chimneyStyle int
	wallStyle    int
}

func newHouseBody(c Context, h *city.House) *houseBody {
	ground := iso.Frame{Anchor: iso.GridToWorld(h.X, h.Y), Mirror: h.Mirrored()}
	b := &houseBody{
		c:      c,
		h:      h,
		pal:    style.HousePalette(h.Color, h.Abandoned),
		ground: ground,
		f:      ground.Lifted(c.Hover * hoverLift),
		hw:     houseHalfW,
		hd:     houseHalfD,
		wallH:  wallRise,
		roofH:  roofRise,
		seed:   uint64(int64(h.X)*73856093 ^ int64(h.Y)*19349663),
	}
	if h.HasTerrace {
		b.wallH = terraceRise
	}
	if h.Abandoned {
		b.roofH = ruinRise
		b.wobble = ruinWobble
	}
	b.roofStyle = style.Resolve(h.RoofStyle, h.X, h.Y, style.AspectRoof, true)
	b.doorStyle = style.Resolve(h.DoorStyle, h.X, h.Y, style.AspectDoor, true)
	b.windowStyle = style.Resolve(h.WindowStyle, h.X, h.Y, style.AspectWindow, true)
	b.chimneyStyle = style.Resolve(h.ChimneyStyle, h.X, h.Y, style.AspectChimney, false)
	b.wallStyle = style.Resolve(h.WallStyle, h.X, h.Y, style.AspectWall, false)
	if h.Abandoned {
		// decay wins over any explicit opening style
		b.doorStyle = style.Damaged
		b.windowStyle = style.Damaged
	}
	return b
}

// at projects a local offset through the house frame. Abandoned houses add
// a stable per-vertex displacement so every edge sags a little.
func (b *houseBody) at(lx, ly, lz float64) geo.Point {
	p := b.f.At(lx, ly, lz)
	if b.wobble > 0 {
		gx, gy := float64(b.h.X), float64(b.h.Y)
		n1 := style.NoiseXY(lx*0.73+gx, ly*0.91+lz*0.37+gy, style.AspectWobble)
		n2 := style.NoiseXY(lz*0.83+gy, lx*0.57-ly*0.41+gx, style.AspectWobble)
		p.X += (n1 - 0.5) * 2 * b.wobble
		p.Y += (n2 - 0.5) * 2 * b.wobble
	}
	return p
}

// edge is the silhouette stroke: clean for inhabited houses, sketched for
// abandoned ones.
func (b *houseBody) edge() draw.StrokeOpts {
	if b.h.Abandoned {
		return draw.Sketchy("rgba(0,0,0,0.25)", 1, b.seed)
	}
	return draw.StrokeOpts{Color: outlineInk, Width: 1}
}

// face fills a polygon and re-traces its outline.
func (b *houseBody) face(col string, pts ...geo.Point) {
	b.c.fillPoly(col, pts...)
	draw.StrokePoly(b.c.S, b.edge(), pts...)
}

// shadow is the soft ground ellipse. It stays on the unlifted anchor and
// shrinks as the house hovers.
func (b *houseBody) shadow() {
	ctr := b.ground.At(0, 0, 0)
	k := 1 - 0.15*b.c.Hover
	rx := (b.hw + b.hd + eaveHang) * k
	s := b.c.S
	s.BeginPath()
	s.Ellipse(ctr.X, ctr.Y+2, rx, rx*0.34)
	s.SetFill(shadowInk)
	s.Fill()
}

// walls paints the two visible wall faces and everything mounted on them.
// The side face goes first so the front edge wins where they meet.
func (b *houseBody) walls() {
	hw, hd, h := b.hw, b.hd, b.wallH
	b1 := b.at(hw, hd, 0)
	b2 := b.at(hw, -hd, 0)
	b4 := b.at(-hw, hd, 0)
	t1 := b.at(hw, hd, h)
	t2 := b.at(hw, -hd, h)
	t4 := b.at(-hw, hd, h)

	b.face(b.pal.WallShadow, b1, b2, t2, t1)
	b.wallTexture(sideWall)
	b.window(windowSpec{face: sideWall, cz: h/2 + 2, w: 10, h: 14, glass: b.pal.Glass})

	b.face(b.pal.Wall, b4, b1, t1, t4)
	b.wallTexture(frontWall)
	if b.h.Abandoned {
		b.cracks()
	}

	b.foundation()
	b.door()
	if b.h.HasTerrace {
		b.window(windowSpec{face: frontWall, cz: h - 13, w: 10, h: 12, glass: b.pal.GlassAlt})
	}
}

// foundation draws the plinth band along both visible wall bases.
func (b *houseBody) foundation() {
	hw, hd := b.hw, b.hd
	const rise = 3.0
	col := b.pal.Foundation
	b.c.fillPoly(col,
		b.at(hw+0.1, hd, 0), b.at(hw+0.1, -hd, 0),
		b.at(hw+0.1, -hd, rise), b.at(hw+0.1, hd, rise))
	b.c.fillPoly(col,
		b.at(-hw, hd+0.1, 0), b.at(hw, hd+0.1, 0),
		b.at(hw, hd+0.1, rise), b.at(-hw, hd+0.1, rise))
}

// wallTexture draws the cladding pattern on one wall face.
func (b *houseBody) wallTexture(f wallFace) {
	p := b.plane(f)
	span := p.halfSpan
	switch b.wallStyle {
	case 0: // clapboard courses
		for z := 5.0; z < b.wallH-1; z += 5 {
			b.c.line(p.at(-span, z), p.at(span, z), textureInk, 1)
		}
	case 1: // board and batten
		for u := -span + 5; u < span-1; u += 5 {
			b.c.line(p.at(u, 1.5), p.at(u, b.wallH-1.5), textureInk, 1)
		}
	case 2: // stucco dabs
		gx, gy := float64(b.h.X), float64(b.h.Y)
		salt := float64(f) * 7.3
		for i := 0; i < 12; i++ {
			fi := float64(i)
			u := (style.NoiseXY(fi*1.37+gx+salt, fi*2.11+gy, style.AspectScatter) - 0.5) * 2 * (span - 2)
			z := 4 + style.NoiseXY(fi*3.73+gy+salt, fi*1.93+gx, style.AspectScatter)*(b.wallH-8)
			b.c.dot(p.at(u, z), 0.7, "rgba(0,0,0,0.07)")
		}
	case 3: // coursed stone
		for row := 0; ; row++ {
			z := 3 + float64(row)*7
			if z > b.wallH-4 {
				break
			}
			b.c.line(p.at(-span, z+3.5), p.at(span, z+3.5), textureInk, 1)
			off := 0.0
			if row%2 == 1 {
				off = 4
			}
			for u := -span + 4 + off; u < span-2; u += 8 {
				b.c.line(p.at(u, z), p.at(u, z+3.5), textureInk, 1)
			}
		}
	}
}
