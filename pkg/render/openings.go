package render

import (
	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/style"
)

// wallFace names one visible plane of the house.
type wallFace int

const (
	sideWall wallFace = iota
	frontWall
	gableWall
)

// facePlane maps face coordinates (u across, z up) onto one wall plane.
// out displaces along the outward normal, used by awnings and flower
// boxes that stick off the wall.
type facePlane struct {
	at       func(u, z float64) geo.Point
	out      func(u, z, d float64) geo.Point
	halfSpan float64
}

func (b *houseBody) plane(f wallFace) facePlane {
	switch f {
	case sideWall:
		return facePlane{
			at:       func(u, z float64) geo.Point { return b.at(b.hw+0.1, u, z) },
			out:      func(u, z, d float64) geo.Point { return b.at(b.hw+0.1+d, u, z) },
			halfSpan: b.hd,
		}
	case gableWall:
		rhd := b.hd + eaveHang
		return facePlane{
			at:       func(u, z float64) geo.Point { return b.at(u, rhd+0.1, z) },
			out:      func(u, z, d float64) geo.Point { return b.at(u, rhd+0.1+d, z) },
			halfSpan: b.hw + eaveHang,
		}
	default:
		return facePlane{
			at:       func(u, z float64) geo.Point { return b.at(u, b.hd+0.1, z) },
			out:      func(u, z, d float64) geo.Point { return b.at(u, b.hd+0.1+d, z) },
			halfSpan: b.hw,
		}
	}
}

// quad returns the four corners of a face-aligned rectangle.
func (p facePlane) quad(cu, cz, w, h float64) []geo.Point {
	return []geo.Point{
		p.at(cu-w/2, cz-h/2),
		p.at(cu+w/2, cz-h/2),
		p.at(cu+w/2, cz+h/2),
		p.at(cu-w/2, cz+h/2),
	}
}

// windowSpec positions one window opening on a face.
type windowSpec struct {
	face   wallFace
	cu, cz float64
	w, h   float64
	glass  string
}

func (b *houseBody) window(ws windowSpec) {
	p := b.plane(ws.face)
	if b.windowStyle == style.Damaged {
		b.boardedOpening(p, ws.cu, ws.cz, ws.w, ws.h)
		return
	}
	switch b.windowStyle {
	case 0:
		b.windowPanes(p, ws)
		b.c.line(p.at(ws.cu, ws.cz-ws.h/2), p.at(ws.cu, ws.cz+ws.h/2), b.pal.Trim, 1)
		b.c.line(p.at(ws.cu-ws.w/2, ws.cz), p.at(ws.cu+ws.w/2, ws.cz), b.pal.Trim, 1)
	case 1: // arched with a sill
		draw.FillPath(b.c.S, archedRect(p, ws.cu, ws.cz, ws.w+2, ws.h+2, 3.5), b.c.paint(b.pal.Trim))
		draw.FillPath(b.c.S, archedRect(p, ws.cu, ws.cz, ws.w, ws.h, 2.8), b.c.paint(ws.glass))
		b.c.line(p.at(ws.cu-ws.w/2-1.5, ws.cz-ws.h/2-1.2), p.at(ws.cu+ws.w/2+1.5, ws.cz-ws.h/2-1.2), b.pal.Trim, 1.5)
	case 2:
		b.windowPanes(p, ws)
		b.awning(p, ws)
	case 3: // single muntin plus a planted box
		b.windowPanes(p, ws)
		b.c.line(p.at(ws.cu, ws.cz-ws.h/2), p.at(ws.cu, ws.cz+ws.h/2), b.pal.Trim, 1)
		b.flowerBox(p, ws)
	}
}

// windowPanes is the shared frame-then-glass fill.
func (b *houseBody) windowPanes(p facePlane, ws windowSpec) {
	b.c.fillPoly(b.pal.Trim, p.quad(ws.cu, ws.cz, ws.w+2, ws.h+2)...)
	b.c.fillPoly(ws.glass, p.quad(ws.cu, ws.cz, ws.w, ws.h)...)
}

// archedRect is a face-aligned rectangle whose top edge bows upward.
func archedRect(p facePlane, cu, cz, w, h, rise float64) *draw.Path {
	bl := p.at(cu-w/2, cz-h/2)
	br := p.at(cu+w/2, cz-h/2)
	tr := p.at(cu+w/2, cz+h/2)
	tl := p.at(cu-w/2, cz+h/2)
	top := p.at(cu, cz+h/2+rise)
	path := &draw.Path{}
	path.MoveTo(bl.X, bl.Y)
	path.LineTo(br.X, br.Y)
	path.LineTo(tr.X, tr.Y)
	path.QuadTo(top.X, top.Y, tl.X, tl.Y)
	path.Close()
	return path
}

// awning hangs a striped shade over the window.
func (b *houseBody) awning(p facePlane, ws windowSpec) {
	topZ := ws.cz + ws.h/2 + 1.2
	aw := ws.w/2 + 2
	b.c.fillPoly("#e17055",
		p.at(ws.cu-aw, topZ),
		p.at(ws.cu+aw, topZ),
		p.out(ws.cu+aw, topZ-3, 4.5),
		p.out(ws.cu-aw, topZ-3, 4.5))
	for k := -1.0; k <= 1; k++ {
		u := ws.cu + k*aw*0.55
		b.c.line(p.at(u, topZ), p.out(u, topZ-3, 4.5), "rgba(255,255,255,0.75)", 1.2)
	}
}

// flowerBox plants a wooden box under the sill.
func (b *houseBody) flowerBox(p facePlane, ws windowSpec) {
	top := ws.cz - ws.h/2 - 0.5
	b.c.fillPoly("#8d6e63", p.quad(ws.cu, top-1.5, ws.w+2, 3)...)
	blooms := [...]string{"#ff7675", "#ffeaa7", "#fd79a8"}
	for i := -1; i <= 1; i++ {
		u := ws.cu + float64(i)*ws.w/3
		b.c.dot(p.at(u, top+0.8), 1.2, blooms[i+1])
	}
}

// boardedOpening nails planks over a dark void, the damaged state shared
// by windows and doors.
func (b *houseBody) boardedOpening(p facePlane, cu, cz, w, h float64) {
	b.c.fillPoly("#1e1e1e", p.quad(cu, cz, w, h)...)
	plank := draw.StrokeOpts{
		Color:  b.c.paint("#8d7b64"),
		Width:  2.4,
		Jitter: 0.7,
		Seed:   b.seed + uint64(cz*7),
	}
	draw.Line(b.c.S, p.at(cu-w/2-1, cz-h/2+1), p.at(cu+w/2+1, cz+h/2-1), plank)
	draw.Line(b.c.S, p.at(cu-w/2-1, cz+h/2-1), p.at(cu+w/2+1, cz-h/2+1), plank)
}

// door draws the entry on the front wall: a fixed 8x14 opening whose
// dressing varies by style.
func (b *houseBody) door() {
	p := b.plane(frontWall)
	const w, h = 8.0, 14.0
	const cu, cz = 0.0, h / 2
	if b.doorStyle == style.Damaged {
		b.boardedOpening(p, cu, cz, w, h)
		return
	}
	switch b.doorStyle {
	case 0: // paneled with a knob
		b.c.fillPoly(b.pal.Door, p.quad(cu, cz, w, h)...)
		inset := draw.StrokeOpts{Color: textureInk, Width: 1}
		draw.StrokePoly(b.c.S, inset, p.quad(cu, cz+h/4, w-3, h/2-3)...)
		draw.StrokePoly(b.c.S, inset, p.quad(cu, cz-h/4, w-3, h/2-3)...)
		b.c.dot(p.at(cu+w/2-1.6, cz-0.5), 0.7, "#ffd54f")
	case 1: // arched cottage planks
		draw.FillPath(b.c.S, archedRect(p, cu, cz, w, h, 3), b.c.paint(b.pal.Door))
		b.c.line(p.at(cu-1.3, 0.5), p.at(cu-1.3, h-1), textureInk, 1)
		b.c.line(p.at(cu+1.3, 0.5), p.at(cu+1.3, h-1), textureInk, 1)
		b.c.dot(p.at(cu+w/2-1.6, cz-0.5), 0.7, "#ffd54f")
	case 2: // double french doors
		b.c.fillPoly(b.pal.Door, p.quad(cu, cz, w, h)...)
		paneW, paneH := w/2-1.6, h*0.52
		paneZ := cz + h*0.16
		b.c.fillPoly(b.pal.Glass, p.quad(cu-w/4, paneZ, paneW, paneH)...)
		b.c.fillPoly(b.pal.Glass, p.quad(cu+w/4, paneZ, paneW, paneH)...)
		b.c.line(p.at(cu, 0.5), p.at(cu, h-0.5), b.pal.Trim, 1)
	case 3: // flush slab with a transom
		b.c.fillPoly(style.Darken(b.pal.Door, 8), p.quad(cu, cz, w, h)...)
		b.c.fillPoly(b.pal.Trim, p.quad(cu, h+1.6, w, 3)...)
		b.c.fillPoly(b.pal.Glass, p.quad(cu, h+1.6, w-1.6, 1.8)...)
		b.c.line(p.at(cu+w/2-1.5, 5), p.at(cu+w/2-1.5, 9), "#dfe6e9", 1.3)
	}
}
