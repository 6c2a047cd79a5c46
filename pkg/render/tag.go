package render

import (
	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
)

// Verdana at size 11 averages about this many units per glyph; the bubble
// only needs to be roomy, not exact.
const tagGlyphW = 6.2

// nameTag draws the hover bubble above the roof peak. Its opacity follows
// the hover amount so the tag fades in as the house lifts.
func (b *houseBody) nameTag() {
	hv := b.c.Hover
	if hv < 0.05 || b.h.Username == "" {
		return
	}
	s := b.c.S
	peak := b.at(0, 0, b.wallH+b.roofH)

	tw := float64(len(b.h.Username))*tagGlyphW + 16
	if b.h.Abandoned {
		tw += 9
	}
	const th = 18.0
	cx, cy := peak.X, peak.Y-14-th/2
	x0, x1 := cx-tw/2, cx+tw/2
	y0, y1 := cy-th/2, cy+th/2
	const r = 6.0

	p := &draw.Path{}
	p.MoveTo(x0+r, y0)
	p.LineTo(x1-r, y0)
	p.QuadTo(x1, y0, x1, y0+r)
	p.LineTo(x1, y1-r)
	p.QuadTo(x1, y1, x1-r, y1)
	p.LineTo(cx+5, y1)
	p.LineTo(cx, y1+6)
	p.LineTo(cx-5, y1)
	p.LineTo(x0+r, y1)
	p.QuadTo(x0, y1, x0, y1-r)
	p.LineTo(x0, y0+r)
	p.QuadTo(x0, y0, x0+r, y0)
	p.Close()

	s.Save()
	s.SetAlpha(hv)
	draw.FillPath(s, p, "rgba(255,255,255,0.96)")
	draw.StrokePath(s, p, draw.StrokeOpts{Color: "rgba(45,52,54,0.35)", Width: 1})

	tx := cx
	if b.h.Abandoned {
		b.c.dot(geo.Point{X: x0 + 9, Y: cy}, 2.4, "#e17055")
		tx += 4
	}
	s.Text(tx, cy+4, b.h.Username, draw.TextOpts{
		Size:   11,
		Fill:   "#2d3436",
		Anchor: draw.AnchorMiddle,
		Bold:   true,
	})
	s.Restore()
}
