// Package draw defines the drawing-surface abstraction both renderer
// backends implement: an immediate raster canvas for the interactive
// viewer and a retained vector document for static export. Builders emit
// identical call sequences against either; the two must produce visually
// equivalent output.
package draw

// Surface receives path construction and paint calls. Colors are CSS-style
// strings (#rrggbb or rgba(r,g,b,a)); backends parse what they need.
//
// Builders keep path state balanced: every BeginPath is followed by a
// Fill, Stroke or Clip before the builder returns, on every branch.
type Surface interface {
	// Save pushes the current translation and paint state; Restore pops it.
	Save()
	Restore()
	// Translate offsets all subsequent coordinates. Nested local frames
	// compose by translating inside Save/Restore pairs.
	Translate(dx, dy float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	// Circle and Ellipse append a closed subpath.
	Circle(cx, cy, r float64)
	Ellipse(cx, cy, rx, ry float64)

	SetFill(color string)
	SetStroke(color string)
	SetLineWidth(w float64)
	SetAlpha(a float64)
	// SetDash sets the stroke dash pattern; nil or empty restores solid.
	SetDash(pattern []float64)

	Fill()
	Stroke()
	// Clip intersects the clip region with the current path. Cleared by
	// ResetClip or by Restore past the Save that set it.
	Clip()
	ResetClip()

	// BeginGroup opens a named logical cluster of shapes. The vector
	// backend attaches the class for continuous-animation styling; the
	// raster backend treats groups as inert.
	BeginGroup(name, class string)
	EndGroup()

	// Text draws a single line anchored at x,y (alphabetic baseline).
	Text(x, y float64, s string, opts TextOpts)
}

// Text anchor values, matching the vector backend's text-anchor attribute.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// TextOpts styles a Text call.
type TextOpts struct {
	Size   float64
	Fill   string
	Anchor string // AnchorStart when empty
	Bold   bool
}
